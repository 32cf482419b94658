package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gfdac/gamedex"
	"github.com/gfdac/gamedex/pkg/catalog"
)

// mode is the browser's current screen.
type mode int

const (
	modeList mode = iota
	modeDetail
	modeForm
)

// Model is the bubbletea model for the catalog browser. All catalog reads
// are snapshot reads and all mutation flows through the submission path on
// the single update loop.
type Model struct {
	g      gamedex.Gamedex
	styles Styles

	width  int
	height int
	mode   mode

	// List state
	entries  []catalog.Entry
	filtered []catalog.Entry
	search   textinput.Model
	table    table.Model

	// Detail state
	selected catalog.Entry

	// Form state
	form   addForm
	notice string // blocking validation notice; empty when dismissed
}

// New creates the browser over the given gamedex instance.
func New(g gamedex.Gamedex) Model {
	search := textinput.New()
	search.Placeholder = "Type to filter titles..."
	search.CharLimit = 60
	search.Width = 40

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 44},
			{Title: "Year", Width: 6},
			{Title: "Developer", Width: 22},
			{Title: "Publisher", Width: 22},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	m := Model{
		g:      g,
		styles: DefaultStyles(),
		search: search,
		table:  t,
		form:   newAddForm(),
	}
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(5, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateList handles input on the list screen.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		// Re-filter on every keystroke.
		m.applyFilter()
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "a":
		m.mode = modeForm
		return m, textinput.Blink
	case "enter":
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.filtered) {
			m.selected = m.filtered[cursor]
			m.mode = modeDetail
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateDetail handles input on the detail screen.
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = modeList
	}
	return m, nil
}

// updateForm handles input on the add form, including the blocking
// validation notice.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The notice blocks the form until dismissed; fields stay as typed.
	if m.notice != "" {
		switch msg.String() {
		case "esc", "enter":
			m.notice = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "enter":
		if _, err := m.g.Submit(m.form.submission()); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.form.reset()
		m.refresh()
		m.table.SetCursor(0)
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// refresh re-reads the catalog snapshot and reapplies the filter.
func (m *Model) refresh() {
	m.entries = m.g.Entries()
	m.applyFilter()
}

// applyFilter recomputes the filtered view from the live search string.
func (m *Model) applyFilter() {
	m.filtered = catalog.Filter(m.entries, m.search.Value())

	rows := make([]table.Row, len(m.filtered))
	for i, e := range m.filtered {
		rows[i] = table.Row{e.Title, strconv.Itoa(e.Year), e.Developer, e.Publisher}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeForm:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

// viewList renders the searchable catalog list.
func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("gamedex"))
	b.WriteString("\n")
	b.WriteString(m.styles.Search.Render("search: " + m.search.View()))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(fmt.Sprintf(
		"%d of %d entries • /: search • enter: details • a: add • q: quit",
		len(m.filtered), len(m.entries))))

	return b.String()
}

// viewDetail renders one entry with its links.
func (m Model) viewDetail() string {
	e := m.selected

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(e.Title))
	b.WriteString("\n\n")
	b.WriteString(m.field("Year", strconv.Itoa(e.Year), ""))
	b.WriteString(m.field("Platform", e.Platform, e.PlatformLink))
	b.WriteString(m.field("Developer", e.Developer, e.DeveloperLink))
	b.WriteString(m.field("Publisher", e.Publisher, e.PublisherLink))
	if e.TitleLink != "" {
		b.WriteString(m.field("Article", e.TitleLink, ""))
	}
	if !e.AddedAt.IsZero() {
		b.WriteString(m.field("Added", e.AddedAt.Format("15:04:05")+" this session", ""))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render("esc: back"))

	return b.String()
}

// field renders one labeled detail line, with the link underneath when
// present.
func (m Model) field(label, value, link string) string {
	line := m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n"
	if link != "" {
		line += m.styles.Label.Render("") + m.styles.Link.Render(link) + "\n"
	}
	return line
}

// viewForm renders the add form and, when validation failed, the blocking
// notice on top of it.
func (m Model) viewForm() string {
	view := m.form.View(m.styles)
	if m.notice != "" {
		view += "\n" + m.styles.Notice.Render(m.notice+"\n\npress esc to dismiss")
	}
	return view
}
