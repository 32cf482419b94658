package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gfdac/gamedex/pkg/catalog"
)

// Field indexes into addForm.inputs.
const (
	fieldTitle = iota
	fieldDeveloper
	fieldPublisher
	fieldYear
	fieldCount
)

// addForm collects the four free-text fields for a new catalog entry.
// It holds raw text only; validation happens in the submission path.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

// newAddForm creates the form with the title field focused.
func newAddForm() addForm {
	var f addForm

	labels := [fieldCount]string{"Title", "Developer", "Publisher", "Year"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 80
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[fieldYear].CharLimit = 6
	f.inputs[fieldTitle].Focus()

	return f
}

// Update routes key input to the focused field and handles focus cycling.
func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// setFocus moves focus to field i.
func (f *addForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// submission builds the submission from the current field contents,
// exactly as typed.
func (f addForm) submission() catalog.Submission {
	return catalog.Submission{
		Title:     f.inputs[fieldTitle].Value(),
		Developer: f.inputs[fieldDeveloper].Value(),
		Publisher: f.inputs[fieldPublisher].Value(),
		Year:      f.inputs[fieldYear].Value(),
	}
}

// reset clears all fields and refocuses the title, for after a successful
// submission. Failed submissions leave the fields untouched.
func (f *addForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(fieldTitle)
}

// View renders the form fields.
func (f addForm) View(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Add a game"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Status.Render("enter: submit • tab: next field • esc: cancel"))

	return styles.FormBox.Render(b.String())
}
