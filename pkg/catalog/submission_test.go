package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfdac/gamedex/pkg/errors"
)

func TestSubmissionValidateAccepts(t *testing.T) {
	sub := Submission{
		Title:     "Mario Kart 7",
		Developer: "Nintendo",
		Publisher: "Nintendo",
		Year:      "2011",
	}

	entry, err := sub.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Mario Kart 7", entry.Title)
	assert.Equal(t, 2011, entry.Year)
	assert.Equal(t, "Nintendo", entry.Developer)
	assert.Equal(t, "Nintendo", entry.Publisher)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.AddedAt.IsZero(), "submitted entries are stamped")
}

func TestSubmissionValidateRejects(t *testing.T) {
	valid := Submission{Title: "t", Developer: "d", Publisher: "p", Year: "1990"}

	tests := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"empty title", func(s *Submission) { s.Title = "" }, "title"},
		{"empty developer", func(s *Submission) { s.Developer = "" }, "developer"},
		{"empty publisher", func(s *Submission) { s.Publisher = "" }, "publisher"},
		{"empty year", func(s *Submission) { s.Year = "" }, "year"},
		{"alphabetic year", func(s *Submission) { s.Year = "abc" }, "year"},
		{"fractional year", func(s *Submission) { s.Year = "19.5" }, "year"},
		{"decimal year", func(s *Submission) { s.Year = "2020.0" }, "year"},
		{"padded year", func(s *Submission) { s.Year = "  2020" }, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)

			_, err := sub.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

// The add path uses fields exactly as typed: spaces-only input counts as
// non-empty. Pinned deliberately; do not "fix" without revisiting the form
// contract.
func TestSubmissionWhitespaceNotTrimmed(t *testing.T) {
	sub := Submission{
		Title:     "   ",
		Developer: " ",
		Publisher: "\t",
		Year:      "2011",
	}

	entry, err := sub.Validate()
	require.NoError(t, err)
	assert.Equal(t, "   ", entry.Title)
	assert.Equal(t, " ", entry.Developer)
}

// Submitted entries always carry the fixed platform label and link, with no
// title, developer, or publisher links. Pinned deliberately.
func TestSubmissionFixedPlatform(t *testing.T) {
	sub := Submission{Title: "Mario Kart 7", Developer: "Nintendo", Publisher: "Nintendo", Year: "2011"}

	entry, err := sub.Validate()
	require.NoError(t, err)
	assert.Equal(t, AddedPlatform, entry.Platform)
	assert.Equal(t, AddedPlatformLink, entry.PlatformLink)
	assert.Empty(t, entry.TitleLink)
	assert.Empty(t, entry.DeveloperLink)
	assert.Empty(t, entry.PublisherLink)
}

func TestSubmitAddsOnSuccess(t *testing.T) {
	cat := NewEmpty()
	cat.Add(Entry{Title: "existing"})
	before := cat.Entries()

	sub := Submission{Title: "Mario Kart 7", Developer: "Nintendo", Publisher: "Nintendo", Year: "2011"}
	entry, err := sub.Submit(cat)
	require.NoError(t, err)

	after := cat.Entries()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, entry, after[0])
	assert.Equal(t, before, after[1:])
}

func TestSubmitLeavesCatalogUntouchedOnFailure(t *testing.T) {
	cat := NewEmpty()
	cat.Add(Entry{Title: "existing"})
	before := cat.Entries()

	sub := Submission{Title: "Mario Kart 7", Developer: "Nintendo", Publisher: "Nintendo", Year: "abc"}
	_, err := sub.Submit(cat)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, before, cat.Entries())
}
