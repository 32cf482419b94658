package catalog

import (
	"strconv"

	"github.com/agentstation/utc"

	"github.com/gfdac/gamedex/pkg/errors"
)

// Entries created through the add path are pinned to a single platform.
// User input never overrides these; revisit if the form ever grows a
// platform field.
const (
	// AddedPlatform is the platform label applied to submitted entries.
	AddedPlatform = "the 3DS"

	// AddedPlatformLink is the platform link applied to submitted entries.
	AddedPlatformLink = "https://en.wikipedia.org/wiki/Nintendo_3DS"
)

// Submission carries the four free-text form fields for a new catalog
// entry. Fields are used exactly as typed: surrounding whitespace is NOT
// trimmed before the emptiness checks, so an input of only spaces is
// accepted as non-empty.
type Submission struct {
	Title     string
	Developer string
	Publisher string
	Year      string
}

// Validate gates the submission and constructs the entry it describes.
//
// It succeeds only if Title, Developer, and Publisher are all non-empty and
// Year parses as a plain integer ("2011" is accepted; "", "abc", "19.5",
// and "  2020" are rejected). The resulting entry has no title, developer,
// or publisher links, carries the fixed platform label and link, and is
// stamped with the submission time.
//
// On failure Validate returns a ValidationError naming the offending field;
// the caller surfaces it to the user and leaves its form state unchanged.
func (s Submission) Validate() (Entry, error) {
	if s.Title == "" {
		return Entry{}, errors.NewValidationError("title", s.Title, "must not be empty")
	}
	if s.Developer == "" {
		return Entry{}, errors.NewValidationError("developer", s.Developer, "must not be empty")
	}
	if s.Publisher == "" {
		return Entry{}, errors.NewValidationError("publisher", s.Publisher, "must not be empty")
	}

	year, err := strconv.Atoi(s.Year)
	if err != nil {
		return Entry{}, errors.NewValidationError("year", s.Year, "must be an integer")
	}

	return Entry{
		ID:           newEntryID(),
		AddedAt:      utc.Now(),
		Title:        s.Title,
		Year:         year,
		Developer:    s.Developer,
		Publisher:    s.Publisher,
		Platform:     AddedPlatform,
		PlatformLink: AddedPlatformLink,
	}, nil
}

// Submit validates the submission and, on success, adds the resulting entry
// to the catalog. On failure the catalog is untouched and the validation
// error is returned for the caller to surface.
func (s Submission) Submit(c *Catalog) (Entry, error) {
	entry, err := s.Validate()
	if err != nil {
		return Entry{}, err
	}

	c.Add(entry)
	return entry, nil
}
