package catalog

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
)

// Entry is one game record in the catalog.
//
// The JSON and YAML field names mirror the bundled document schema exactly
// (Game, GameLink, Year, Dev, ...) and must be preserved for interchange
// with pre-existing data files. Optional link fields marshal as absent keys
// when empty so an unmodified snapshot round-trips losslessly.
type Entry struct {
	// ID uniquely identifies the entry for the lifetime of the process.
	// It is assigned at creation, never reused, and never serialized.
	ID string `json:"-" yaml:"-"`

	// AddedAt records when the entry was created through the add path.
	// Zero for entries loaded from the bundled document; never serialized.
	AddedAt utc.Time `json:"-" yaml:"-"`

	Title         string `json:"Game" yaml:"Game"`
	TitleLink     string `json:"GameLink,omitempty" yaml:"GameLink,omitempty"`
	Year          int    `json:"Year" yaml:"Year"`
	Developer     string `json:"Dev" yaml:"Dev"`
	DeveloperLink string `json:"DevLink,omitempty" yaml:"DevLink,omitempty"`
	Publisher     string `json:"Publisher" yaml:"Publisher"`
	PublisherLink string `json:"PublisherLink,omitempty" yaml:"PublisherLink,omitempty"`
	Platform      string `json:"Platform" yaml:"Platform"`
	PlatformLink  string `json:"PlatformLink,omitempty" yaml:"PlatformLink,omitempty"`
}

// newEntryID returns a fresh opaque entry identifier.
func newEntryID() string {
	return uuid.NewString()
}
