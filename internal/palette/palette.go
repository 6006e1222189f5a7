package palette

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Entry is one named palette color.
type Entry struct {
	// ID is the entry's unique identifier.
	ID string

	// Name is the user-visible color name.
	Name string

	// Color is the parsed color value.
	Color colorful.Color
}

// NewEntry creates an entry with a fresh id from a CSS hex value like
// "#ff4136".
func NewEntry(name, css string) (Entry, error) {
	c, err := colorful.Hex(css)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing color %q: %w", css, err)
	}
	return Entry{
		ID:    uuid.NewString(),
		Name:  name,
		Color: c,
	}, nil
}

// CSS returns the entry's color as a lowercase CSS hex string.
func (e Entry) CSS() string {
	return e.Color.Hex()
}

// TextColor returns black or white as CSS hex, whichever reads better
// over the entry's color.
func (e Entry) TextColor() string {
	// Relative luminance threshold, perceptually uniform enough for
	// label foregrounds.
	if _, _, l := e.Color.HSLuv(); l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
