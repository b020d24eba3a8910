// Package location provides narrative locations and their file loader.
package location

import (
	"errors"
	"fmt"
	"strings"
)

// Location is a place in the game world with keyed lists of narrative paragraphs.
type Location struct {
	// ID is the file stem the location is loaded from, e.g. "testplace".
	ID string
	// Name is the display title.
	Name string
	// Text maps a passage key (e.g. "intro") to its paragraphs in reading order.
	Text map[string][]string
}

// Paragraph returns the paragraph at index under key.
//
// Postcondition: Returns ("", false) when key is unknown or index is out of range.
func (l *Location) Paragraph(key string, index int) (string, bool) {
	paragraphs, ok := l.Text[key]
	if !ok || index < 0 || index >= len(paragraphs) {
		return "", false
	}
	return paragraphs[index], true
}

// Paragraphs returns every paragraph under key, or nil when key is unknown.
func (l *Location) Paragraphs(key string) []string {
	return l.Text[key]
}

// Validate checks that the location has a usable ID and name.
//
// Postcondition: Returns nil if valid, or an error describing all violations.
func (l *Location) Validate() error {
	var errs []string
	if err := ValidateID(l.ID); err != nil {
		errs = append(errs, err.Error())
	}
	if l.Name == "" {
		errs = append(errs, "location name must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("location %q: %s", l.ID, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateID rejects IDs that are empty or could escape the content directory.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("location id must not be empty")
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("location id %q must not contain path separators or '..'", id)
	}
	return nil
}
