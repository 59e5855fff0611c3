package models

import "strings"

// CanonicalLocation is the normalized three-level region representation.
// Secondary is only meaningful under a Primary, Tertiary only under a
// Secondary.
type CanonicalLocation struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Tertiary  string `json:"tertiary,omitempty"`
}

// Depth returns how many levels of the hierarchy are populated (1..3).
func (l CanonicalLocation) Depth() int {
	switch {
	case l.Tertiary != "":
		return 3
	case l.Secondary != "":
		return 2
	case l.Primary != "":
		return 1
	}
	return 0
}

// String renders the location most-specific first, e.g.
// "Central, Central and Western, Hong Kong Island".
func (l CanonicalLocation) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Tertiary, l.Secondary, l.Primary} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
