package models

import (
	"strings"
	"time"
)

// Match strategies supported by the match engine.
const (
	MatchTypeContains   = "contains"
	MatchTypeEquals     = "equals"
	MatchTypeStartsWith = "startsWith"
	MatchTypeEndsWith   = "endsWith"
	MatchTypeRegex      = "regex"
)

// Pattern categories - the dimension a pattern contributes evidence toward.
const (
	CategoryService  = "service"
	CategoryTrade    = "trade"
	CategoryLocation = "location"
	CategorySupply   = "supply"
	CategoryIntent   = "intent"
)

// Pattern sources.
const (
	PatternSourceCore = "core" // shipped with the binary, immutable
	PatternSourceUser = "user" // admin-authored, stored in Postgres
)

// Pattern is a single matching rule evaluated by the resolution engine.
// Core patterns are compiled into the binary; user patterns are persisted
// in the patterns table.
type Pattern struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	MatchType string    `json:"match_type"`
	Category  string    `json:"category"`
	MapsTo    string    `json:"maps_to,omitempty"`
	Enabled   bool      `json:"enabled"`
	Source    string    `json:"_source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Target returns the canonical value this pattern resolves to: MapsTo when
// set, otherwise the pattern's own name.
func (p *Pattern) Target() string {
	if p.MapsTo != "" {
		return p.MapsTo
	}
	return p.Name
}

// ValidMatchType reports whether s is a known match strategy.
func ValidMatchType(s string) bool {
	switch s {
	case MatchTypeContains, MatchTypeEquals, MatchTypeStartsWith, MatchTypeEndsWith, MatchTypeRegex:
		return true
	}
	return false
}

// ValidCategory reports whether s is a known pattern category.
func ValidCategory(s string) bool {
	switch s {
	case CategoryService, CategoryTrade, CategoryLocation, CategorySupply, CategoryIntent:
		return true
	}
	return false
}

// CorePatternID derives the stable identifier for a core pattern from its
// category and name. User pattern IDs are generated UUIDs and never collide
// with this namespace.
func CorePatternID(category, name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	return "core:" + category + ":" + slug
}

// IsCoreID reports whether id belongs to the core (immutable) namespace.
func IsCoreID(id string) bool {
	return strings.HasPrefix(id, "core:")
}
