package models

import (
	"time"

	"github.com/google/uuid"
)

// Trade categories.
const (
	TradeCategoryContractor = "contractor"
	TradeCategoryCompany    = "company"
	TradeCategoryReseller   = "reseller"
	TradeCategoryGeneral    = "general"
)

// Trade is a canonical profession record. Trades are seeded at startup
// (upsert by name, so re-seeding is idempotent) and referenced by service
// mappings and by pattern maps_to values.
type Trade struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Aliases     []string  `json:"aliases,omitempty"`
	Enabled     bool      `json:"enabled"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidTradeCategory reports whether s is a known trade category.
func ValidTradeCategory(s string) bool {
	switch s {
	case TradeCategoryContractor, TradeCategoryCompany, TradeCategoryReseller, TradeCategoryGeneral:
		return true
	}
	return false
}
