package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceMapping is a direct keyword-to-trade edge. Functionally it is a
// specialised always-contains pattern of category "service", denormalised
// into its own table for fast lookups and usage counting.
type ServiceMapping struct {
	ID         uuid.UUID `json:"id"`
	Keyword    string    `json:"keyword"`
	TradeID    uuid.UUID `json:"trade_id"`
	TradeName  string    `json:"trade_name"`
	UsageCount int64     `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ServiceMappingPatternPrefix namespaces the synthetic pattern IDs built
// from service mappings when they are merged into a pattern snapshot.
const ServiceMappingPatternPrefix = "core:service:mapping:"

// AsPattern converts the mapping into a synthetic contains pattern so the
// match engine stays the single matching code path.
func (m *ServiceMapping) AsPattern() Pattern {
	return Pattern{
		ID:        ServiceMappingPatternPrefix + m.Keyword,
		Name:      m.Keyword,
		Pattern:   m.Keyword,
		MatchType: MatchTypeContains,
		Category:  CategoryService,
		MapsTo:    m.TradeName,
		Enabled:   true,
		Source:    PatternSourceCore,
	}
}
