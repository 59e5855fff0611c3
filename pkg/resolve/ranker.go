package resolve

import (
	"fmt"
	"strings"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// Confidence constants. The contract is the relative ordering (compound
// evidence > single strong match > verb-only > bare fallback), not the
// exact values, so they live here in one place.
const (
	confidenceNone     = 0.0
	confidenceFallback = 0.5
	confidenceVerb     = 0.5
	confidenceLocation = 0.7
	confidenceCompound = 0.95
	confidenceJoin     = 0.95
	confidenceManage   = 0.9

	bonusTradeKeyword   = 0.3
	bonusServiceKeyword = 0.45
)

// Evidence is everything the category resolvers extracted from one input.
type Evidence struct {
	Trades     []Candidate
	Location   *LocationMatch
	WorkIntent string
	HasVerb    bool
}

// CollectEvidence runs the trade, location and intent resolvers plus
// free-standing verb detection over the input.
func CollectEvidence(input string, set *PatternSet) Evidence {
	intent, _ := ResolveWorkIntent(input, set)
	return Evidence{
		Trades:     ResolveTrades(input, set),
		Location:   ResolveLocation(input, set),
		WorkIntent: intent,
		HasVerb:    HasActionVerb(input),
	}
}

// Decision is the ranker's merged, scored view of the evidence.
type Decision struct {
	Confidence     float64
	ProfessionType string
	Trades         []string
	Location       *LocationMatch
	WorkIntent     string
	DisplayText    string
}

// Rank combines resolver outputs into one scored decision. Ties within a
// category were already broken by merged-list iteration order (core before
// user), so the first trade candidate is the primary profession. For
// non-empty input with zero evidence a low-confidence browse decision is
// emitted rather than a failure.
func Rank(input string, ev Evidence) Decision {
	d := Decision{WorkIntent: ev.WorkIntent}

	if ev.HasVerb {
		d.Confidence = confidenceVerb
	}

	if len(ev.Trades) > 0 {
		primary := ev.Trades[0]
		d.ProfessionType = primary.Target
		for _, c := range ev.Trades {
			d.Trades = append(d.Trades, c.Target)
		}
		if primary.Rule.Category == models.CategoryService {
			d.Confidence += bonusServiceKeyword
		} else {
			d.Confidence += bonusTradeKeyword
		}
	}

	if ev.Location != nil && d.Confidence < confidenceLocation {
		d.Confidence = confidenceLocation
	}

	// Compound evidence: a trade and a location together are stronger than
	// either alone.
	if len(ev.Trades) > 0 && ev.Location != nil {
		d.Confidence = confidenceCompound
	}

	if d.Confidence > confidenceCompound {
		d.Confidence = confidenceCompound
	}
	if d.Confidence == confidenceNone && strings.TrimSpace(input) != "" {
		d.Confidence = confidenceFallback
	}

	d.Location = ev.Location
	d.DisplayText = displayText(input, d)
	return d
}

// displayText builds the human-readable explanation for the decision.
func displayText(input string, d Decision) string {
	switch {
	case d.ProfessionType != "" && d.Location != nil:
		return fmt.Sprintf("Looking for a %s in %s", strings.ToLower(d.ProfessionType), d.Location.Location.String())
	case d.ProfessionType != "":
		return fmt.Sprintf("Looking for a %s", strings.ToLower(d.ProfessionType))
	case d.Location != nil:
		return fmt.Sprintf("Browse professionals in %s", d.Location.Location.String())
	default:
		return strings.TrimSpace(input)
	}
}
