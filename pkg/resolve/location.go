package resolve

import (
	"strings"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// LocationMatch is the outcome of location resolution: the canonical
// hierarchy the mention resolved to, how deep it matched, where in the
// input it was found, and (for pattern-driven matches) the rule that fired.
type LocationMatch struct {
	Location models.CanonicalLocation
	Depth    int
	Span     [2]int
	Rule     *models.Pattern
}

// LookupLocation resolves a canonical region name at whatever level it
// exists in the gazetteer, filling in the implied ancestors. Tertiary names
// are checked first so an ambiguous name resolves to its deepest use.
func LookupLocation(name string) (models.CanonicalLocation, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.CanonicalLocation{}, false
	}
	for _, region := range gazetteer {
		for _, district := range region.districts {
			for _, area := range district.areas {
				if strings.ToLower(area) == needle {
					return models.CanonicalLocation{Primary: region.name, Secondary: district.name, Tertiary: area}, true
				}
			}
		}
	}
	for _, region := range gazetteer {
		for _, district := range region.districts {
			if strings.ToLower(district.name) == needle {
				return models.CanonicalLocation{Primary: region.name, Secondary: district.name}, true
			}
		}
	}
	for _, region := range gazetteer {
		if strings.ToLower(region.name) == needle {
			return models.CanonicalLocation{Primary: region.name}, true
		}
	}
	return models.CanonicalLocation{}, false
}

// ResolveLocation finds the most specific location mentioned in the input.
// The gazetteer is walked top-down (tertiary, then secondary, then primary
// names) and location-category patterns are evaluated on top; only the
// deepest match is kept.
func ResolveLocation(input string, set *PatternSet) *LocationMatch {
	if len(input) > MaxInputLength {
		input = input[:MaxInputLength]
	}
	in := strings.ToLower(input)

	var best *LocationMatch
	keep := func(m *LocationMatch) {
		if best == nil || m.Depth > best.Depth {
			best = m
		}
	}

	for _, region := range gazetteer {
		for _, district := range region.districts {
			for _, area := range district.areas {
				if i := strings.Index(in, strings.ToLower(area)); i >= 0 {
					keep(&LocationMatch{
						Location: models.CanonicalLocation{Primary: region.name, Secondary: district.name, Tertiary: area},
						Depth:    3,
						Span:     [2]int{i, i + len(area)},
					})
				}
			}
			if i := strings.Index(in, strings.ToLower(district.name)); i >= 0 {
				keep(&LocationMatch{
					Location: models.CanonicalLocation{Primary: region.name, Secondary: district.name},
					Depth:    2,
					Span:     [2]int{i, i + len(district.name)},
				})
			}
		}
		if i := strings.Index(in, strings.ToLower(region.name)); i >= 0 {
			keep(&LocationMatch{
				Location: models.CanonicalLocation{Primary: region.name},
				Depth:    1,
				Span:     [2]int{i, i + len(region.name)},
			})
		}
	}

	for _, p := range set.Category(models.CategoryLocation) {
		start, end, ok := MatchSpan(p, input)
		if !ok {
			continue
		}
		loc, found := LookupLocation(p.Rule.Target())
		if !found {
			// Pattern maps to a name outside the gazetteer; treat it as a
			// bare primary so the mention is still reported.
			loc = models.CanonicalLocation{Primary: p.Rule.Target()}
		}
		rule := p.Rule
		keep(&LocationMatch{Location: loc, Depth: loc.Depth(), Span: [2]int{start, end}, Rule: &rule})
	}

	return best
}
