package resolve

import (
	"regexp"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// Candidate is one successful rule evaluation: the canonical target the
// rule resolves to, the rule itself, and where in the input it matched.
type Candidate struct {
	Target string
	Rule   models.Pattern
	Span   [2]int
}

// ResolveTrades evaluates every enabled service and trade pattern against
// the input and collects all matches, deduplicated by target with the first
// match in merged order winning. Service patterns are evaluated first so
// service-keyword evidence outranks bare profession names, and a single
// description can yield several required trades.
func ResolveTrades(input string, set *PatternSet) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	for _, category := range []string{models.CategoryService, models.CategoryTrade} {
		for _, p := range set.Category(category) {
			start, end, ok := MatchSpan(p, input)
			if !ok {
				continue
			}
			target := p.Rule.Target()
			if seen[target] {
				continue
			}
			seen[target] = true
			out = append(out, Candidate{Target: target, Rule: p.Rule, Span: [2]int{start, end}})
		}
	}
	return out
}

// ResolveWorkIntent classifies the kind of work expressed in the input as
// renovation, repair, upgrade or maintenance. The first matching enabled
// intent pattern in merged order wins; ok is false when nothing matches.
func ResolveWorkIntent(input string, set *PatternSet) (string, bool) {
	for _, p := range set.Category(models.CategoryIntent) {
		if Matches(p, input) {
			return p.Rule.Target(), true
		}
	}
	return "", false
}

// ResolveSupplies evaluates supply-category patterns for reseller-oriented
// product mentions. Used only by the project pre-fill path.
func ResolveSupplies(input string, set *PatternSet) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	for _, p := range set.Category(models.CategorySupply) {
		start, end, ok := MatchSpan(p, input)
		if !ok {
			continue
		}
		target := p.Rule.Target()
		if seen[target] {
			continue
		}
		seen[target] = true
		out = append(out, Candidate{Target: target, Rule: p.Rule, Span: [2]int{start, end}})
	}
	return out
}

// actionVerbRe detects free-text verbs that signal the user is asking for
// work to be done, independent of any category pattern.
var actionVerbRe = regexp.MustCompile(`(?i)\b(find|need|looking for|want|hire|get|fix|repair|install|build|renovate|replace|quote)\b`)

// HasActionVerb reports whether the input contains a free-standing action
// verb.
func HasActionVerb(input string) bool {
	if len(input) > MaxInputLength {
		input = input[:MaxInputLength]
	}
	return actionVerbRe.MatchString(input)
}
