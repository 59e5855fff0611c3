package resolve

import (
	"strings"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// MaxInputLength caps the text handed to any single rule. Go's regexp is
// linear-time (RE2), so bounding input length bounds per-rule matching cost
// even for adversarial user-authored regexes.
const MaxInputLength = 512

// Matches decides match/no-match for one compiled rule against one input
// string. Disabled rules and rules whose regex failed to compile never
// match. Literal strategies compare case-insensitively after trimming;
// regex rules are evaluated as authored (compiled case-insensitive).
func Matches(p *CompiledPattern, input string) bool {
	if !p.Rule.Enabled || p.Broken {
		return false
	}
	if len(input) > MaxInputLength {
		input = input[:MaxInputLength]
	}

	if p.Rule.MatchType == models.MatchTypeRegex {
		return p.re != nil && p.re.MatchString(input)
	}

	in := strings.ToLower(strings.TrimSpace(input))
	pat := strings.ToLower(strings.TrimSpace(p.Rule.Pattern))
	if pat == "" {
		return false
	}

	switch p.Rule.MatchType {
	case models.MatchTypeContains:
		return strings.Contains(in, pat)
	case models.MatchTypeEquals:
		return in == pat
	case models.MatchTypeStartsWith:
		return strings.HasPrefix(in, pat)
	case models.MatchTypeEndsWith:
		return strings.HasSuffix(in, pat)
	}
	return false
}

// MatchSpan returns the [start, end) byte offsets of the match. All
// strategies report offsets into the original (length-capped) input, so
// spans from literal and regex rules share one reference frame. ok is
// false when the rule does not match.
func MatchSpan(p *CompiledPattern, input string) (start, end int, ok bool) {
	if !Matches(p, input) {
		return 0, 0, false
	}
	if len(input) > MaxInputLength {
		input = input[:MaxInputLength]
	}

	if p.Rule.MatchType == models.MatchTypeRegex {
		if loc := p.re.FindStringIndex(input); loc != nil {
			return loc[0], loc[1], true
		}
		return 0, 0, false
	}

	in := strings.ToLower(input)
	pat := strings.ToLower(strings.TrimSpace(p.Rule.Pattern))

	var i int
	if p.Rule.MatchType == models.MatchTypeEndsWith {
		i = strings.LastIndex(in, pat)
	} else {
		i = strings.Index(in, pat)
	}
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(pat), true
}
