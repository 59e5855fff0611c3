package resolve

import (
	"regexp"
	"sync"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// CompiledPattern pairs a rule with its compiled regex (when the rule uses
// the regex strategy). Broken is set when the regex failed to compile; such
// rules are permanently non-matching instead of erroring at match time.
type CompiledPattern struct {
	Rule   models.Pattern
	Broken bool

	re *regexp.Regexp
}

// PatternSet is an immutable merged snapshot of core and user patterns.
// Core patterns are listed before user patterns, which is the tie-breaking
// order the confidence ranker relies on. A set is never mutated after
// construction, so resolution is a pure function over (input, set) and the
// set can be shared across concurrent requests without locking.
type PatternSet struct {
	patterns   []*CompiledPattern
	byCategory map[string][]*CompiledPattern
}

// regexCache memoizes compilation per pattern source text so snapshot
// reloads do not recompile unchanged rules.
var regexCache sync.Map // pattern source -> compiledRegex

type compiledRegex struct {
	re  *regexp.Regexp
	err error
}

func compilePattern(source string) (*regexp.Regexp, error) {
	if v, ok := regexCache.Load(source); ok {
		c := v.(compiledRegex)
		return c.re, c.err
	}
	re, err := regexp.Compile("(?i)" + source)
	regexCache.Store(source, compiledRegex{re: re, err: err})
	return re, err
}

// NewPatternSet builds a snapshot from the built-in core list and the
// externally supplied custom patterns, in that order.
func NewPatternSet(core, custom []models.Pattern) *PatternSet {
	s := &PatternSet{
		patterns:   make([]*CompiledPattern, 0, len(core)+len(custom)),
		byCategory: make(map[string][]*CompiledPattern),
	}
	for _, p := range core {
		p.Source = models.PatternSourceCore
		s.add(p)
	}
	for _, p := range custom {
		p.Source = models.PatternSourceUser
		s.add(p)
	}
	return s
}

func (s *PatternSet) add(p models.Pattern) {
	cp := &CompiledPattern{Rule: p}
	if p.MatchType == models.MatchTypeRegex {
		re, err := compilePattern(p.Pattern)
		if err != nil {
			// Failure isolation: one bad rule must not break resolution.
			cp.Broken = true
		} else {
			cp.re = re
		}
	}
	s.patterns = append(s.patterns, cp)
	s.byCategory[p.Category] = append(s.byCategory[p.Category], cp)
}

// All returns every pattern in merged order (core first).
func (s *PatternSet) All() []*CompiledPattern {
	return s.patterns
}

// Category returns the patterns of one category in merged order.
func (s *PatternSet) Category(category string) []*CompiledPattern {
	return s.byCategory[category]
}

// Len returns the total number of patterns in the snapshot.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}
