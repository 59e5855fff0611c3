package resolve

import (
	"regexp"
	"strings"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// Resolver is the pattern-based intent and trade resolution engine. It is
// a pure, synchronous computation over one pattern snapshot: safe for
// concurrent use, no internal mutable state.
type Resolver struct {
	set *PatternSet
}

// New creates a resolver over the given snapshot.
func New(set *PatternSet) *Resolver {
	return &Resolver{set: set}
}

// The join and manage verb sets are narrow and would be swallowed by the
// broader find-professional verbs, so they are checked first. The chain is
// a fixed priority order, not a race.
var (
	joinVerbRe   = regexp.MustCompile(`(?i)\b(join|sign ?up|register|become a (professional|contractor|pro)|list my (business|company|services)|offer my services)\b`)
	manageVerbRe = regexp.MustCompile(`(?i)\b(manage|track|view|check( on)?)\b.{0,30}\b(project|quote|order|job)s?\b|\bmy projects\b`)
)

// intentStep is one entry in the router's priority chain: a predicate and
// the action taken when it fires. Each entry is independently testable.
type intentStep struct {
	name    string
	matches func(r *Resolver, input string) bool
	resolve func(r *Resolver, input string) (models.IntentResult, Evidence)
}

var intentChain = []intentStep{
	{
		name:    "join",
		matches: func(_ *Resolver, in string) bool { return joinVerbRe.MatchString(in) },
		resolve: func(_ *Resolver, in string) (models.IntentResult, Evidence) {
			return models.IntentResult{
				Action:     models.ActionJoin,
				Route:      models.RouteJoin,
				Confidence: confidenceJoin,
				Metadata:   models.IntentMetadata{DisplayText: "Join as a professional"},
			}, Evidence{}
		},
	},
	{
		name:    "manage-projects",
		matches: func(_ *Resolver, in string) bool { return manageVerbRe.MatchString(in) },
		resolve: func(_ *Resolver, in string) (models.IntentResult, Evidence) {
			return models.IntentResult{
				Action:     models.ActionManageProjects,
				Route:      models.RouteProjects,
				Confidence: confidenceManage,
				Metadata:   models.IntentMetadata{DisplayText: "Manage your projects"},
			}, Evidence{}
		},
	},
	{
		// Terminal step: always matches, so non-empty input never yields
		// unknown.
		name:    "find-professional",
		matches: func(_ *Resolver, _ string) bool { return true },
		resolve: func(r *Resolver, in string) (models.IntentResult, Evidence) {
			ev := CollectEvidence(in, r.set)
			d := Rank(in, ev)

			// professionType doubles as the search parameter on the
			// professionals page, hence lower-cased; TradesRequired keeps
			// the canonical trade names. The raw text travels along as the
			// description so a project form can be seeded from the search.
			meta := models.IntentMetadata{
				ProfessionType: strings.ToLower(d.ProfessionType),
				Description:    in,
				TradesRequired: d.Trades,
				DisplayText:    d.DisplayText,
			}
			if d.Location != nil {
				meta.Location = d.Location.Location.Primary
			}
			return models.IntentResult{
				Action:     models.ActionFindProfessional,
				Route:      models.RouteProfessionals,
				Confidence: d.Confidence,
				Metadata:   meta,
			}, ev
		},
	},
}

// ResolveIntent classifies a free-text query into a navigation action.
// Single-pass classification: empty input yields unknown, everything else
// walks the priority chain and always produces a result.
func (r *Resolver) ResolveIntent(query string) models.IntentResult {
	result, _ := r.ResolveIntentDetailed(query)
	return result
}

// ResolveIntentDetailed additionally returns the collected evidence so
// callers can act on the individual rule hits (usage counting, metrics).
func (r *Resolver) ResolveIntentDetailed(query string) (models.IntentResult, Evidence) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return models.IntentResult{
			Action:     models.ActionUnknown,
			Route:      models.RouteHome,
			Confidence: confidenceNone,
			Metadata:   models.IntentMetadata{DisplayText: ""},
		}, Evidence{}
	}
	if len(trimmed) > MaxInputLength {
		trimmed = trimmed[:MaxInputLength]
	}

	for _, step := range intentChain {
		if step.matches(r, trimmed) {
			return step.resolve(r, trimmed)
		}
	}
	// Unreachable: the last chain entry always matches.
	return models.IntentResult{
		Action:     models.ActionFindProfessional,
		Route:      models.RouteProfessionals,
		Confidence: confidenceFallback,
		Metadata:   models.IntentMetadata{DisplayText: trimmed},
	}, Evidence{}
}

// Prefill runs the resolution pipeline minus the router over a project
// description to seed the new-project form.
func (r *Resolver) Prefill(description string) (models.ProjectPrefill, Evidence) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return models.ProjectPrefill{}, Evidence{}
	}
	if len(trimmed) > MaxInputLength {
		trimmed = trimmed[:MaxInputLength]
	}

	ev := CollectEvidence(trimmed, r.set)
	d := Rank(trimmed, ev)

	pf := models.ProjectPrefill{
		Title:          prefillTitle(trimmed),
		Description:    trimmed,
		WorkIntent:     d.WorkIntent,
		TradesRequired: d.Trades,
		Confidence:     d.Confidence,
	}
	if d.Location != nil {
		loc := d.Location.Location
		pf.Location = &loc
	}
	for _, c := range ResolveSupplies(trimmed, r.set) {
		pf.SupplyCategories = append(pf.SupplyCategories, c.Target)
	}
	return pf, ev
}

// prefillTitle derives a short form title from the description.
func prefillTitle(description string) string {
	const maxTitle = 60
	title := strings.TrimSpace(description)
	if i := strings.IndexAny(title, ".\n"); i > 0 {
		title = title[:i]
	}
	if len(title) > maxTitle {
		if cut := strings.LastIndex(title[:maxTitle], " "); cut > 0 {
			title = title[:cut]
		} else {
			title = title[:maxTitle]
		}
	}
	return title
}
