package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renova-inc/renova-engine/pkg/models"
)

func TestResolveWorkIntent(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"full renovation of my flat", models.WorkIntentRenovation, true},
		{"the tap is broken", models.WorkIntentRepair, true},
		{"upgrade the kitchen counters", models.WorkIntentUpgrade, true},
		{"annual aircon servicing", models.WorkIntentMaintenance, true},
		{"hello there", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ResolveWorkIntent(tt.input, set)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTrades_DedupeByTarget(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	// "leaky" and "pipe" both hit the plumbing rule set; only one Plumber
	// candidate must come back.
	got := ResolveTrades("leaky pipe under the sink", set)

	targets := make(map[string]int)
	for _, c := range got {
		targets[c.Target]++
	}
	assert.Equal(t, 1, targets["Plumber"])
}

func TestResolveTrades_ServiceEvidenceListedFirst(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	// "plumber" (trade) and "wiring" (service) both appear; the service
	// match must lead.
	got := ResolveTrades("wiring problem, maybe need a plumber too", set)
	require.NotEmpty(t, got)
	assert.Equal(t, "Electrician", got[0].Target)
	assert.Equal(t, models.CategoryService, got[0].Rule.Category)
}

func TestResolveSupplies(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	got := ResolveSupplies("buy porcelain tiles and a new basin", set)

	targets := make([]string, 0, len(got))
	for _, c := range got {
		targets = append(targets, c.Target)
	}
	assert.Contains(t, targets, "Tiles")
	assert.Contains(t, targets, "Sanitary Ware")
}

func TestHasActionVerb(t *testing.T) {
	assert.True(t, HasActionVerb("I need someone"))
	assert.True(t, HasActionVerb("looking for help"))
	assert.True(t, HasActionVerb("FIX my door"))
	assert.False(t, HasActionVerb("blue bedroom walls"))
}

func TestRank_LocationOnlyBeatsVerbOnly(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	verbOnly := Rank("need something done", CollectEvidence("need something done", set))
	locationOnly := Rank("somewhere in Stanley", CollectEvidence("somewhere in Stanley", set))

	assert.Greater(t, locationOnly.Confidence, verbOnly.Confidence)
	require.NotNil(t, locationOnly.Location)
	assert.Equal(t, "Hong Kong Island", locationOnly.Location.Location.Primary)
}

func TestRank_NonEmptyZeroEvidenceFallsBack(t *testing.T) {
	set := NewPatternSet(nil, nil)

	d := Rank("zzzz", CollectEvidence("zzzz", set))
	assert.InDelta(t, 0.5, d.Confidence, 1e-9)
	assert.Equal(t, "zzzz", d.DisplayText)
}
