package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renova-inc/renova-engine/pkg/models"
)

func TestNewPatternSet_CoreListedBeforeUser(t *testing.T) {
	core := []models.Pattern{
		{ID: "core:trade:a", Pattern: "a", MatchType: models.MatchTypeContains, Category: models.CategoryTrade, Enabled: true},
	}
	custom := []models.Pattern{
		{ID: "u1", Pattern: "b", MatchType: models.MatchTypeContains, Category: models.CategoryTrade, Enabled: true},
	}

	set := NewPatternSet(core, custom)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, models.PatternSourceCore, set.All()[0].Rule.Source)
	assert.Equal(t, models.PatternSourceUser, set.All()[1].Rule.Source)
}

func TestNewPatternSet_CategoryView(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)

	for _, category := range []string{
		models.CategoryService,
		models.CategoryTrade,
		models.CategoryLocation,
		models.CategoryIntent,
		models.CategorySupply,
	} {
		assert.NotEmpty(t, set.Category(category), "category %s should have core patterns", category)
	}
	assert.Empty(t, set.Category("nonsense"))
}

func TestNewPatternSet_TagsSourceOnMerge(t *testing.T) {
	// Source on the incoming records is overwritten by the merge, so a
	// caller cannot smuggle a user pattern in as core.
	custom := []models.Pattern{
		{ID: "u1", Pattern: "x", MatchType: models.MatchTypeContains, Category: models.CategoryTrade, Enabled: true, Source: models.PatternSourceCore},
	}

	set := NewPatternSet(nil, custom)
	assert.Equal(t, models.PatternSourceUser, set.All()[0].Rule.Source)
}

func TestCorePatterns_AllValidAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range CorePatterns() {
		assert.True(t, models.ValidMatchType(p.MatchType), "pattern %s has invalid match type", p.ID)
		assert.True(t, models.ValidCategory(p.Category), "pattern %s has invalid category", p.ID)
		assert.NotEmpty(t, p.Pattern, "pattern %s is empty", p.ID)
		assert.False(t, seen[p.ID], "duplicate core pattern id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCorePatterns_AllRegexesCompile(t *testing.T) {
	set := NewPatternSet(CorePatterns(), nil)
	for _, p := range set.All() {
		assert.False(t, p.Broken, "core pattern %s does not compile", p.Rule.ID)
	}
}
