//go:build integration

package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/repositories"
	"github.com/renova-inc/renova-engine/pkg/testhelpers"
)

func testPattern(id string) *models.Pattern {
	return &models.Pattern{
		ID:        id,
		Name:      "Pattern " + id,
		Pattern:   "keyword-" + id,
		MatchType: models.MatchTypeContains,
		Category:  models.CategoryService,
		MapsTo:    "Plumber",
		Enabled:   true,
	}
}

func TestPatternRepository_CreateAndGet(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)
	ctx := context.Background()

	p := testPattern(uuid.NewString())
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Pattern, got.Pattern)
	assert.Equal(t, p.MapsTo, got.MapsTo)
	assert.Equal(t, models.PatternSourceUser, got.Source)
}

func TestPatternRepository_Create_DuplicateID_Conflict(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)
	ctx := context.Background()

	p := testPattern(uuid.NewString())
	require.NoError(t, repo.Create(ctx, p))

	// Same id again: the unique constraint loser must see ErrConflict.
	dup := testPattern(p.ID)
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestPatternRepository_Update(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)
	ctx := context.Background()

	p := testPattern(uuid.NewString())
	require.NoError(t, repo.Create(ctx, p))
	created := p.CreatedAt

	p.Name = "Renamed"
	p.Enabled = false
	require.NoError(t, repo.Update(ctx, p))
	assert.Equal(t, created.UTC().Truncate(0), p.CreatedAt.UTC().Truncate(0))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.False(t, got.Enabled)
}

func TestPatternRepository_Update_NotFound(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)

	err := repo.Update(context.Background(), testPattern(uuid.NewString()))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPatternRepository_Delete(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)
	ctx := context.Background()

	p := testPattern(uuid.NewString())
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), apperrors.ErrNotFound)
}

func TestPatternRepository_List_InsertionOrder(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := repositories.NewPatternRepository(db.DB)
	ctx := context.Background()

	first := testPattern(uuid.NewString())
	second := testPattern(uuid.NewString())
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)

	indexOf := func(id string) int {
		for i, p := range list {
			if p.ID == id {
				assert.Equal(t, models.PatternSourceUser, p.Source)
				return i
			}
		}
		t.Fatalf("pattern %s not in list", id)
		return -1
	}
	assert.Less(t, indexOf(first.ID), indexOf(second.ID))
}
