package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// mockTradeRepo implements repositories.TradeRepository for testing.
type mockTradeRepo struct {
	trades    []*models.Trade
	upsertErr error
}

func (m *mockTradeRepo) Upsert(_ context.Context, t *models.Trade) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, existing := range m.trades {
		if existing.Name == t.Name {
			t.ID = existing.ID
			*existing = *t
			return nil
		}
	}
	t.ID = uuid.New()
	copied := *t
	m.trades = append(m.trades, &copied)
	return nil
}

func (m *mockTradeRepo) GetByName(_ context.Context, name string) (*models.Trade, error) {
	for _, t := range m.trades {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTradeRepo) List(_ context.Context, enabledOnly bool) ([]models.Trade, error) {
	var out []models.Trade
	for _, t := range m.trades {
		if enabledOnly && !t.Enabled {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func TestSeedService_Seed(t *testing.T) {
	trades := &mockTradeRepo{}
	mappings := &mockServiceMappingRepo{}
	svc := NewSeedService(trades, mappings, zap.NewNop())

	err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Len(t, trades.trades, len(seedTrades))
	assert.Len(t, mappings.mappings, len(seedServiceMappings))

	// Every seeded mapping points at a real trade.
	byID := make(map[uuid.UUID]bool)
	for _, trade := range trades.trades {
		byID[trade.ID] = true
	}
	for _, m := range mappings.mappings {
		assert.True(t, byID[m.TradeID], "mapping %q references unseeded trade", m.Keyword)
	}
}

func TestSeedService_Seed_Idempotent(t *testing.T) {
	trades := &mockTradeRepo{}
	mappings := &mockServiceMappingRepo{}
	svc := NewSeedService(trades, mappings, zap.NewNop())

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, trades.trades, len(seedTrades))
	assert.Len(t, mappings.mappings, len(seedServiceMappings))
}

func TestSeedService_Seed_UpsertFailure(t *testing.T) {
	trades := &mockTradeRepo{upsertErr: assert.AnError}
	svc := NewSeedService(trades, &mockServiceMappingRepo{}, zap.NewNop())

	err := svc.Seed(context.Background())
	assert.Error(t, err)
}

func TestSeedData_MappingsReferenceSeededTrades(t *testing.T) {
	names := make(map[string]bool, len(seedTrades))
	for _, st := range seedTrades {
		names[st.name] = true
	}
	for keyword, tradeName := range seedServiceMappings {
		assert.True(t, names[tradeName], "mapping %q references unknown trade %q", keyword, tradeName)
	}
}

func TestTradeService_GetTrades_EnabledOnly(t *testing.T) {
	trades := &mockTradeRepo{
		trades: []*models.Trade{
			{ID: uuid.New(), Name: "Plumber", Enabled: true},
			{ID: uuid.New(), Name: "Retired Trade", Enabled: false},
		},
	}
	svc := NewTradeService(trades)

	got, err := svc.GetTrades(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plumber", got[0].Name)
}
