package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/models"
)

// mockServiceMappingRepo implements repositories.ServiceMappingRepository
// for testing. Usage counting happens on goroutines, hence the mutex.
type mockServiceMappingRepo struct {
	mu       sync.Mutex
	mappings []models.ServiceMapping
	usage    map[string]int
	listErr  error
}

func (m *mockServiceMappingRepo) Upsert(_ context.Context, keyword string, tradeID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.mappings {
		if m.mappings[i].Keyword == keyword {
			m.mappings[i].TradeID = tradeID
			return nil
		}
	}
	m.mappings = append(m.mappings, models.ServiceMapping{
		ID:      uuid.New(),
		Keyword: keyword,
		TradeID: tradeID,
	})
	return nil
}

func (m *mockServiceMappingRepo) List(_ context.Context) ([]models.ServiceMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.ServiceMapping, len(m.mappings))
	copy(out, m.mappings)
	return out, nil
}

func (m *mockServiceMappingRepo) IncrementUsage(_ context.Context, keyword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.usage == nil {
		m.usage = make(map[string]int)
	}
	m.usage[keyword]++
	return nil
}

func (m *mockServiceMappingRepo) usageOf(keyword string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usage[keyword]
}

func newTestResolverService(t *testing.T, mappings *mockServiceMappingRepo) ResolverService {
	t.Helper()
	if mappings == nil {
		patterns := NewPatternService(&mockPatternRepo{}, nil, nil, time.Minute, zap.NewNop())
		return NewResolverService(patterns, nil, zap.NewNop())
	}
	patterns := NewPatternService(&mockPatternRepo{}, mappings, nil, time.Minute, zap.NewNop())
	return NewResolverService(patterns, mappings, zap.NewNop())
}

func TestResolverService_ResolveIntent_FindProfessional(t *testing.T) {
	svc := newTestResolverService(t, nil)

	result := svc.ResolveIntent(context.Background(), "I have a leaky pipe in Central")

	assert.Equal(t, models.ActionFindProfessional, result.Action)
	assert.Equal(t, models.RouteProfessionals, result.Route)
	assert.Equal(t, "plumber", result.Metadata.ProfessionType)
	assert.Equal(t, "Hong Kong Island", result.Metadata.Location)
	assert.InDelta(t, 0.95, result.Confidence, 0.001)
}

func TestResolverService_ResolveIntent_NeverErrors(t *testing.T) {
	// Even with a failing repository the snapshot degrades to core-only and
	// resolution still answers.
	patterns := NewPatternService(&mockPatternRepo{listErr: assert.AnError}, nil, nil, time.Minute, zap.NewNop())
	svc := NewResolverService(patterns, nil, zap.NewNop())

	result := svc.ResolveIntent(context.Background(), "fix my leaking tap")
	assert.Equal(t, models.ActionFindProfessional, result.Action)
	assert.Equal(t, "plumber", result.Metadata.ProfessionType)
}

func TestResolverService_ResolveIntent_EmptyQuery(t *testing.T) {
	svc := newTestResolverService(t, nil)

	result := svc.ResolveIntent(context.Background(), "   ")

	assert.Equal(t, models.ActionUnknown, result.Action)
	assert.Equal(t, models.RouteHome, result.Route)
	assert.Zero(t, result.Confidence)
}

func TestResolverService_ResolveIntent_CountsMappingUsage(t *testing.T) {
	mappings := &mockServiceMappingRepo{
		mappings: []models.ServiceMapping{
			{Keyword: "burst pipe", TradeName: "Plumber"},
		},
	}
	svc := newTestResolverService(t, mappings)

	result := svc.ResolveIntent(context.Background(), "help, burst pipe in my kitchen")
	assert.Equal(t, models.ActionFindProfessional, result.Action)

	// The counter is bumped asynchronously.
	require.Eventually(t, func() bool {
		return mappings.usageOf("burst pipe") == 1
	}, time.Second, 10*time.Millisecond)
}

func TestResolverService_Prefill(t *testing.T) {
	svc := newTestResolverService(t, nil)

	prefill := svc.Prefill(context.Background(), "Renovate my kitchen in Sha Tin. Need new cabinets and plumbing work.")

	assert.Equal(t, models.WorkIntentRenovation, prefill.WorkIntent)
	assert.Contains(t, prefill.TradesRequired, "Plumber")
	require.NotNil(t, prefill.Location)
	assert.Equal(t, "New Territories", prefill.Location.Primary)
	assert.Equal(t, "Sha Tin", prefill.Location.Secondary)
	assert.NotEmpty(t, prefill.Title)
}

func TestResolverService_Prefill_CustomPatternMerged(t *testing.T) {
	repo := &mockPatternRepo{}
	patterns := NewPatternService(repo, nil, nil, time.Minute, zap.NewNop())
	svc := NewResolverService(patterns, nil, zap.NewNop())

	custom := &models.Pattern{
		Name:      "Smart home keyword",
		Pattern:   "smart home",
		MatchType: models.MatchTypeContains,
		Category:  models.CategoryService,
		MapsTo:    "Smart Home Installer",
		Enabled:   true,
	}
	require.NoError(t, patterns.Create(context.Background(), custom))

	prefill := svc.Prefill(context.Background(), "Install a smart home system in my flat")
	assert.Contains(t, prefill.TradesRequired, "Smart Home Installer")
}
