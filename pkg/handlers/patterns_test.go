package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/resolve"
)

// mockPatternService implements services.PatternService for testing.
type mockPatternService struct {
	patterns  []models.Pattern
	createErr error
	updateErr error
	deleteErr error
	listErr   error

	lastCreated *models.Pattern
	lastUpdated *models.Pattern
	lastID      string
}

func (m *mockPatternService) List(_ context.Context, includeCore bool, category string) ([]models.Pattern, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Pattern
	for _, p := range m.patterns {
		if !includeCore && p.Source == models.PatternSourceCore {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPatternService) Create(_ context.Context, p *models.Pattern) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = p
	return nil
}

func (m *mockPatternService) Update(_ context.Context, id string, p *models.Pattern) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastID = id
	m.lastUpdated = p
	return nil
}

func (m *mockPatternService) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastID = id
	return nil
}

func (m *mockPatternService) Snapshot(_ context.Context) *resolve.PatternSet {
	return resolve.NewPatternSet(resolve.CorePatterns(), nil)
}

func newPatternsServer(svc *mockPatternService) *http.ServeMux {
	mux := http.NewServeMux()
	NewPatternsHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestPatternsHandler_List(t *testing.T) {
	svc := &mockPatternService{
		patterns: []models.Pattern{
			{ID: "core:trade:plumber", Category: models.CategoryTrade, Source: models.PatternSourceCore},
			{ID: "u-1", Category: models.CategoryService, Source: models.PatternSourceUser},
		},
	}
	mux := newPatternsServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/patterns", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    PatternListResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data.Total)
}

func TestPatternsHandler_List_ExcludeCore(t *testing.T) {
	svc := &mockPatternService{
		patterns: []models.Pattern{
			{ID: "core:trade:plumber", Source: models.PatternSourceCore},
			{ID: "u-1", Source: models.PatternSourceUser},
		},
	}
	mux := newPatternsServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/patterns?includeCore=false", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data PatternListResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "u-1", resp.Data.Patterns[0].ID)
}

func TestPatternsHandler_Create(t *testing.T) {
	svc := &mockPatternService{}
	mux := newPatternsServer(svc)

	body := `{"name":"Waterproofing keyword","pattern":"waterproof","match_type":"contains","category":"service","maps_to":"Waterproofing Specialist"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patterns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreated)
	assert.Equal(t, "waterproof", svc.lastCreated.Pattern)
	assert.True(t, svc.lastCreated.Enabled, "enabled defaults to true when omitted")
}

func TestPatternsHandler_Create_ValidationError(t *testing.T) {
	svc := &mockPatternService{createErr: apperrors.ErrValidation}
	mux := newPatternsServer(svc)

	body := `{"name":"bad","pattern":"(","match_type":"regex","category":"service"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patterns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp["error"])
}

func TestPatternsHandler_Create_MalformedBody(t *testing.T) {
	mux := newPatternsServer(&mockPatternService{})

	req := httptest.NewRequest(http.MethodPost, "/api/patterns", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatternsHandler_Update_ImmutableCore(t *testing.T) {
	svc := &mockPatternService{updateErr: apperrors.ErrImmutablePattern}
	mux := newPatternsServer(svc)

	body := `{"name":"x","pattern":"x","match_type":"contains","category":"trade"}`
	req := httptest.NewRequest(http.MethodPut, "/api/patterns/core:trade:plumber", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "immutable_pattern", resp["error"])
}

func TestPatternsHandler_Update_NotFound(t *testing.T) {
	svc := &mockPatternService{updateErr: apperrors.ErrNotFound}
	mux := newPatternsServer(svc)

	body := `{"name":"x","pattern":"x","match_type":"contains","category":"trade"}`
	req := httptest.NewRequest(http.MethodPut, "/api/patterns/u-404", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatternsHandler_Create_Conflict(t *testing.T) {
	svc := &mockPatternService{createErr: apperrors.ErrConflict}
	mux := newPatternsServer(svc)

	body := `{"name":"x","pattern":"x","match_type":"contains","category":"trade"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patterns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPatternsHandler_Delete(t *testing.T) {
	svc := &mockPatternService{}
	mux := newPatternsServer(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/patterns/u-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", svc.lastID)
}

func TestPatternsHandler_Delete_ImmutableCore(t *testing.T) {
	svc := &mockPatternService{deleteErr: apperrors.ErrImmutablePattern}
	mux := newPatternsServer(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/patterns/core:service:plumbing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
