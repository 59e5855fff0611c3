package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// PatternListResponse for GET /api/patterns
type PatternListResponse struct {
	Patterns []models.Pattern `json:"patterns"`
	Total    int              `json:"total"`
}

// CreatePatternRequest for POST /api/patterns
type CreatePatternRequest struct {
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	MatchType string `json:"match_type"`
	Category  string `json:"category"`
	MapsTo    string `json:"maps_to,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// UpdatePatternRequest for PUT /api/patterns/{id}
type UpdatePatternRequest struct {
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	MatchType string `json:"match_type"`
	Category  string `json:"category"`
	MapsTo    string `json:"maps_to,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// ============================================================================
// Handler
// ============================================================================

// PatternsHandler handles pattern management HTTP requests. Only
// user-sourced records can be mutated; core ids are rejected before any
// write reaches persistence.
type PatternsHandler struct {
	patternService services.PatternService
	logger         *zap.Logger
}

// NewPatternsHandler creates a new patterns handler.
func NewPatternsHandler(patternService services.PatternService, logger *zap.Logger) *PatternsHandler {
	return &PatternsHandler{
		patternService: patternService,
		logger:         logger,
	}
}

// RegisterRoutes registers the patterns handler's routes on the given mux.
func (h *PatternsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/patterns", h.List)
	mux.HandleFunc("POST /api/patterns", h.Create)
	mux.HandleFunc("PUT /api/patterns/{id}", h.Update)
	mux.HandleFunc("DELETE /api/patterns/{id}", h.Delete)
}

// List handles GET /api/patterns?includeCore=<bool>&category=<category>
func (h *PatternsHandler) List(w http.ResponseWriter, r *http.Request) {
	includeCore := r.URL.Query().Get("includeCore") != "false"
	category := r.URL.Query().Get("category")

	patterns, err := h.patternService.List(r.Context(), includeCore, category)
	if err != nil {
		h.logger.Error("Failed to list patterns", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_patterns_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := PatternListResponse{
		Patterns: patterns,
		Total:    len(patterns),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/patterns
func (h *PatternsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	pattern := &models.Pattern{
		Name:      req.Name,
		Pattern:   req.Pattern,
		MatchType: req.MatchType,
		Category:  req.Category,
		MapsTo:    req.MapsTo,
		Enabled:   req.Enabled == nil || *req.Enabled,
	}

	if err := h.patternService.Create(r.Context(), pattern); err != nil {
		h.writeMutationError(w, err, "create_pattern_failed", zap.String("name", req.Name))
		return
	}

	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: pattern}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /api/patterns/{id}
func (h *PatternsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdatePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	pattern := &models.Pattern{
		Name:      req.Name,
		Pattern:   req.Pattern,
		MatchType: req.MatchType,
		Category:  req.Category,
		MapsTo:    req.MapsTo,
		Enabled:   req.Enabled == nil || *req.Enabled,
	}

	if err := h.patternService.Update(r.Context(), id, pattern); err != nil {
		h.writeMutationError(w, err, "update_pattern_failed", zap.String("pattern_id", id))
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: pattern}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/patterns/{id}
func (h *PatternsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.patternService.Delete(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "delete_pattern_failed", zap.String("pattern_id", id))
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Pattern deleted"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeMutationError maps service errors onto HTTP status codes.
func (h *PatternsHandler) writeMutationError(w http.ResponseWriter, err error, fallbackCode string, fields ...zap.Field) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
	case errors.Is(err, apperrors.ErrImmutablePattern):
		if err := ErrorResponse(w, http.StatusForbidden, "immutable_pattern", "Core patterns cannot be modified"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
	case errors.Is(err, apperrors.ErrConflict):
		if err := ErrorResponse(w, http.StatusConflict, "pattern_conflict", "A pattern with this id already exists"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
	case errors.Is(err, apperrors.ErrNotFound):
		if err := ErrorResponse(w, http.StatusNotFound, "pattern_not_found", "Pattern not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
	default:
		h.logger.Error("Pattern mutation failed", append(fields, zap.Error(err))...)
		if err := ErrorResponse(w, http.StatusInternalServerError, fallbackCode, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}
