package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/services"
)

// ============================================================================
// Request Types
// ============================================================================

// ResolveRequest for POST /api/resolve
type ResolveRequest struct {
	Query string `json:"query"`
}

// PrefillRequest for POST /api/projects/prefill
type PrefillRequest struct {
	Description string `json:"description"`
}

// ============================================================================
// Handler
// ============================================================================

// ResolveHandler exposes intent resolution and project prefill over HTTP.
type ResolveHandler struct {
	resolverService services.ResolverService
	logger          *zap.Logger
}

// NewResolveHandler creates a new resolve handler.
func NewResolveHandler(resolverService services.ResolverService, logger *zap.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolverService: resolverService,
		logger:          logger,
	}
}

// RegisterRoutes registers the resolve handler's routes on the given mux.
func (h *ResolveHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/resolve", h.Resolve)
	mux.HandleFunc("POST /api/projects/prefill", h.Prefill)
}

// Resolve handles POST /api/resolve
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	result := h.resolverService.ResolveIntent(r.Context(), req.Query)

	h.logger.Debug("Resolved intent",
		zap.String("action", result.Action),
		zap.String("route", result.Route),
		zap.Float64("confidence", result.Confidence))

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Prefill handles POST /api/projects/prefill
func (h *ResolveHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	var req PrefillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.Description) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Description is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	prefill := h.resolverService.Prefill(r.Context(), req.Description)

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: prefill}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
