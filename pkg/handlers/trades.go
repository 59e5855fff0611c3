package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/services"
)

// TradeListResponse for GET /api/trades
type TradeListResponse struct {
	Trades []models.Trade `json:"trades"`
	Total  int            `json:"total"`
}

// TradesHandler serves the trade catalog.
type TradesHandler struct {
	tradeService services.TradeService
	logger       *zap.Logger
}

// NewTradesHandler creates a new trades handler.
func NewTradesHandler(tradeService services.TradeService, logger *zap.Logger) *TradesHandler {
	return &TradesHandler{
		tradeService: tradeService,
		logger:       logger,
	}
}

// RegisterRoutes registers the trades handler's routes on the given mux.
func (h *TradesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/trades", h.List)
}

// List handles GET /api/trades
func (h *TradesHandler) List(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradeService.GetTrades(r.Context())
	if err != nil {
		h.logger.Error("Failed to list trades", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_trades_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := TradeListResponse{
		Trades: trades,
		Total:  len(trades),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
