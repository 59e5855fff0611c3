package services

import (
	"context"
	"fmt"

	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/repositories"
)

// TradeService exposes the canonical trade list to the HTTP surface.
type TradeService interface {
	// GetTrades returns enabled trades, featured first, then sort order.
	GetTrades(ctx context.Context) ([]models.Trade, error)
}

type tradeService struct {
	repo repositories.TradeRepository
}

// NewTradeService creates a new TradeService.
func NewTradeService(repo repositories.TradeRepository) TradeService {
	return &tradeService{repo: repo}
}

var _ TradeService = (*tradeService)(nil)

func (s *tradeService) GetTrades(ctx context.Context) ([]models.Trade, error) {
	trades, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return trades, nil
}
