package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/repositories"
)

// SeedService loads the built-in trade and service-mapping lists into the
// database at startup. Everything is upserted by natural key, so running
// it on every boot is safe.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	trades   repositories.TradeRepository
	mappings repositories.ServiceMappingRepository
	logger   *zap.Logger
}

// NewSeedService creates a new SeedService.
func NewSeedService(
	trades repositories.TradeRepository,
	mappings repositories.ServiceMappingRepository,
	logger *zap.Logger,
) SeedService {
	return &seedService{trades: trades, mappings: mappings, logger: logger}
}

var _ SeedService = (*seedService)(nil)

func (s *seedService) Seed(ctx context.Context) error {
	byName := make(map[string]*models.Trade, len(seedTrades))

	for _, st := range seedTrades {
		trade := &models.Trade{
			Name:        st.name,
			Category:    st.category,
			Description: st.description,
			Aliases:     st.aliases,
			Enabled:     true,
			Featured:    st.featured,
			SortOrder:   st.sortOrder,
		}
		if err := s.trades.Upsert(ctx, trade); err != nil {
			return fmt.Errorf("failed to seed trade %q: %w", st.name, err)
		}
		byName[trade.Name] = trade
	}

	for keyword, tradeName := range seedServiceMappings {
		trade, ok := byName[tradeName]
		if !ok {
			return fmt.Errorf("service mapping %q references unknown trade %q", keyword, tradeName)
		}
		if err := s.mappings.Upsert(ctx, keyword, trade.ID); err != nil {
			return fmt.Errorf("failed to seed service mapping %q: %w", keyword, err)
		}
	}

	s.logger.Info("Seeded reference data",
		zap.Int("trades", len(seedTrades)),
		zap.Int("service_mappings", len(seedServiceMappings)),
	)
	return nil
}
