package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/metrics"
	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/repositories"
	"github.com/renova-inc/renova-engine/pkg/resolve"
)

// ResolverService runs the resolution pipeline over the current pattern
// snapshot. Both operations are total: they always produce a result, never
// an error, so a user typing garbage still lands somewhere useful.
type ResolverService interface {
	ResolveIntent(ctx context.Context, query string) models.IntentResult
	Prefill(ctx context.Context, description string) models.ProjectPrefill
}

type resolverService struct {
	patterns PatternService
	mappings repositories.ServiceMappingRepository
	logger   *zap.Logger
}

// NewResolverService creates a new ResolverService. mappings may be nil
// when usage counting is not wanted.
func NewResolverService(
	patterns PatternService,
	mappings repositories.ServiceMappingRepository,
	logger *zap.Logger,
) ResolverService {
	return &resolverService{
		patterns: patterns,
		mappings: mappings,
		logger:   logger,
	}
}

var _ ResolverService = (*resolverService)(nil)

func (s *resolverService) ResolveIntent(ctx context.Context, query string) models.IntentResult {
	start := time.Now()

	set := s.patterns.Snapshot(ctx)
	result, evidence := resolve.New(set).ResolveIntentDetailed(query)

	metrics.ResolutionsTotal.WithLabelValues(result.Action).Inc()
	metrics.ResolutionDuration.WithLabelValues(result.Action).Observe(time.Since(start).Seconds())

	s.countMappingHits(evidence)

	s.logger.Debug("Resolved intent",
		zap.String("action", result.Action),
		zap.String("route", result.Route),
		zap.Float64("confidence", result.Confidence),
	)
	return result
}

func (s *resolverService) Prefill(ctx context.Context, description string) models.ProjectPrefill {
	set := s.patterns.Snapshot(ctx)
	prefill, evidence := resolve.New(set).Prefill(description)

	metrics.PrefillsTotal.Inc()
	s.countMappingHits(evidence)

	return prefill
}

// countMappingHits bumps the usage counter of every service mapping whose
// synthetic pattern matched. Best-effort and asynchronous; counting must
// never slow down or fail a resolution.
func (s *resolverService) countMappingHits(ev resolve.Evidence) {
	if s.mappings == nil {
		return
	}
	for _, c := range ev.Trades {
		keyword, ok := strings.CutPrefix(c.Rule.ID, models.ServiceMappingPatternPrefix)
		if !ok {
			continue
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.mappings.IncrementUsage(ctx, keyword); err != nil {
				s.logger.Warn("Failed to count mapping usage",
					zap.String("keyword", keyword),
					zap.Error(err))
			}
		}()
	}
}
