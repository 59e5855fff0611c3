package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/metrics"
	"github.com/renova-inc/renova-engine/pkg/models"
	"github.com/renova-inc/renova-engine/pkg/repositories"
	"github.com/renova-inc/renova-engine/pkg/resolve"
)

// snapshotEpochKey is bumped in Redis on every custom-pattern write so
// other instances drop their cached snapshot within one TTL window.
const snapshotEpochKey = "renova:patterns:epoch"

// PatternService manages the merged core+custom pattern view and enforces
// the core/user mutability invariant before any write reaches persistence.
type PatternService interface {
	// List returns the merged pattern list, core patterns first, optionally
	// filtered by category. includeCore=false yields user patterns only.
	List(ctx context.Context, includeCore bool, category string) ([]models.Pattern, error)

	// Create validates and stores a user pattern. The pattern's ID is
	// generated when empty and its source is always forced to "user".
	Create(ctx context.Context, p *models.Pattern) error

	// Update validates and rewrites an existing user pattern.
	Update(ctx context.Context, id string, p *models.Pattern) error

	// Delete removes a user pattern.
	Delete(ctx context.Context, id string) error

	// Snapshot returns the merged, compiled pattern set used for
	// resolution. Snapshots are cached; a slightly stale set is acceptable.
	Snapshot(ctx context.Context) *resolve.PatternSet
}

type patternService struct {
	repo     repositories.PatternRepository
	mappings repositories.ServiceMappingRepository
	rdb      *redis.Client // nil when Redis is not configured
	logger   *zap.Logger
	ttl      time.Duration

	mu          sync.RWMutex
	cached      *resolve.PatternSet
	cachedAt    time.Time
	cachedEpoch string
}

// NewPatternService creates a new PatternService. rdb may be nil.
func NewPatternService(
	repo repositories.PatternRepository,
	mappings repositories.ServiceMappingRepository,
	rdb *redis.Client,
	snapshotTTL time.Duration,
	logger *zap.Logger,
) PatternService {
	if snapshotTTL <= 0 {
		snapshotTTL = 30 * time.Second
	}
	return &patternService{
		repo:     repo,
		mappings: mappings,
		rdb:      rdb,
		logger:   logger,
		ttl:      snapshotTTL,
	}
}

var _ PatternService = (*patternService)(nil)

// validatePattern rejects malformed custom patterns at write time so
// resolution never sees them.
func validatePattern(p *models.Pattern) error {
	if strings.TrimSpace(p.Pattern) == "" {
		return fmt.Errorf("%w: pattern text is required", apperrors.ErrValidation)
	}
	if !models.ValidMatchType(p.MatchType) {
		return fmt.Errorf("%w: unknown match type %q", apperrors.ErrValidation, p.MatchType)
	}
	if !models.ValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, p.Category)
	}
	if p.MatchType == models.MatchTypeRegex {
		if _, err := regexp.Compile("(?i)" + p.Pattern); err != nil {
			return fmt.Errorf("%w: invalid regex: %v", apperrors.ErrValidation, err)
		}
	}
	return nil
}

func (s *patternService) List(ctx context.Context, includeCore bool, category string) ([]models.Pattern, error) {
	custom, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom patterns: %w", err)
	}

	var out []models.Pattern
	if includeCore {
		out = append(out, resolve.CorePatterns()...)
	}
	out = append(out, custom...)

	if category != "" {
		filtered := out[:0]
		for _, p := range out {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	return out, nil
}

func (s *patternService) Create(ctx context.Context, p *models.Pattern) error {
	if err := validatePattern(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if models.IsCoreID(p.ID) {
		return apperrors.ErrImmutablePattern
	}
	p.Source = models.PatternSourceUser

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *patternService) Update(ctx context.Context, id string, p *models.Pattern) error {
	if models.IsCoreID(id) {
		return apperrors.ErrImmutablePattern
	}
	if err := validatePattern(p); err != nil {
		return err
	}
	p.ID = id
	p.Source = models.PatternSourceUser

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *patternService) Delete(ctx context.Context, id string) error {
	if models.IsCoreID(id) {
		return apperrors.ErrImmutablePattern
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Snapshot returns the cached merged set while it is fresh and the Redis
// epoch is unchanged, otherwise rebuilds it. On load failure the previous
// snapshot (or a core-only set) is served so resolution stays total.
func (s *patternService) Snapshot(ctx context.Context) *resolve.PatternSet {
	epoch := s.currentEpoch(ctx)

	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < s.ttl && s.cachedEpoch == epoch {
		set := s.cached
		s.mu.RUnlock()
		return set
	}
	s.mu.RUnlock()

	set := s.build(ctx)

	s.mu.Lock()
	s.cached = set
	s.cachedAt = time.Now()
	s.cachedEpoch = epoch
	s.mu.Unlock()

	return set
}

func (s *patternService) build(ctx context.Context) *resolve.PatternSet {
	// Service mappings become synthetic contains patterns so the match
	// engine stays the single matching code path. They go ahead of the
	// generic core vocabulary: a direct keyword hit is the more specific
	// evidence and should be the rule recorded for usage counting.
	var core []models.Pattern
	if s.mappings != nil {
		mappings, err := s.mappings.List(ctx)
		if err != nil {
			s.logger.Warn("Failed to load service mappings for snapshot", zap.Error(err))
		} else {
			for i := range mappings {
				core = append(core, mappings[i].AsPattern())
			}
		}
	}
	core = append(core, resolve.CorePatterns()...)

	var custom []models.Pattern
	if s.repo != nil {
		loaded, err := s.repo.List(ctx)
		if err != nil {
			s.logger.Warn("Failed to load custom patterns, serving core-only snapshot", zap.Error(err))
		} else {
			custom = loaded
		}
	}

	metrics.SnapshotReloadsTotal.Inc()
	return resolve.NewPatternSet(core, custom)
}

// invalidate drops the local snapshot and bumps the shared epoch so other
// instances rebuild too.
func (s *patternService) invalidate(ctx context.Context) {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	if s.rdb != nil {
		if err := s.rdb.Incr(ctx, snapshotEpochKey).Err(); err != nil {
			s.logger.Warn("Failed to bump pattern epoch in redis", zap.Error(err))
		}
	}
}

func (s *patternService) currentEpoch(ctx context.Context) string {
	if s.rdb == nil {
		return ""
	}
	epoch, err := s.rdb.Get(ctx, snapshotEpochKey).Result()
	if err != nil {
		// Missing key or transient failure: treat as epoch zero.
		return ""
	}
	return epoch
}
