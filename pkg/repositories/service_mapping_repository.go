package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renova-inc/renova-engine/pkg/database"
	"github.com/renova-inc/renova-engine/pkg/models"
)

// ServiceMappingRepository provides data access for keyword-to-trade
// mapping records.
type ServiceMappingRepository interface {
	// Upsert inserts or updates a mapping by its natural key (keyword).
	Upsert(ctx context.Context, keyword string, tradeID uuid.UUID) error
	List(ctx context.Context) ([]models.ServiceMapping, error)
	// IncrementUsage bumps the usage counter for a keyword. Missing
	// keywords are ignored; usage counting is best-effort.
	IncrementUsage(ctx context.Context, keyword string) error
}

type serviceMappingRepository struct {
	db *database.DB
}

// NewServiceMappingRepository creates a new ServiceMappingRepository.
func NewServiceMappingRepository(db *database.DB) ServiceMappingRepository {
	return &serviceMappingRepository{db: db}
}

var _ ServiceMappingRepository = (*serviceMappingRepository)(nil)

func (r *serviceMappingRepository) Upsert(ctx context.Context, keyword string, tradeID uuid.UUID) error {
	now := time.Now()

	query := `
		INSERT INTO service_mappings (keyword, trade_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (keyword) DO UPDATE
		SET trade_id = EXCLUDED.trade_id,
		    updated_at = EXCLUDED.updated_at`

	if _, err := r.db.Exec(ctx, query, keyword, tradeID, now); err != nil {
		return fmt.Errorf("failed to upsert service mapping %q: %w", keyword, err)
	}
	return nil
}

func (r *serviceMappingRepository) List(ctx context.Context) ([]models.ServiceMapping, error) {
	query := `
		SELECT m.id, m.keyword, m.trade_id, t.name, m.usage_count, m.created_at, m.updated_at
		FROM service_mappings m
		JOIN trades t ON t.id = m.trade_id
		WHERE t.enabled
		ORDER BY m.keyword`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service mappings: %w", err)
	}
	defer rows.Close()

	var mappings []models.ServiceMapping
	for rows.Next() {
		var m models.ServiceMapping
		if err := rows.Scan(&m.ID, &m.Keyword, &m.TradeID, &m.TradeName, &m.UsageCount, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service mappings: %w", err)
	}

	return mappings, nil
}

func (r *serviceMappingRepository) IncrementUsage(ctx context.Context, keyword string) error {
	query := `
		UPDATE service_mappings
		SET usage_count = usage_count + 1, updated_at = now()
		WHERE keyword = $1`

	if _, err := r.db.Exec(ctx, query, keyword); err != nil {
		return fmt.Errorf("failed to increment usage for %q: %w", keyword, err)
	}
	return nil
}
