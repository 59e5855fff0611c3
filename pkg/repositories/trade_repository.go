package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/database"
	"github.com/renova-inc/renova-engine/pkg/models"
)

// TradeRepository provides data access for canonical profession records.
type TradeRepository interface {
	// Upsert inserts or updates a trade by its natural key (name), making
	// re-seeding idempotent. The trade's ID is populated on return.
	Upsert(ctx context.Context, t *models.Trade) error
	GetByName(ctx context.Context, name string) (*models.Trade, error)
	List(ctx context.Context, enabledOnly bool) ([]models.Trade, error)
}

type tradeRepository struct {
	db *database.DB
}

// NewTradeRepository creates a new TradeRepository.
func NewTradeRepository(db *database.DB) TradeRepository {
	return &tradeRepository{db: db}
}

var _ TradeRepository = (*tradeRepository)(nil)

func (r *tradeRepository) Upsert(ctx context.Context, t *models.Trade) error {
	now := time.Now()

	query := `
		INSERT INTO trades (name, category, description, aliases, enabled, featured, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (name) DO UPDATE
		SET category = EXCLUDED.category,
		    description = EXCLUDED.description,
		    aliases = EXCLUDED.aliases,
		    enabled = EXCLUDED.enabled,
		    featured = EXCLUDED.featured,
		    sort_order = EXCLUDED.sort_order,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		t.Name,
		t.Category,
		t.Description,
		t.Aliases,
		t.Enabled,
		t.Featured,
		t.SortOrder,
		now,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert trade %q: %w", t.Name, err)
	}

	return nil
}

func (r *tradeRepository) GetByName(ctx context.Context, name string) (*models.Trade, error) {
	query := `
		SELECT id, name, category, description, aliases, enabled, featured, sort_order, created_at, updated_at
		FROM trades
		WHERE name = $1`

	var t models.Trade
	err := r.db.QueryRow(ctx, query, name).Scan(
		&t.ID, &t.Name, &t.Category, &t.Description, &t.Aliases, &t.Enabled, &t.Featured, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}

	return &t, nil
}

func (r *tradeRepository) List(ctx context.Context, enabledOnly bool) ([]models.Trade, error) {
	query := `
		SELECT id, name, category, description, aliases, enabled, featured, sort_order, created_at, updated_at
		FROM trades`
	if enabledOnly {
		query += ` WHERE enabled`
	}
	query += ` ORDER BY featured DESC, sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.Aliases, &t.Enabled, &t.Featured, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trades: %w", err)
	}

	return trades, nil
}
