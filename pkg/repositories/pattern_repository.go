package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/renova-inc/renova-engine/pkg/apperrors"
	"github.com/renova-inc/renova-engine/pkg/database"
	"github.com/renova-inc/renova-engine/pkg/models"
)

// PatternRepository provides data access for user-authored patterns. Core
// patterns never pass through here; they ship with the binary.
type PatternRepository interface {
	Create(ctx context.Context, p *models.Pattern) error
	Update(ctx context.Context, p *models.Pattern) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Pattern, error)
	List(ctx context.Context) ([]models.Pattern, error)
}

type patternRepository struct {
	db *database.DB
}

// NewPatternRepository creates a new PatternRepository.
func NewPatternRepository(db *database.DB) PatternRepository {
	return &patternRepository{db: db}
}

var _ PatternRepository = (*patternRepository)(nil)

func (r *patternRepository) Create(ctx context.Context, p *models.Pattern) error {
	now := time.Now()

	query := `
		INSERT INTO patterns (id, name, pattern, match_type, category, maps_to, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Pattern,
		p.MatchType,
		p.Category,
		p.MapsTo,
		p.Enabled,
		now,
		now,
	)
	if err != nil {
		// Unique constraint violation (PostgreSQL error code 23505): a
		// concurrent writer won the race for this id.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create pattern: %w", err)
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *patternRepository) Update(ctx context.Context, p *models.Pattern) error {
	query := `
		UPDATE patterns
		SET name = $2, pattern = $3, match_type = $4, category = $5, maps_to = $6, enabled = $7, updated_at = $8
		WHERE id = $1
		RETURNING created_at`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Pattern,
		p.MatchType,
		p.Category,
		p.MapsTo,
		p.Enabled,
		now,
	).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update pattern: %w", err)
	}

	p.UpdatedAt = now
	return nil
}

func (r *patternRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM patterns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *patternRepository) GetByID(ctx context.Context, id string) (*models.Pattern, error) {
	query := `
		SELECT id, name, pattern, match_type, category, maps_to, enabled, created_at, updated_at
		FROM patterns
		WHERE id = $1`

	var p models.Pattern
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Pattern, &p.MatchType, &p.Category, &p.MapsTo, &p.Enabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	p.Source = models.PatternSourceUser
	return &p, nil
}

func (r *patternRepository) List(ctx context.Context) ([]models.Pattern, error) {
	query := `
		SELECT id, name, pattern, match_type, category, maps_to, enabled, created_at, updated_at
		FROM patterns
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	defer rows.Close()

	var patterns []models.Pattern
	for rows.Next() {
		var p models.Pattern
		if err := rows.Scan(&p.ID, &p.Name, &p.Pattern, &p.MatchType, &p.Category, &p.MapsTo, &p.Enabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}
		p.Source = models.PatternSourceUser
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patterns: %w", err)
	}

	return patterns, nil
}
