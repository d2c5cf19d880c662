package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"faithmedia-api/internal/query"

	"github.com/jmoiron/sqlx"
)

// ReligionRepository handles database operations for religions.
type ReligionRepository struct {
	db *sqlx.DB
}

// NewReligionRepository creates a new ReligionRepository.
func NewReligionRepository(db *sqlx.DB) *ReligionRepository {
	return &ReligionRepository{db: db}
}

// ListTopLevel retrieves all top-level religions, ordered by id.
func (r *ReligionRepository) ListTopLevel(ctx context.Context) ([]Religion, error) {
	religions := []Religion{}
	q := `SELECT * FROM religions WHERE parent = '' ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &religions, q); err != nil {
		return nil, fmt.Errorf("failed to list religions: %w", err)
	}
	return religions, nil
}

// GetBySlug retrieves a single top-level religion by its slug.
func (r *ReligionRepository) GetBySlug(ctx context.Context, slug string) (*Religion, error) {
	var religion Religion
	q := `SELECT * FROM religions WHERE parent = '' AND slug = ? ORDER BY id ASC LIMIT 1`
	if err := r.db.GetContext(ctx, &religion, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get religion by slug: %w", err)
	}
	return &religion, nil
}

// GetByID retrieves a religion row by primary key.
func (r *ReligionRepository) GetByID(ctx context.Context, id string) (*Religion, error) {
	var religion Religion
	if err := r.db.GetContext(ctx, &religion, query.TableReligions.ByID(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get religion by id: %w", err)
	}
	return &religion, nil
}
