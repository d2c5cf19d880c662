package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AuthorRepository handles database operations for speakers.
type AuthorRepository struct {
	db *sqlx.DB
}

// NewAuthorRepository creates a new AuthorRepository.
func NewAuthorRepository(db *sqlx.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// List retrieves all speakers ordered by last then first name.
func (r *AuthorRepository) List(ctx context.Context) ([]Author, error) {
	authors := []Author{}
	q := `SELECT * FROM authors ORDER BY lastname, firstname ASC`
	if err := r.db.SelectContext(ctx, &authors, q); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}
