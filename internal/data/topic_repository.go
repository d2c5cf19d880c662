package data

import (
	"context"
	"fmt"

	"faithmedia-api/internal/query"

	"github.com/jmoiron/sqlx"
)

// TopicRepository handles database operations for topics.
type TopicRepository struct {
	db *sqlx.DB
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// List retrieves all topics ordered by name.
func (r *TopicRepository) List(ctx context.Context) ([]Topic, error) {
	topics := []Topic{}
	if err := r.db.SelectContext(ctx, &topics, `SELECT * FROM topics ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// CountByReligion aggregates topic usage within one religion, joined through
// either videos or pages depending on the scope.
func (r *TopicRepository) CountByReligion(ctx context.Context, scope query.TopicScope, religionID string) ([]TopicCount, error) {
	counts := []TopicCount{}
	if err := r.db.SelectContext(ctx, &counts, scope.CountStatement(), religionID); err != nil {
		return nil, fmt.Errorf("failed to count topics by religion: %w", err)
	}
	return counts, nil
}
