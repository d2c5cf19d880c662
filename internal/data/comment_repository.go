package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CommentRepository handles database operations for comments.
type CommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByPage retrieves the comments of a page joined with the author name,
// oldest first.
func (r *CommentRepository) ListByPage(ctx context.Context, pageID string) ([]Comment, error) {
	comments := []Comment{}
	q := `SELECT comments.*, userName FROM comments
		INNER JOIN users ON users.id = comments.createdBy
		WHERE comments.pageId = ? ORDER BY comments.created ASC`
	if err := r.db.SelectContext(ctx, &comments, q, pageID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Add inserts a new comment. Comments enter moderation implicitly; there is
// no published flag to set here.
func (r *CommentRepository) Add(ctx context.Context, c *Comment) error {
	q := `INSERT INTO comments (id, content, pageId, created, createdBy, updated, updatedBy)
		VALUES (:id, :content, :pageId, :created, :createdBy, :updated, :updatedBy)`
	if _, err := r.db.NamedExecContext(ctx, q, c); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}
