package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"faithmedia-api/internal/query"

	"github.com/jmoiron/sqlx"
)

// PageRepository handles database operations for pages and staged edits.
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository creates a new PageRepository.
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// ListByReligion retrieves the pages of a religion, optionally filtered by a
// title substring and/or a topic id. Unfiltered lists come back by title;
// filtered lists by most recently updated.
func (r *PageRepository) ListByReligion(ctx context.Context, religionSlug, search, topicID string) ([]Page, error) {
	b := query.New("pages.*, religions.name religion_name", "pages").
		Join("INNER JOIN religions ON pages.religion_id = religions.id").
		Where("religions.slug = ?", religionSlug)

	order := "pages.title ASC"
	if search != "" {
		b.Search("pages.title", search)
		order = "pages.updated DESC"
	}
	if topicID != "" {
		b.Where("pages.topic_id = ?", topicID)
		order = "pages.updated DESC"
	}
	b.OrderBy(order)

	q, args := b.Statement()
	pages := []Page{}
	if err := r.db.SelectContext(ctx, &pages, q, args...); err != nil {
		return nil, fmt.Errorf("failed to list pages by religion: %w", err)
	}
	return pages, nil
}

// GetByReligionAndSlug retrieves a single page by its religion and page slug.
func (r *PageRepository) GetByReligionAndSlug(ctx context.Context, religionSlug, pageSlug string) (*Page, error) {
	var page Page
	q := `SELECT pages.*, religions.name religion_name FROM pages
		INNER JOIN religions ON pages.religion_id = religions.id
		WHERE religions.slug = ? AND pages.slug = ? LIMIT 1`
	if err := r.db.GetContext(ctx, &page, q, religionSlug, pageSlug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}
	return &page, nil
}

// GetByID retrieves a page row by primary key.
func (r *PageRepository) GetByID(ctx context.Context, id string) (*Page, error) {
	var page Page
	if err := r.db.GetContext(ctx, &page, query.TablePages.ByID(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page by id: %w", err)
	}
	return &page, nil
}

// StageEdit appends a pending edit to pages_temp. The live page row is never
// touched here; promotion happens in the moderation tooling.
func (r *PageRepository) StageEdit(ctx context.Context, edit *PendingEdit) error {
	q := `INSERT INTO pages_temp (id, page_id, type, content, created, createdBy)
		VALUES (:id, :page_id, :type, :content, :created, :createdBy)`
	if _, err := r.db.NamedExecContext(ctx, q, edit); err != nil {
		return fmt.Errorf("failed to stage page edit: %w", err)
	}
	return nil
}

// PendingEditsByPage retrieves the staged edit history of a page, oldest
// first.
func (r *PageRepository) PendingEditsByPage(ctx context.Context, pageID string) ([]PendingEdit, error) {
	edits := []PendingEdit{}
	q := `SELECT * FROM pages_temp WHERE page_id = ? ORDER BY created ASC`
	if err := r.db.SelectContext(ctx, &edits, q, pageID); err != nil {
		return nil, fmt.Errorf("failed to list pending edits: %w", err)
	}
	return edits, nil
}
