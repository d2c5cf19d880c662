package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"faithmedia-api/internal/query"

	"github.com/jmoiron/sqlx"
)

// VideoFilter holds the already-sanitized filter values of a video list
// request. Religion is the slugified path segment, bound against both the
// religion and branch columns. Speaker and Topic are junction filters; zero
// means absent.
type VideoFilter struct {
	Religion string
	Search   string
	Speaker  int
	Topic    int
}

// VideoRepository handles database operations for videos and their
// author/topic associations.
type VideoRepository struct {
	db *sqlx.DB
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(db *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// filterBuilder translates a VideoFilter into a statement builder. The
// junction joins are included only when their filter is present.
func filterBuilder(f VideoFilter) *query.Builder {
	b := query.New("videos.*", "videos").
		Where("(videos.religion_id = ? OR videos.religion_branch_id = ?)", f.Religion, f.Religion)

	if f.Search != "" {
		b.Search("video_title", f.Search)
	}
	if f.Speaker > 0 {
		b.Join("INNER JOIN video_authors ON videos.id = video_authors.video_id").
			Where("video_authors.author_id = ?", f.Speaker)
	}
	if f.Topic > 0 {
		b.Join("INNER JOIN video_topics ON videos.id = video_topics.video_id").
			Where("video_topics.topic_id = ?", f.Topic)
	}
	return b
}

// CountByFilter returns the total number of videos matching the filter.
func (r *VideoRepository) CountByFilter(ctx context.Context, f VideoFilter) (int, error) {
	q, args := filterBuilder(f).Count("videos.id")
	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return total, nil
}

// ListByFilter returns one page of videos matching the filter, newest first.
func (r *VideoRepository) ListByFilter(ctx context.Context, f VideoFilter, p query.Pagination) ([]VideoRecord, error) {
	q, args := filterBuilder(f).
		OrderBy("videos.created DESC").
		Paginate(p).
		Statement()

	videos := []VideoRecord{}
	if err := r.db.SelectContext(ctx, &videos, q, args...); err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// GetByVideoID retrieves a video by its external platform identifier.
func (r *VideoRepository) GetByVideoID(ctx context.Context, videoSlug string) (*VideoRecord, error) {
	var video VideoRecord
	q := `SELECT videos.* FROM videos WHERE videos.video_id = ? LIMIT 1`
	if err := r.db.GetContext(ctx, &video, q, videoSlug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &video, nil
}

// AuthorsFor retrieves the speakers attached to a single video.
func (r *VideoRepository) AuthorsFor(ctx context.Context, videoID int64) ([]Author, error) {
	authors := []Author{}
	if err := r.db.SelectContext(ctx, &authors, query.ExtraAuthors.Statement(), videoID); err != nil {
		return nil, fmt.Errorf("failed to get video authors: %w", err)
	}
	return authors, nil
}

// TopicsFor retrieves the topics attached to a single video.
func (r *VideoRepository) TopicsFor(ctx context.Context, videoID int64) ([]Topic, error) {
	topics := []Topic{}
	if err := r.db.SelectContext(ctx, &topics, query.ExtraTopics.Statement(), videoID); err != nil {
		return nil, fmt.Errorf("failed to get video topics: %w", err)
	}
	return topics, nil
}

// ListJoined runs the full video join filtered by the given column and
// returns the flat rows for reshaping.
func (r *VideoRepository) ListJoined(ctx context.Context, filter query.VideoJoinFilter, id string) ([]VideoJoinRow, error) {
	rows := []VideoJoinRow{}
	if err := r.db.SelectContext(ctx, &rows, filter.Statement(), id); err != nil {
		return nil, fmt.Errorf("failed to list joined videos: %w", err)
	}
	return rows, nil
}
