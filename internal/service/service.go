// Package service implements the resource handlers of the content API. Every
// operation returns a Result rather than an error: storage failures are
// logged here and translated to a 500 with a generic message, so the HTTP
// layer only ever branches on the status.
package service

import (
	"context"
	"net/http"
	"time"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/logger"
	"faithmedia-api/internal/query"

	"github.com/google/uuid"
)

// Result is the uniform outcome of a resource handler.
type Result struct {
	Status int
	Data   interface{}
}

// Submission is the body of a comment or staged page edit.
type Submission struct {
	Content  string `json:"content"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// ReligionStore defines the religion lookups the service needs.
type ReligionStore interface {
	ListTopLevel(ctx context.Context) ([]data.Religion, error)
	GetBySlug(ctx context.Context, slug string) (*data.Religion, error)
	GetByID(ctx context.Context, id string) (*data.Religion, error)
}

// PageStore defines the page lookups and the staged-edit write.
type PageStore interface {
	ListByReligion(ctx context.Context, religionSlug, search, topicID string) ([]data.Page, error)
	GetByReligionAndSlug(ctx context.Context, religionSlug, pageSlug string) (*data.Page, error)
	GetByID(ctx context.Context, id string) (*data.Page, error)
	StageEdit(ctx context.Context, edit *data.PendingEdit) error
}

// TopicStore defines the topic lookups.
type TopicStore interface {
	List(ctx context.Context) ([]data.Topic, error)
	CountByReligion(ctx context.Context, scope query.TopicScope, religionID string) ([]data.TopicCount, error)
}

// AuthorStore defines the speaker lookups.
type AuthorStore interface {
	List(ctx context.Context) ([]data.Author, error)
}

// VideoStore defines the video lookups.
type VideoStore interface {
	CountByFilter(ctx context.Context, f data.VideoFilter) (int, error)
	ListByFilter(ctx context.Context, f data.VideoFilter, p query.Pagination) ([]data.VideoRecord, error)
	GetByVideoID(ctx context.Context, videoSlug string) (*data.VideoRecord, error)
	AuthorsFor(ctx context.Context, videoID int64) ([]data.Author, error)
	TopicsFor(ctx context.Context, videoID int64) ([]data.Topic, error)
	ListJoined(ctx context.Context, filter query.VideoJoinFilter, id string) ([]data.VideoJoinRow, error)
}

// CommentStore defines the comment operations.
type CommentStore interface {
	ListByPage(ctx context.Context, pageID string) ([]data.Comment, error)
	Add(ctx context.Context, c *data.Comment) error
}

// UserStore defines the user operations.
type UserStore interface {
	Get(ctx context.Context, id string) (*data.User, error)
	Upsert(ctx context.Context, u *data.User) error
}

// Pinger reports whether the storage collaborator is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service combines the repositories into the API's resource handlers.
type Service struct {
	religions ReligionStore
	pages     PageStore
	topics    TopicStore
	authors   AuthorStore
	videos    VideoStore
	comments  CommentStore
	users     UserStore
	pinger    Pinger
	log       logger.Logger

	// injectable for tests
	now   func() time.Time
	newID func() string
}

// New creates a Service over the given stores.
func New(religions ReligionStore, pages PageStore, topics TopicStore, authors AuthorStore,
	videos VideoStore, comments CommentStore, users UserStore, pinger Pinger, log logger.Logger) *Service {
	return &Service{
		religions: religions,
		pages:     pages,
		topics:    topics,
		authors:   authors,
		videos:    videos,
		comments:  comments,
		users:     users,
		pinger:    pinger,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Health pings the storage collaborator.
func (s *Service) Health(ctx context.Context) Result {
	if err := s.pinger.PingContext(ctx); err != nil {
		return s.storageError(err, "health check failed")
	}
	return Result{Status: http.StatusOK, Data: map[string]string{"status": "ok"}}
}

// storageError logs the underlying failure and returns the generic 500
// result. The driver error text never reaches the caller.
func (s *Service) storageError(err error, msg string) Result {
	s.log.Error(err, msg)
	return Result{Status: http.StatusInternalServerError, Data: "Internal server error."}
}

func (s *Service) timestamp() string {
	return s.now().Format(data.TimeLayout)
}
