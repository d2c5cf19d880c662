package service

import (
	"context"
	"net/http"

	"faithmedia-api/internal/query"
	"faithmedia-api/internal/sanitize"
)

// Topics lists all topics by name.
func (s *Service) Topics(ctx context.Context) Result {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return s.storageError(err, "failed to list topics")
	}
	return Result{Status: http.StatusOK, Data: topics}
}

// TopicsByReligion counts topic usage scoped to a religion, joined through
// either videos or pages.
func (s *Service) TopicsByReligion(ctx context.Context, religionSegment, typeSegment string) Result {
	scopeValue := sanitize.Slug(typeSegment)
	scope, ok := query.ParseTopicScope(scopeValue)
	if !ok {
		return Result{Status: http.StatusBadRequest, Data: "Type is not valid: " + scopeValue}
	}

	counts, err := s.topics.CountByReligion(ctx, scope, sanitize.Slug(religionSegment))
	if err != nil {
		return s.storageError(err, "failed to count topics by religion")
	}
	if len(counts) == 0 {
		return Result{Status: http.StatusNoContent}
	}
	return Result{Status: http.StatusOK, Data: counts}
}

// Authors lists all speakers.
func (s *Service) Authors(ctx context.Context) Result {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return s.storageError(err, "failed to list authors")
	}
	return Result{Status: http.StatusOK, Data: authors}
}
