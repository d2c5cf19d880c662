package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/sanitize"
)

// PagesByReligion lists the pages of a religion, or fetches one by its page
// slug when the segment is present. Lists support title substring search and
// a topic filter.
func (s *Service) PagesByReligion(ctx context.Context, religionSegment, pageSegment string, params url.Values) Result {
	religion := sanitize.Slug(religionSegment)

	if pageSegment != "" {
		page, err := s.pages.GetByReligionAndSlug(ctx, religion, sanitize.Slug(pageSegment))
		if errors.Is(err, data.ErrNotFound) {
			return Result{Status: http.StatusNotFound, Data: "Page not found."}
		}
		if err != nil {
			return s.storageError(err, "failed to get page")
		}
		return Result{Status: http.StatusOK, Data: page}
	}

	search := sanitize.Content(params.Get("search"))
	topic := sanitize.Slug(params.Get("topic"))

	pages, err := s.pages.ListByReligion(ctx, religion, search, topic)
	if err != nil {
		return s.storageError(err, "failed to list pages")
	}
	if len(pages) == 0 {
		return Result{Status: http.StatusNoContent}
	}
	return Result{Status: http.StatusOK, Data: pages}
}

// StagePageEdit validates an edit submission, upserts its author and appends
// a pending edit row. The live page is never mutated here.
func (s *Service) StagePageEdit(ctx context.Context, typeSegment, pageID string, body Submission) Result {
	if body.Content == "" || body.UserID == "" || body.UserName == "" {
		return Result{Status: http.StatusBadRequest, Data: "Missing information. Mandatory information are content, userId, and userName."}
	}
	if pageID == "" {
		return Result{Status: http.StatusBadRequest, Data: "Missing information. Page not found."}
	}

	userID := sanitize.Slug(body.UserID)
	if err := s.updateUser(ctx, userID, body.UserName); err != nil {
		s.log.Error(err, "failed to update user for page edit")
		return Result{Status: http.StatusBadRequest, Data: "Problem updating user information."}
	}

	edit := &data.PendingEdit{
		ID:        s.newID(),
		PageID:    sanitize.Slug(pageID),
		Type:      sanitize.Slug(typeSegment),
		Content:   sanitize.Content(body.Content),
		Created:   s.timestamp(),
		CreatedBy: userID,
	}
	if err := s.pages.StageEdit(ctx, edit); err != nil {
		return s.storageError(err, "failed to stage page edit")
	}

	return Result{Status: http.StatusCreated, Data: map[string]string{
		"message": "A new version of the article is awaiting approval. Thanks for helping.",
	}}
}
