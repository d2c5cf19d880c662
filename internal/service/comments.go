package service

import (
	"context"
	"net/http"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/sanitize"
)

// Comments lists the comments of a page joined with each author's name,
// oldest first.
func (s *Service) Comments(ctx context.Context, pageID string) Result {
	comments, err := s.comments.ListByPage(ctx, sanitize.Slug(pageID))
	if err != nil {
		return s.storageError(err, "failed to list comments")
	}
	if len(comments) == 0 {
		return Result{Status: http.StatusNoContent}
	}
	return Result{Status: http.StatusOK, Data: comments}
}

// AddComment validates a comment submission, upserts its author and inserts
// the comment. Validation runs before any write, so a rejected submission
// leaves no partial side effects.
func (s *Service) AddComment(ctx context.Context, pageID string, body Submission) Result {
	if body.Content == "" || body.UserID == "" || body.UserName == "" {
		return Result{Status: http.StatusBadRequest, Data: "Missing information. Mandatory information are content, userId and userName."}
	}

	userID := sanitize.Slug(body.UserID)
	if err := s.updateUser(ctx, userID, body.UserName); err != nil {
		s.log.Error(err, "failed to update user for comment")
		return Result{Status: http.StatusBadRequest, Data: "Error occurred while adding a new comment."}
	}

	now := s.timestamp()
	comment := &data.Comment{
		ID:        s.newID(),
		Content:   sanitize.Content(body.Content),
		PageID:    sanitize.Slug(pageID),
		Created:   now,
		CreatedBy: userID,
		Updated:   now,
		UpdatedBy: userID,
	}
	if err := s.comments.Add(ctx, comment); err != nil {
		s.log.Error(err, "failed to add comment")
		return Result{Status: http.StatusBadRequest, Data: "Error occurred while adding a new comment."}
	}

	return Result{Status: http.StatusCreated, Data: map[string]string{
		"message": "New reply created. The message is checked before publication.",
	}}
}
