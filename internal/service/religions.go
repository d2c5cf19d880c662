package service

import (
	"context"
	"errors"
	"net/http"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/query"
	"faithmedia-api/internal/sanitize"
)

// Religions lists the top-level religions, or fetches one by slug.
func (s *Service) Religions(ctx context.Context, slug string) Result {
	if slug != "" {
		religion, err := s.religions.GetBySlug(ctx, sanitize.Slug(slug))
		if errors.Is(err, data.ErrNotFound) {
			return Result{Status: http.StatusNotFound, Data: "Religion not found."}
		}
		if err != nil {
			return s.storageError(err, "failed to get religion")
		}
		return Result{Status: http.StatusOK, Data: religion}
	}

	religions, err := s.religions.ListTopLevel(ctx)
	if err != nil {
		return s.storageError(err, "failed to list religions")
	}
	return Result{Status: http.StatusOK, Data: religions}
}

// PageByID fetches a row by primary key from the table named by the type
// segment. The type is constrained to the page-table enumeration; anything
// else counts as a query error, matching the endpoint's 500 contract.
func (s *Service) PageByID(ctx context.Context, typeSegment, idSegment string) Result {
	table, ok := query.ParsePageTable(sanitize.Slug(typeSegment))
	if !ok {
		s.log.Warn("page lookup with unknown type: " + typeSegment)
		return Result{Status: http.StatusInternalServerError, Data: "Internal server error."}
	}
	id := sanitize.Slug(idSegment)

	var (
		row interface{}
		err error
	)
	switch table {
	case query.TablePages:
		row, err = s.pages.GetByID(ctx, id)
	case query.TableReligions:
		row, err = s.religions.GetByID(ctx, id)
	}
	if errors.Is(err, data.ErrNotFound) {
		return Result{Status: http.StatusNotFound, Data: "Page not found."}
	}
	if err != nil {
		return s.storageError(err, "failed to get page by id")
	}
	return Result{Status: http.StatusOK, Data: row}
}
