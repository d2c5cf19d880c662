package query

import (
	"net/url"
	"strconv"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination is the parsed page/limit window of a list request.
type Pagination struct {
	Limit int
	Page  int
}

// ParsePagination extracts page and limit from query parameters, falling back
// to page 1 and a limit of 20. Non-numeric or non-positive values fall back
// too; the limit is capped at 100.
func ParsePagination(params url.Values) Pagination {
	p := Pagination{Limit: defaultLimit, Page: 1}
	if v, err := strconv.Atoi(params.Get("limit")); err == nil && v > 0 {
		p.Limit = v
		if p.Limit > maxLimit {
			p.Limit = maxLimit
		}
	}
	if v, err := strconv.Atoi(params.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	return p
}

// Offset returns the row offset of the window.
func (p Pagination) Offset() int {
	return p.Limit * (p.Page - 1)
}

// Meta is the pagination descriptor attached to list responses. Next and
// Prev are omitted outside the valid page range.
type Meta struct {
	Count int `json:"count"`
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Next  int `json:"next,omitempty"`
	Prev  int `json:"prev,omitempty"`
}

// NewMeta computes the meta block for a total row count and window.
func NewMeta(count int, p Pagination) Meta {
	pages := (count + p.Limit - 1) / p.Limit
	m := Meta{Count: count, Limit: p.Limit, Page: p.Page, Pages: pages}
	if p.Page < pages {
		m.Next = p.Page + 1
	}
	if p.Page > 1 {
		m.Prev = p.Page - 1
	}
	return m
}
