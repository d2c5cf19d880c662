package data

import "errors"

// ErrNotFound is returned when a lookup by id or slug yields no row.
var ErrNotFound = errors.New("not found")

// Timestamps are stored as 'YYYY-MM-DD HH:mm:ss' text, matching the
// moderation tooling that consumes the staged tables.
const TimeLayout = "2006-01-02 15:04:05"

// Religion represents a tradition. Parent is empty for top-level religions
// and holds the parent id for branch religions.
type Religion struct {
	ID          int64  `db:"id" json:"id"`
	Slug        string `db:"slug" json:"slug"`
	Name        string `db:"name" json:"name"`
	Summary     string `db:"summary" json:"summary"`
	Description string `db:"description" json:"description"`
	Content     string `db:"content" json:"content"`
	Parent      string `db:"parent" json:"parent"`
}

// Page is a live article row. It is only ever mutated by the out-of-band
// moderation process; edit submissions land in pages_temp instead.
type Page struct {
	ID           int64  `db:"id" json:"id"`
	ReligionID   int64  `db:"religion_id" json:"religion_id"`
	TopicID      *int64 `db:"topic_id" json:"topic_id,omitempty"`
	Slug         string `db:"slug" json:"slug"`
	Title        string `db:"title" json:"title"`
	Content      string `db:"content" json:"content"`
	Description  string `db:"description" json:"description"`
	Summary      string `db:"summary" json:"summary"`
	Created      string `db:"created" json:"created"`
	CreatedBy    string `db:"createdBy" json:"createdBy"`
	Updated      string `db:"updated" json:"updated"`
	UpdatedBy    string `db:"updatedBy" json:"updatedBy"`
	ReligionName string `db:"religion_name" json:"religion_name,omitempty"`
}

// PendingEdit is an append-only staged content change awaiting moderation.
type PendingEdit struct {
	ID        string `db:"id"`
	PageID    string `db:"page_id"`
	Type      string `db:"type"`
	Content   string `db:"content"`
	Created   string `db:"created"`
	CreatedBy string `db:"createdBy"`
}

// Topic categorizes pages and videos.
type Topic struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TopicCount is a topic with its usage count within one religion.
type TopicCount struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Total int64  `db:"total" json:"total"`
}

// Author is a speaker appearing in videos.
type Author struct {
	ID        int64  `db:"id" json:"id"`
	Firstname string `db:"firstname" json:"firstname"`
	Lastname  string `db:"lastname" json:"lastname"`
}

// VideoRecord is a raw videos table row.
type VideoRecord struct {
	ID               int64   `db:"id"`
	VideoID          string  `db:"video_id"`
	ReligionID       int64   `db:"religion_id"`
	ReligionBranchID *int64  `db:"religion_branch_id"`
	VideoTitle       string  `db:"video_title"`
	VideoLength      string  `db:"video_length"`
	VideoStart       *string `db:"video_start"`
	Created          string  `db:"created"`
}

// VideoJoinRow is one row of the full video join: one row per video per
// associated author per associated topic. The association columns are
// nullable because of the left joins.
type VideoJoinRow struct {
	VideoRecord
	ReligionName string  `db:"religion_name"`
	ReligionSub  *string `db:"religion_sub"`
	AuthorID     *int64  `db:"author_id"`
	Firstname    *string `db:"firstname"`
	Lastname     *string `db:"lastname"`
	TopicID      *int64  `db:"topic_id"`
	TopicName    *string `db:"topic_name"`
}

// Video is the nested response shape for a video, with derived URL fields
// and deduplicated speaker/topic arrays.
type Video struct {
	Created      string   `json:"created"`
	ID           int64    `json:"id"`
	ReligionID   int64    `json:"religion_id"`
	ReligionName string   `json:"religion_name,omitempty"`
	ReligionSub  string   `json:"religion_sub,omitempty"`
	Speakers     []Author `json:"speakers,omitempty"`
	Topics       []Topic  `json:"topics,omitempty"`
	VideoID      string   `json:"video_id"`
	VideoImage   string   `json:"video_image"`
	VideoLength  string   `json:"video_length"`
	VideoTitle   string   `json:"video_title"`
	VideoURL     string   `json:"video_url"`
}

// Comment is a visitor-submitted reply on a page. Every submission enters
// moderation implicitly; publication state is handled out-of-band.
type Comment struct {
	ID        string `db:"id" json:"id"`
	Content   string `db:"content" json:"content"`
	PageID    string `db:"pageId" json:"pageId"`
	Created   string `db:"created" json:"created"`
	CreatedBy string `db:"createdBy" json:"createdBy"`
	Updated   string `db:"updated" json:"updated"`
	UpdatedBy string `db:"updatedBy" json:"updatedBy"`
	UserName  string `db:"userName" json:"userName,omitempty"`
}

// User is an external identity upserted as a side effect of a comment or
// page-edit submission. The id is a slugified external identifier.
type User struct {
	ID       string `db:"id" json:"id"`
	UserName string `db:"userName" json:"userName"`
	Created  string `db:"created" json:"created"`
	Updated  string `db:"updated" json:"updated"`
}
