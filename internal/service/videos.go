package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"faithmedia-api/internal/data"
	"faithmedia-api/internal/query"
	"faithmedia-api/internal/sanitize"
)

// VideoList is the paginated list envelope for videos.
type VideoList struct {
	Data []data.Video `json:"data"`
	Meta query.Meta   `json:"meta"`
}

// VideosByReligion lists the videos of a religion (including its branches)
// with optional search, speaker and topic filters and pagination. A valid
// filter matching nothing is a 200 with an empty array and a zero count,
// not a 204.
func (s *Service) VideosByReligion(ctx context.Context, religionSegment string, params url.Values) Result {
	filter := data.VideoFilter{
		Religion: sanitize.Slug(religionSegment),
		Search:   sanitize.Content(params.Get("search")),
	}
	if v, err := strconv.Atoi(params.Get("speaker")); err == nil && v > 0 {
		filter.Speaker = v
	}
	if v, err := strconv.Atoi(params.Get("topic")); err == nil && v > 0 {
		filter.Topic = v
	}
	window := query.ParsePagination(params)

	count, err := s.videos.CountByFilter(ctx, filter)
	if err != nil {
		return s.storageError(err, "failed to count videos")
	}
	if count == 0 {
		return Result{Status: http.StatusOK, Data: VideoList{Data: []data.Video{}, Meta: query.NewMeta(0, window)}}
	}

	records, err := s.videos.ListByFilter(ctx, filter, window)
	if err != nil {
		return s.storageError(err, "failed to list videos")
	}

	videos := make([]data.Video, 0, len(records))
	for _, rec := range records {
		videos = append(videos, deriveVideo(rec))
	}
	return Result{Status: http.StatusOK, Data: VideoList{Data: videos, Meta: query.NewMeta(count, window)}}
}

// VideoBySlug fetches a single video by its external identifier and attaches
// its speaker and topic extras via the two auxiliary lookups.
func (s *Service) VideoBySlug(ctx context.Context, videoSegment string) Result {
	record, err := s.videos.GetByVideoID(ctx, sanitize.Slug(videoSegment))
	if errors.Is(err, data.ErrNotFound) {
		return Result{Status: http.StatusNotFound, Data: "Video not found."}
	}
	if err != nil {
		return s.storageError(err, "failed to get video")
	}

	speakers, err := s.videos.AuthorsFor(ctx, record.ID)
	if err != nil {
		return s.storageError(err, "failed to get video speakers")
	}
	topics, err := s.videos.TopicsFor(ctx, record.ID)
	if err != nil {
		return s.storageError(err, "failed to get video topics")
	}

	video := deriveVideo(*record)
	video.Speakers = speakers
	video.Topics = topics
	return Result{Status: http.StatusOK, Data: video}
}

// VideosByAuthor lists the videos of one speaker, reshaped with nested
// speaker and topic arrays.
func (s *Service) VideosByAuthor(ctx context.Context, idSegment string) Result {
	return s.joinedVideos(ctx, query.VideosByAuthor, idSegment, "failed to list videos by author")
}

// VideosByTopic lists the videos of one topic, reshaped with nested speaker
// and topic arrays.
func (s *Service) VideosByTopic(ctx context.Context, idSegment string) Result {
	return s.joinedVideos(ctx, query.VideosByTopic, idSegment, "failed to list videos by topic")
}

func (s *Service) joinedVideos(ctx context.Context, filter query.VideoJoinFilter, idSegment, errMsg string) Result {
	rows, err := s.videos.ListJoined(ctx, filter, sanitize.Slug(idSegment))
	if err != nil {
		return s.storageError(err, errMsg)
	}
	return Result{Status: http.StatusOK, Data: foldVideoRows(rows)}
}
