package service

import (
	"fmt"

	"faithmedia-api/internal/data"
)

const (
	videoWatchURL = "https://www.youtube.com/watch?v=%s"
	videoImageURL = "https://img.youtube.com/vi_webp/%s/mqdefault.webp"
)

// deriveVideo maps a raw video row into the response shape, computing the
// derived URL fields. This is the single construction point for video_url
// and video_image.
func deriveVideo(rec data.VideoRecord) data.Video {
	url := fmt.Sprintf(videoWatchURL, rec.VideoID)
	if rec.VideoStart != nil && *rec.VideoStart != "" {
		url += "&start=" + *rec.VideoStart
	}
	return data.Video{
		Created:     rec.Created,
		ID:          rec.ID,
		ReligionID:  rec.ReligionID,
		VideoID:     rec.VideoID,
		VideoImage:  fmt.Sprintf(videoImageURL, rec.VideoID),
		VideoLength: rec.VideoLength,
		VideoTitle:  rec.VideoTitle,
		VideoURL:    url,
	}
}

// foldVideoRows collapses the flat video join (one row per video per author
// per topic) into one entry per distinct video, each with deduplicated
// speaker and topic arrays in order of first appearance. The join returns
// the rows of a video contiguously, so the per-video seen sets reset
// whenever a new video id appears.
func foldVideoRows(rows []data.VideoJoinRow) []data.Video {
	videos := make([]data.Video, 0)
	index := make(map[int64]int)
	var seenAuthors, seenTopics map[int64]bool

	for _, row := range rows {
		key, ok := index[row.ID]
		if !ok {
			v := deriveVideo(row.VideoRecord)
			v.ReligionName = row.ReligionName
			if row.ReligionBranchID != nil && *row.ReligionBranchID != row.ReligionID && row.ReligionSub != nil {
				v.ReligionSub = *row.ReligionSub
			}
			v.Speakers = []data.Author{}
			v.Topics = []data.Topic{}
			videos = append(videos, v)
			key = len(videos) - 1
			index[row.ID] = key
			seenAuthors = make(map[int64]bool)
			seenTopics = make(map[int64]bool)
		}

		if row.AuthorID != nil && !seenAuthors[*row.AuthorID] {
			seenAuthors[*row.AuthorID] = true
			videos[key].Speakers = append(videos[key].Speakers, data.Author{
				ID:        *row.AuthorID,
				Firstname: stringValue(row.Firstname),
				Lastname:  stringValue(row.Lastname),
			})
		}

		if row.TopicID != nil && !seenTopics[*row.TopicID] {
			seenTopics[*row.TopicID] = true
			videos[key].Topics = append(videos[key].Topics, data.Topic{
				ID:   *row.TopicID,
				Name: stringValue(row.TopicName),
			})
		}
	}

	return videos
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
