//go:build unit

package query

import (
	"net/url"
	"reflect"
	"strconv"
	"testing"
)

func TestBuilderStatement(t *testing.T) {
	b := New("videos.*", "videos").
		Where("(videos.religion_id = ? OR videos.religion_branch_id = ?)", "1", "1").
		Join("INNER JOIN video_topics ON videos.id = video_topics.video_id").
		Where("video_topics.topic_id = ?", 5).
		Search("video_title", "creation").
		OrderBy("videos.created DESC").
		Paginate(Pagination{Limit: 10, Page: 2})

	sql, args := b.Statement()
	wantSQL := "SELECT videos.* FROM videos" +
		" INNER JOIN video_topics ON videos.id = video_topics.video_id" +
		" WHERE (videos.religion_id = ? OR videos.religion_branch_id = ?)" +
		" AND video_topics.topic_id = ?" +
		" AND video_title LIKE ?" +
		" ORDER BY videos.created DESC LIMIT ? OFFSET ?"
	if sql != wantSQL {
		t.Errorf("unexpected sql:\n got %s\nwant %s", sql, wantSQL)
	}
	wantArgs := []interface{}{"1", "1", 5, "%creation%", 10, 10}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("unexpected args: got %v, want %v", args, wantArgs)
	}
}

func TestBuilderCount(t *testing.T) {
	b := New("videos.*", "videos").
		Where("videos.religion_id = ?", "3").
		OrderBy("videos.created DESC").
		Paginate(Pagination{Limit: 20, Page: 1})

	sql, args := b.Count("videos.id")
	want := "SELECT COUNT(videos.id) total FROM videos WHERE videos.religion_id = ?"
	if sql != want {
		t.Errorf("unexpected count sql: got %s, want %s", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"3"}) {
		t.Errorf("unexpected count args: %v", args)
	}
}

func TestBuilderNoConditions(t *testing.T) {
	sql, args := New("*", "topics").OrderBy("name ASC").Statement()
	if sql != "SELECT * FROM topics ORDER BY name ASC" {
		t.Errorf("unexpected sql: %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestParsePageTable(t *testing.T) {
	if _, ok := ParsePageTable("comments"); ok {
		t.Error("expected 'comments' to be rejected")
	}
	table, ok := ParsePageTable("religions")
	if !ok || table != TableReligions {
		t.Errorf("expected religions table, got %v (%v)", table, ok)
	}
	if got := TablePages.ByID(); got != "SELECT * FROM pages WHERE id = ? LIMIT 1" {
		t.Errorf("unexpected by-id sql: %s", got)
	}
}

func TestExtraStatement(t *testing.T) {
	want := "SELECT t1.* FROM authors t1 INNER JOIN video_authors t2 ON t2.author_id = t1.id WHERE t2.video_id = ?"
	if got := ExtraAuthors.Statement(); got != want {
		t.Errorf("unexpected extras sql:\n got %s\nwant %s", got, want)
	}
	want = "SELECT t1.* FROM topics t1 INNER JOIN video_topics t2 ON t2.topic_id = t1.id WHERE t2.video_id = ?"
	if got := ExtraTopics.Statement(); got != want {
		t.Errorf("unexpected extras sql:\n got %s\nwant %s", got, want)
	}
}

func TestTopicScope(t *testing.T) {
	if _, ok := ParseTopicScope("authors"); ok {
		t.Error("expected 'authors' to be rejected")
	}
	scope, ok := ParseTopicScope("videos")
	if !ok || scope != ScopeVideos {
		t.Fatalf("expected videos scope, got %v (%v)", scope, ok)
	}
	sql := scope.CountStatement()
	if sql != "SELECT topics.id, topics.name, COUNT(videos.id) total FROM topics "+
		"INNER JOIN video_topics ON topics.id = video_topics.topic_id "+
		"INNER JOIN videos ON videos.id = video_topics.video_id "+
		"WHERE videos.religion_id = ? GROUP BY topics.id ORDER BY topics.name ASC" {
		t.Errorf("unexpected scope sql: %s", sql)
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"defaults", "", Pagination{Limit: 20, Page: 1}},
		{"explicit", "page=2&limit=10", Pagination{Limit: 10, Page: 2}},
		{"caps limit", "limit=500", Pagination{Limit: 100, Page: 1}},
		{"rejects junk", "page=abc&limit=-5", Pagination{Limit: 20, Page: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params, _ := url.ParseQuery(tc.query)
			if got := ParsePagination(params); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	// count=45, limit=20 spans three pages; next/prev clamp at the edges.
	for page := 1; page <= 3; page++ {
		t.Run("page "+strconv.Itoa(page), func(t *testing.T) {
			m := NewMeta(45, Pagination{Limit: 20, Page: page})
			if m.Count != 45 || m.Limit != 20 || m.Page != page || m.Pages != 3 {
				t.Errorf("unexpected meta: %+v", m)
			}
			wantNext := 0
			if page < 3 {
				wantNext = page + 1
			}
			if m.Next != wantNext {
				t.Errorf("page %d: next = %d, want %d", page, m.Next, wantNext)
			}
			wantPrev := 0
			if page > 1 {
				wantPrev = page - 1
			}
			if m.Prev != wantPrev {
				t.Errorf("page %d: prev = %d, want %d", page, m.Prev, wantPrev)
			}
		})
	}
}

func TestNewMetaMiddleWindow(t *testing.T) {
	m := NewMeta(25, Pagination{Limit: 10, Page: 2})
	if m.Pages != 3 || m.Prev != 1 || m.Next != 3 {
		t.Errorf("unexpected meta: %+v", m)
	}
}
