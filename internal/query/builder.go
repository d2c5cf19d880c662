// Package query composes the parameterized SQL statements used by the
// repositories. Identifiers that vary by route (page tables, video extras,
// topic scopes) are modeled as closed enumerations so no identifier ever
// comes from request input.
package query

import (
	"fmt"
	"strings"
)

// Builder assembles a select statement from a fixed select/from clause plus
// optional joins, conditions, ordering and pagination. Filter values are
// always carried as bind parameters in the order their conditions were added.
type Builder struct {
	selectClause string
	fromClause   string
	joins        []string
	conds        []string
	args         []interface{}
	order        string
	limit        int
	offset       int
}

// New creates a Builder for the given select and from clauses.
func New(selectClause, fromClause string) *Builder {
	return &Builder{selectClause: selectClause, fromClause: fromClause}
}

// Join appends a join clause. Joins are only added when the corresponding
// filter is present, so unrelated list queries avoid row multiplication.
func (b *Builder) Join(clause string) *Builder {
	b.joins = append(b.joins, clause)
	return b
}

// Where appends a condition with its bind values. Conditions are combined
// with AND.
func (b *Builder) Where(cond string, args ...interface{}) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// Search appends a substring condition on the given column. The %-wrapping
// of the term happens here, never at the call site.
func (b *Builder) Search(column, term string) *Builder {
	return b.Where(column+" LIKE ?", "%"+term+"%")
}

// OrderBy sets the ordering clause.
func (b *Builder) OrderBy(order string) *Builder {
	b.order = order
	return b
}

// Paginate applies LIMIT/OFFSET from the given pagination window.
func (b *Builder) Paginate(p Pagination) *Builder {
	b.limit = p.Limit
	b.offset = p.Offset()
	return b
}

// Statement returns the full select statement and its ordered bind list.
func (b *Builder) Statement() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.selectClause)
	sb.WriteString(" FROM ")
	sb.WriteString(b.fromClause)
	for _, j := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	args := b.whereInto(&sb)
	if b.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.order)
	}
	if b.limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, b.limit, b.offset)
	}
	return sb.String(), args
}

// Count returns the companion count statement over the same joins and
// conditions, ignoring ordering and pagination.
func (b *Builder) Count(countExpr string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(")
	sb.WriteString(countExpr)
	sb.WriteString(") total FROM ")
	sb.WriteString(b.fromClause)
	for _, j := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	args := b.whereInto(&sb)
	return sb.String(), args
}

func (b *Builder) whereInto(sb *strings.Builder) []interface{} {
	if len(b.conds) == 0 {
		return append([]interface{}(nil), b.args...)
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(b.conds, " AND "))
	return append([]interface{}(nil), b.args...)
}

// PageTable identifies one of the two tables that back the staged-edit
// workflow. It is the only way a table name reaches a page-by-id query.
type PageTable string

const (
	TablePages     PageTable = "pages"
	TableReligions PageTable = "religions"
)

// ParsePageTable maps a sanitized path segment to a PageTable.
func ParsePageTable(value string) (PageTable, bool) {
	switch PageTable(value) {
	case TablePages:
		return TablePages, true
	case TableReligions:
		return TableReligions, true
	}
	return "", false
}

// ByID returns the page-by-id lookup statement for the table.
func (t PageTable) ByID() string {
	return fmt.Sprintf("SELECT * FROM %s WHERE id = ? LIMIT 1", string(t))
}

// Extra identifies one of the auxiliary lookups attached to a single video
// detail response.
type Extra int

const (
	ExtraAuthors Extra = iota
	ExtraTopics
)

// Statement returns the junction lookup for the extra, binding the video id.
func (e Extra) Statement() string {
	var entity string
	switch e {
	case ExtraAuthors:
		entity = "author"
	case ExtraTopics:
		entity = "topic"
	}
	return fmt.Sprintf(
		"SELECT t1.* FROM %ss t1 INNER JOIN video_%ss t2 ON t2.%s_id = t1.id WHERE t2.video_id = ?",
		entity, entity, entity)
}

// TopicScope selects whether topic usage is counted through videos or pages.
type TopicScope string

const (
	ScopeVideos TopicScope = "videos"
	ScopePages  TopicScope = "pages"
)

// ParseTopicScope maps a sanitized path segment to a TopicScope.
func ParseTopicScope(value string) (TopicScope, bool) {
	switch TopicScope(value) {
	case ScopeVideos:
		return ScopeVideos, true
	case ScopePages:
		return ScopePages, true
	}
	return "", false
}

// CountStatement returns the grouped topic-usage count scoped to a religion.
func (s TopicScope) CountStatement() string {
	var join string
	switch s {
	case ScopeVideos:
		join = "INNER JOIN video_topics ON topics.id = video_topics.topic_id INNER JOIN videos ON videos.id = video_topics.video_id"
	case ScopePages:
		join = "INNER JOIN pages ON topics.id = pages.topic_id"
	}
	return fmt.Sprintf(
		"SELECT topics.id, topics.name, COUNT(%s.id) total FROM topics %s WHERE %s.religion_id = ? GROUP BY topics.id ORDER BY topics.name ASC",
		string(s), join, string(s))
}

// VideoJoinFilter identifies the filter column of the full video join used
// for reshaped listings.
type VideoJoinFilter int

const (
	VideosByReligion VideoJoinFilter = iota
	VideosByAuthor
	VideosByTopic
)

// videoJoinSelect is the full join producing one row per video per author per
// topic; the reshaper folds its result back into nested videos.
const videoJoinSelect = "SELECT videos.*, religions.name religion_name, sub.name religion_sub, " +
	"video_authors.author_id, authors.firstname, authors.lastname, " +
	"video_topics.topic_id, topics.name topic_name " +
	"FROM videos " +
	"INNER JOIN religions ON videos.religion_id = religions.id " +
	"LEFT JOIN religions sub ON videos.religion_branch_id = sub.id " +
	"LEFT JOIN video_topics ON videos.id = video_topics.video_id " +
	"LEFT JOIN topics ON video_topics.topic_id = topics.id " +
	"LEFT JOIN video_authors ON videos.id = video_authors.video_id " +
	"LEFT JOIN authors ON video_authors.author_id = authors.id"

// Statement returns the full video join filtered by the enum's column.
func (f VideoJoinFilter) Statement() string {
	var column string
	switch f {
	case VideosByReligion:
		column = "videos.religion_id"
	case VideosByAuthor:
		column = "video_authors.author_id"
	case VideosByTopic:
		column = "video_topics.topic_id"
	}
	return fmt.Sprintf("%s WHERE %s = ? ORDER BY videos.created DESC", videoJoinSelect, column)
}
