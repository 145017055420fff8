// Package query builds the articles collection read. Given validated list
// parameters it composes the join, aggregation, filter, and ordering clauses
// on a GORM handle. User-supplied values reach the statement only as bound
// parameters; the ORDER BY column comes from the schema registry allow-list,
// never from request text.
package query

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/request"
	"github.com/JohnPBarrett/new-site-api/internal/schema"
)

// Articles returns a query over articles left-joined to comments, grouped by
// article identity with the comment count aggregated per row, optionally
// filtered by topic, and ordered by the validated sort column and direction.
//
// A strict secondary tie-break of ascending article_id keeps the result
// order deterministic when the primary sort key has duplicates. Filter and
// sort compose independently, so any combination of topic, sort_by, and
// order works without special-casing.
//
// Articles panics if p.SortBy is not a registry column; callers must only
// pass parameters produced by request.ParseListParams.
func Articles(db *gorm.DB, p request.ListParams) *gorm.DB {
	if !schema.SortableArticleColumn(p.SortBy) {
		panic(fmt.Sprintf("query: sort column %q bypassed validation", p.SortBy))
	}

	q := db.Model(&domain.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if p.Topic != "" {
		q = q.Where("articles.topic = ?", p.Topic)
	}

	direction := "ASC"
	if p.Order == schema.OrderDesc {
		direction = "DESC"
	}
	return q.Order(fmt.Sprintf("%s %s, articles.%s ASC",
		orderColumn(p.SortBy), direction, schema.ArticleTieBreak))
}

// orderColumn maps a validated sort name to the SQL expression it orders by.
// comment_count refers to the aggregate alias; everything else is qualified
// against the articles table to dodge the ambiguous join columns.
func orderColumn(sortBy string) string {
	if sortBy == "comment_count" {
		return "comment_count"
	}
	return "articles." + sortBy
}
