// Package schema is the registry of known entities and their queryable
// fields. It is pure data: the validation and query layers consult it so the
// set of legal sort columns lives in exactly one place and never comes from
// request text.
package schema

// Order directions accepted by collection reads, already canonicalized to
// lower case.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Article column defaults for the collection read.
const (
	// DefaultArticleSort is applied when no sort_by parameter is supplied.
	DefaultArticleSort = "created_at"
	// DefaultOrder is applied when no order parameter is supplied.
	DefaultOrder = OrderDesc
	// ArticleTieBreak makes result order deterministic when the primary sort
	// key has duplicates. Always ascending.
	ArticleTieBreak = "article_id"
)

// articleSortColumns is the fixed allow-list of article columns a client may
// sort by. comment_count is derived at read time but sortable like any other
// column because the query aliases the aggregate under that name.
var articleSortColumns = map[string]struct{}{
	"article_id":    {},
	"title":         {},
	"author":        {},
	"topic":         {},
	"created_at":    {},
	"votes":         {},
	"comment_count": {},
}

// SortableArticleColumn reports whether name is a legal article sort column.
func SortableArticleColumn(name string) bool {
	_, ok := articleSortColumns[name]
	return ok
}

// ArticleSortColumns returns the allow-list of article sort columns. The
// slice is a copy; callers may not mutate the registry.
func ArticleSortColumns() []string {
	out := make([]string, 0, len(articleSortColumns))
	for name := range articleSortColumns {
		out = append(out, name)
	}
	return out
}

// VotePatchFields is the exact field set accepted by the article vote patch
// body. Any other field set is rejected before type checking.
var VotePatchFields = []string{"inc_votes"}

// NewCommentFields is the exact field set accepted by the comment creation
// body. Any other field set is rejected before null/type checking.
var NewCommentFields = []string{"username", "body"}
