// Package request implements the validation boundary between raw HTTP input
// and the rest of the application. Path and query parameters are interpreted
// here into typed values, and JSON bodies are checked against the exact field
// sets the endpoints accept. Nothing beyond this package ever sees
// unvalidated request text.
package request

import (
	"strconv"
	"strings"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/schema"
)

// ListParams is the validated form of the articles collection query
// parameters. SortBy is always a registry column, Order is canonical
// asc/desc, and Topic is empty when no filter was supplied.
//
// Topic is validated syntactically only; whether the slug exists is a
// persistence question answered by the article service.
type ListParams struct {
	SortBy string
	Order  string
	Topic  string
}

// ParseID interprets a path parameter as a numeric identifier.
//
// Only the parse is performed here: a syntactically valid id that matches no
// row is deliberately NOT detected at this layer, so that "malformed" and
// "absent" stay distinct error kinds. Malformed input yields
// domain.ErrInvalidInput.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// ParseListParams validates the articles collection query parameters.
//
// The three checks are independent; any subset of parameters may be present.
// The first failing check wins and is returned alone (no aggregation):
//
//   - sort_by must be a registry sort column (default: created_at),
//     otherwise domain.ErrInvalidSortField.
//   - order must be asc or desc, case-insensitive, canonicalized to lower
//     (default: desc), otherwise domain.ErrInvalidOrderField.
//   - topic is passed through; an empty value means "all topics".
func ParseListParams(sortBy, order, topic string) (ListParams, error) {
	p := ListParams{
		SortBy: schema.DefaultArticleSort,
		Order:  schema.DefaultOrder,
		Topic:  strings.TrimSpace(topic),
	}

	if s := strings.TrimSpace(sortBy); s != "" {
		if !schema.SortableArticleColumn(s) {
			return ListParams{}, domain.ErrInvalidSortField
		}
		p.SortBy = s
	}

	if o := strings.ToLower(strings.TrimSpace(order)); o != "" {
		if o != schema.OrderAsc && o != schema.OrderDesc {
			return ListParams{}, domain.ErrInvalidOrderField
		}
		p.Order = o
	}

	return p, nil
}
