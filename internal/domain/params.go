package domain

import (
	"fmt"
	"strconv"
)

// SortColumn names an article attribute the listing can be ordered by.
type SortColumn string

// Sortable article columns. This set is the complete allow-list.
const (
	SortByCreatedAt SortColumn = "created_at"
	SortByTitle     SortColumn = "title"
	SortByTopic     SortColumn = "topic"
	SortByAuthor    SortColumn = "author"
	SortByVotes     SortColumn = "votes"
	SortByArticleID SortColumn = "article_id"
)

// SortOrder is the direction of an article listing.
type SortOrder string

// Permitted sort directions.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Defaults applied when the caller omits sort_by or order.
const (
	DefaultSortColumn = SortByCreatedAt
	DefaultSortOrder  = OrderDesc
)

// Valid reports whether c is in the sortable column allow-list.
func (c SortColumn) Valid() bool {
	switch c {
	case SortByCreatedAt, SortByTitle, SortByTopic, SortByAuthor, SortByVotes, SortByArticleID:
		return true
	}
	return false
}

// Valid reports whether o is asc or desc.
func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// ArticleQuery is a validated set of article listing parameters.
// The zero value is not valid; build one with NewArticleQuery.
type ArticleQuery struct {
	SortBy SortColumn
	Order  SortOrder
	// Topic filters by exact slug when non-empty.
	Topic string
}

// NewArticleQuery applies defaults for empty parameters and rejects any
// sort column or order outside the allow-lists.
func NewArticleQuery(sortBy, order, topic string) (ArticleQuery, error) {
	q := ArticleQuery{
		SortBy: SortColumn(sortBy),
		Order:  SortOrder(order),
		Topic:  topic,
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortColumn
	}
	if q.Order == "" {
		q.Order = DefaultSortOrder
	}

	if !q.SortBy.Valid() {
		return ArticleQuery{}, fmt.Errorf("%w: %q", ErrInvalidSortColumn, sortBy)
	}
	if !q.Order.Valid() {
		return ArticleQuery{}, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}
	return q, nil
}

// ParseID converts a textual identifier into an article or comment key.
// Keys are Postgres integer columns, so anything outside int32 is rejected.
func ParseID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return int(id), nil
}
