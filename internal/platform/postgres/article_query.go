package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/news-api/internal/domain"
)

// sortColumns maps each allowed sort column to the qualified column it
// orders by. A column missing from this table can never reach SQL.
var sortColumns = map[domain.SortColumn]string{
	domain.SortByCreatedAt: "a.created_at",
	domain.SortByTitle:     "a.title",
	domain.SortByTopic:     "a.topic",
	domain.SortByAuthor:    "a.author",
	domain.SortByVotes:     "a.votes",
	domain.SortByArticleID: "a.article_id",
}

var sortDirections = map[domain.SortOrder]string{
	domain.OrderAsc:  "ASC",
	domain.OrderDesc: "DESC",
}

const listArticlesSelect = `
	SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes,
	       COUNT(c.comment_id) AS comments_count
	FROM articles a
	LEFT JOIN comments c ON c.article_id = a.article_id`

// buildListArticlesQuery composes the article listing query for q.
// Identifiers come only from the lookup tables above; the topic filter is
// passed as a bind parameter.
func buildListArticlesQuery(q domain.ArticleQuery) (string, []any, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortColumn, q.SortBy)
	}
	direction, ok := sortDirections[q.Order]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, q.Order)
	}

	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(listArticlesSelect)

	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&b, "\n\tWHERE a.topic = $%d", len(args))
	}

	b.WriteString("\n\tGROUP BY a.article_id")
	fmt.Fprintf(&b, "\n\tORDER BY %s %s", column, direction)
	// Break ties on the key so equal sort values list in a stable order.
	if q.SortBy != domain.SortByArticleID {
		fmt.Fprintf(&b, ", a.article_id %s", direction)
	}

	return b.String(), args, nil
}
