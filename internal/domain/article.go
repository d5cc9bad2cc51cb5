package domain

import "time"

// Article is a single article with its body and the number of comments
// that reference it.
type Article struct {
	ID           int       `db:"article_id"`
	Title        string    `db:"title"`
	Topic        string    `db:"topic"`
	Author       string    `db:"author"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	Votes        int       `db:"votes"`
	CommentCount int64     `db:"comment_count"`
}

// ArticleSummary is the listing form of an article. It omits the body.
type ArticleSummary struct {
	ID            int       `db:"article_id"`
	Title         string    `db:"title"`
	Topic         string    `db:"topic"`
	Author        string    `db:"author"`
	CreatedAt     time.Time `db:"created_at"`
	Votes         int       `db:"votes"`
	CommentsCount int64     `db:"comments_count"`
}
