package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/endpoints"
)

// TimestampLayout renders instants in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp marshals as a TimestampLayout string.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).UTC().Format(TimestampLayout))), nil
}

// String returns the formatted timestamp.
func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimestampLayout)
}

// VoteDelta is the inc_votes value of a vote request. Absent, null and ""
// decode to zero. Integers and integer strings are accepted; anything else
// fails with domain.ErrInvalidVoteDelta.
type VoteDelta int

// UnmarshalJSON implements json.Unmarshaler.
func (d *VoteDelta) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidVoteDelta, err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*d = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidVoteDelta, raw)
	}
	*d = VoteDelta(n)
	return nil
}

// VoteRequest is the payload of the vote endpoints.
type VoteRequest struct {
	IncVotes VoteDelta `json:"inc_votes"`
}

// CreateCommentRequest is the payload of POST /api/articles/{article_id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

// TopicResponse is a topic on the wire.
type TopicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UserResponse is a user on the wire.
type UserResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleResponse is a full article with its comment count.
type ArticleResponse struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	CreatedAt    Timestamp `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count,string"`
}

// ArticleSummaryResponse is an article list entry. It has no body.
type ArticleSummaryResponse struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     Timestamp `json:"created_at"`
	Votes         int       `json:"votes"`
	CommentsCount int64     `json:"comments_count,string"`
}

// CommentResponse is a comment on the wire.
type CommentResponse struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt Timestamp `json:"created_at"`
}

// Response envelopes

type topicsEnvelope struct {
	Topics []TopicResponse `json:"topics"`
}

type usersEnvelope struct {
	Users []UserResponse `json:"users"`
}

type userEnvelope struct {
	User UserResponse `json:"user"`
}

type articlesEnvelope struct {
	Articles []ArticleSummaryResponse `json:"articles"`
}

type articleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

type commentsEnvelope struct {
	Comments []CommentResponse `json:"comments"`
}

type commentEnvelope struct {
	Comment CommentResponse `json:"comment"`
}

type endpointsEnvelope struct {
	Endpoints endpoints.Directory `json:"endpoints"`
}

func toTopicResponses(topics []domain.Topic) []TopicResponse {
	out := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicResponse{Slug: t.Slug, Description: t.Description})
	}
	return out
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

func toUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:    a.ID,
		Title:        a.Title,
		Topic:        a.Topic,
		Author:       a.Author,
		Body:         a.Body,
		CreatedAt:    Timestamp(a.CreatedAt),
		Votes:        a.Votes,
		CommentCount: a.CommentCount,
	}
}

func toArticleSummaryResponses(articles []domain.ArticleSummary) []ArticleSummaryResponse {
	out := make([]ArticleSummaryResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleSummaryResponse{
			ArticleID:     a.ID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     Timestamp(a.CreatedAt),
			Votes:         a.Votes,
			CommentsCount: a.CommentsCount,
		})
	}
	return out
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Votes:     c.Votes,
		CreatedAt: Timestamp(c.CreatedAt),
	}
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	return out
}

var _ json.Marshaler = Timestamp{}
