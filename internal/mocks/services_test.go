package mocks_test

import (
	"github.com/phrazzld/news-api/internal/mocks"
	"github.com/phrazzld/news-api/internal/service"
)

var (
	_ service.ArticleService = (*mocks.MockArticleService)(nil)
	_ service.CommentService = (*mocks.MockCommentService)(nil)
	_ service.TopicService   = (*mocks.MockTopicService)(nil)
	_ service.UserService    = (*mocks.MockUserService)(nil)
)
