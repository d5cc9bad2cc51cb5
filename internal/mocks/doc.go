// Package mocks provides function-field mocks of the service interfaces
// for handler tests.
//
// Each mock has one function field per interface method. When a field is
// nil the method returns the mock's default values:
//
//	articles := &mocks.MockArticleService{
//	    GetArticleFn: func(ctx context.Context, id int) (*domain.Article, error) {
//	        return nil, store.ErrArticleNotFound
//	    },
//	}
package mocks
