// Package services – ArticleService.
//
// This file implements the article read and vote-patch use-cases. The list
// operation completes parameter validation (the topic filter can only be
// checked against live topic rows, so it is validated here rather than in the
// request package) and delegates query composition to the query builder via
// the repo. Vote patches are expressed as a single atomic increment at the
// store; there is no read-modify-write anywhere in the path.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/repo"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

// ArticleService exposes the article use-cases.
type ArticleService struct {
	// DB is the database handle used for all article operations.
	DB *gorm.DB
}

// List returns the articles collection for already-validated parameters,
// each row carrying its live comment count.
//
// When a topic filter is present it must name an existing topic: an unknown
// slug is domain.ErrInvalidTopicValue, never an empty list. A known topic
// with no articles is an empty list, not an error.
func (s *ArticleService) List(ctx context.Context, p request.ListParams) ([]domain.ArticleWithCount, error) {
	if p.Topic != "" {
		ok, err := repo.TopicExists(ctx, s.DB, p.Topic)
		if err != nil {
			return nil, classify(err, domain.ErrBadRequest)
		}
		if !ok {
			return nil, domain.ErrInvalidTopicValue
		}
	}

	articles, err := repo.ListArticles(ctx, s.DB, p)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	return articles, nil
}

// Get returns the article named by id including its comment count, or
// domain.ErrArticleNotFound for a well-formed id with no row.
func (s *ArticleService) Get(ctx context.Context, id int) (*domain.ArticleWithCount, error) {
	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		return nil, classify(err, domain.ErrArticleNotFound)
	}
	return a, nil
}

// PatchVotes applies a signed delta to an article's votes and returns the
// updated row. The representation deliberately omits the derived comment
// count. Zero rows affected is domain.ErrArticleNotFound.
func (s *ArticleService) PatchVotes(ctx context.Context, id, delta int) (*domain.Article, error) {
	a, err := repo.IncrementArticleVotes(ctx, s.DB, id, delta)
	if err != nil {
		return nil, classify(err, domain.ErrArticleNotFound)
	}
	return a, nil
}
