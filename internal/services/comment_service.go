// Package services – CommentService.
//
// Comments are the only entity the API writes. Creation leans on the store's
// foreign keys (unknown article or author comes back as a constraint failure
// and is classified as domain.ErrForeignKeyViolation); listing verifies the
// article first so "no comments" and "no such article" stay distinguishable;
// deletion is a hard delete keyed on affected rows.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/repo"
)

// CommentService exposes the comment use-cases.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB
}

// ListForArticle returns the comments on articleID.
//
// The article's existence is checked before the listing so that a valid,
// comment-less article yields an empty slice while an absent article yields
// domain.ErrArticleNotFound.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	ok, err := repo.ArticleExists(ctx, s.DB, articleID)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	if !ok {
		return nil, domain.ErrArticleNotFound
	}

	comments, err := repo.ListComments(ctx, s.DB, articleID)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	return comments, nil
}

// Create inserts a comment authored by username on articleID and returns the
// created row with its generated id, defaulted votes, and timestamp. A write
// referencing an unknown article or username is never silently dropped; the
// store rejects it and the failure classifies as domain.ErrForeignKeyViolation.
func (s *CommentService) Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error) {
	c, err := repo.CreateComment(ctx, s.DB, articleID, username, body)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	return c, nil
}

// Delete removes exactly the comment named by id. Deleting an id that does
// not exist (including one already deleted) is domain.ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	if err := repo.DeleteComment(ctx, s.DB, id); err != nil {
		return classify(err, domain.ErrCommentNotFound)
	}
	return nil
}
