// Package repo – comment persistence.
//
// Comments are the only entity written through the API. Creation relies on
// the store's foreign keys to reject unknown articles and authors; the raw
// constraint error is propagated untouched for the service layer to classify.
// Deletion is a hard delete.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// ListComments returns the comments attached to articleID, oldest first.
// An article with no comments yields an empty slice; whether the article
// exists at all is the caller's question, not this function's.
func ListComments(ctx context.Context, db *gorm.DB, articleID int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("comment_id asc").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a new comment row authored by username on articleID.
// The id is generated by the store, votes default to zero, and CreatedAt is
// set to UTC now. Constraint violations come back as raw driver errors.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int, username, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    username,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes exactly the comment named by id. Zero rows affected
// surfaces as gorm.ErrRecordNotFound so "already gone" is distinguishable
// from success.
func DeleteComment(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
