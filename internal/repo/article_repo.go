// Package repo – article persistence.
//
// Functions:
//
//   - ListArticles(ctx, db, params) -> []domain.ArticleWithCount, error
//     Executes the composed collection query (filter, sort, tie-break).
//
//   - GetArticle(ctx, db, id) -> *domain.ArticleWithCount, error
//     Fetches one article with its live comment count, or ErrNotFound.
//
//   - ArticleExists(ctx, db, id) -> (bool, error)
//     Cheap existence probe used to distinguish "no comments" from
//     "no such article".
//
//   - IncrementArticleVotes(ctx, db, id, delta) -> *domain.Article, error
//     Applies votes = votes + delta as a single UPDATE, then reloads the row.
//
// The comment count is always recomputed from live comment rows; it is never
// cached or persisted.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/query"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

// ListArticles runs the articles collection read for the given validated
// parameters. A valid topic with no articles yields an empty slice.
func ListArticles(ctx context.Context, db *gorm.DB, p request.ListParams) ([]domain.ArticleWithCount, error) {
	out := []domain.ArticleWithCount{}
	err := query.Articles(db.WithContext(ctx), p).Scan(&out).Error
	return out, err
}

// GetArticle fetches a single article by id together with its comment count.
// A missing article surfaces as gorm.ErrRecordNotFound (ErrNotFound).
func GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.ArticleWithCount, error) {
	var a domain.ArticleWithCount
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ArticleExists reports whether id names an existing article.
func ArticleExists(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// IncrementArticleVotes applies a signed delta to an article's vote count as
// one atomic UPDATE (votes = votes + ?), so concurrent patches compose on the
// delta instead of racing through a stale read. Zero rows affected surfaces
// as gorm.ErrRecordNotFound; on success the updated row is returned without
// the derived comment count.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var a domain.Article
	if err := db.WithContext(ctx).Where("article_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
