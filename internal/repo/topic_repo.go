// Package repo – topic persistence.
//
// Topics are read-only through the API. Both functions are context-aware and
// accept a *gorm.DB handle, making them safe inside transactions. No business
// logic lives here, only query execution; failures propagate as raw GORM
// errors for the service layer to classify.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound so callers can errors.Is against either.
var ErrNotFound = gorm.ErrRecordNotFound

// ListTopics returns every topic, ordered by slug for stable output. An empty
// table yields an empty slice, not an error.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	var out []domain.Topic
	err := db.WithContext(ctx).Order("slug asc").Find(&out).Error
	return out, err
}

// TopicExists reports whether slug names an existing topic.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("slug = ?", slug).
		Count(&n).Error
	return n > 0, err
}
