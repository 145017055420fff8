// Package repo – user persistence. Users are read-only through the API.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
)

// ListUsers returns every user, ordered by username for stable output.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).Order("username asc").Find(&out).Error
	return out, err
}

// GetUser fetches a single user by username. A missing row surfaces as
// gorm.ErrRecordNotFound (ErrNotFound).
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
