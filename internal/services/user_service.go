// Package services – UserService.
//
// Users are read-only through the API. A username is an opaque string key:
// no syntactic validation applies, so a lookup for any unknown value (even a
// numeric-looking one) reports domain.ErrUserNotFound rather than a parse
// failure.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/repo"
)

// UserService exposes the read-only user use-cases.
type UserService struct {
	// DB is the database handle used for all user reads.
	DB *gorm.DB
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	return users, nil
}

// Get returns the profile for username, or domain.ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		return nil, classify(err, domain.ErrUserNotFound)
	}
	return u, nil
}
