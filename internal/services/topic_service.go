// Package services – TopicService.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/repo"
)

// TopicService exposes the read-only topic use-cases.
type TopicService struct {
	// DB is the database handle used for all topic reads. It may be a plain
	// *gorm.DB or a transaction-bound handle.
	DB *gorm.DB
}

// List returns every topic. There is no failure mode a client can trigger
// here; store errors are still classified so nothing raw escapes.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	topics, err := repo.ListTopics(ctx, s.DB)
	if err != nil {
		return nil, classify(err, domain.ErrBadRequest)
	}
	return topics, nil
}
