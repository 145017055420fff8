// Package handlers provides the HTTP handler implementations for the public
// API. Handlers are transport-thin state machines: validate the request
// (parameters, then body), delegate to an application service, and translate
// the result or the classified domain error into an HTTP response. They are
// the only components that talk to persistence, and only through the service
// contracts below.
package handlers

import (
	"context"

	"github.com/JohnPBarrett/new-site-api/internal/domain"
	"github.com/JohnPBarrett/new-site-api/internal/request"
)

//
// Service contracts (context-aware)
//

// TopicService lists the topic catalogue.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

// ArticleService defines the article operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// List runs the filtered, sorted collection read for validated params.
	List(ctx context.Context, p request.ListParams) ([]domain.ArticleWithCount, error)
	// Get fetches one article including its derived comment count.
	Get(ctx context.Context, id int) (*domain.ArticleWithCount, error)
	// PatchVotes applies a signed vote delta atomically and returns the row.
	PatchVotes(ctx context.Context, id, delta int) (*domain.Article, error)
}

// CommentService defines the comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListForArticle returns an article's comments, erroring when the
	// article itself is absent.
	ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error)
	// Create inserts a comment and returns the created row.
	Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error)
	// Delete hard-deletes exactly one comment by id.
	Delete(ctx context.Context, id int) error
}

// UserService reads user profiles.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for topics, articles, comments, and
// users. It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	topicSvc   TopicService
	articleSvc ArticleService
	commentSvc CommentService
	userSvc    UserService
}

// New constructs a Handlers instance bound to the given services.
func New(topicSvc TopicService, articleSvc ArticleService, commentSvc CommentService, userSvc UserService) *Handlers {
	return &Handlers{
		topicSvc:   topicSvc,
		articleSvc: articleSvc,
		commentSvc: commentSvc,
		userSvc:    userSvc,
	}
}
