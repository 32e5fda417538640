package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleService defines the interface for article operations.
// Failures are *apperr.Error values or unclassified store faults.
type ArticleService interface {
	Get(ctx context.Context, id int) (*models.ArticleWithCount, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	Get(ctx context.Context, id int) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
		Article: newArticleService(repos.Article, repos.Exists, log),
		Comment: newCommentService(repos.Comment, repos.Exists, log),
	}
}
