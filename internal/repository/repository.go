package repository

import (
	"context"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleRepository defines the interface for article data operations.
// Lookups return (nil, nil) when no row matches.
type ArticleRepository interface {
	GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations.
// Lookups return (nil, nil) when no row matches.
type CommentRepository interface {
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ExistenceChecker confirms that a row with the given key exists
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column string, value interface{}) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Exists  ExistenceChecker
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Exists:  NewExistenceChecker(db),
	}
}
