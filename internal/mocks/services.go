package mocks

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc func(ctx context.Context) ([]models.Topic, error)
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Topic{}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListFunc func(ctx context.Context) ([]models.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.User{}, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	GetFunc         func(ctx context.Context, id int) (*models.ArticleWithCount, error)
	ListFunc        func(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error)
	UpdateVotesFunc func(ctx context.Context, id, inc int) (*models.Article, error)
	Filters         []models.ArticleFilter
}

var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) Get(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.ArticleWithCount{Article: models.Article{ArticleID: id}}, nil
}

func (m *MockArticleService) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	m.Filters = append(m.Filters, filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []models.ArticleSummary{}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, id, inc)
	}
	return &models.Article{ArticleID: id, Votes: inc}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	GetFunc           func(ctx context.Context, id int) (*models.Comment, error)
	ListByArticleFunc func(ctx context.Context, articleID int) ([]models.Comment, error)
	CreateFunc        func(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotesFunc   func(ctx context.Context, id, inc int) (*models.Comment, error)
	DeleteFunc        func(ctx context.Context, id int) error
	Deleted           []int
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) Get(ctx context.Context, id int) (*models.Comment, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.Comment{CommentID: id}, nil
}

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, comment)
	}
	return &models.Comment{ArticleID: articleID, Author: comment.Username, Body: comment.Body}, nil
}

func (m *MockCommentService) UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, id, inc)
	}
	return &models.Comment{CommentID: id, Votes: inc}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id int) error {
	m.Deleted = append(m.Deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// NewMockServices bundles zero-value mock services
func NewMockServices() (*service.Services, *MockArticleService, *MockCommentService) {
	articles := &MockArticleService{}
	comments := &MockCommentService{}
	return &service.Services{
		Topic:   &MockTopicService{},
		User:    &MockUserService{},
		Article: articles,
		Comment: comments,
	}, articles, comments
}
