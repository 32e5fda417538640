package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

// Store is the in-memory dataset shared by the mock repositories.
// Services run queries concurrently, so all access goes through mu.
type Store struct {
	mu            sync.RWMutex
	Topics        []models.Topic
	Users         []models.User
	Articles      map[int]*models.Article
	Comments      map[int]*models.Comment
	nextCommentID int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Articles:      make(map[int]*models.Article),
		Comments:      make(map[int]*models.Comment),
		nextCommentID: 1,
	}
}

// NewFixtureStore creates a store seeded with the canonical fixture
func NewFixtureStore() *Store {
	s := NewStore()
	s.Topics = FixtureTopics()
	s.Users = FixtureUsers()
	for _, a := range FixtureArticles() {
		a := a
		s.Articles[a.ArticleID] = &a
	}
	for _, c := range FixtureComments() {
		c := c
		s.Comments[c.CommentID] = &c
		if c.CommentID >= s.nextCommentID {
			s.nextCommentID = c.CommentID + 1
		}
	}
	return s
}

// CommentCount returns the number of comments on an article
func (s *Store) CommentCount(articleID int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentCount(articleID)
}

func (s *Store) commentCount(articleID int) int64 {
	var n int64
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (s *Store) hasUser(username string) bool {
	for _, u := range s.Users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *Store) hasTopic(slug string) bool {
	for _, t := range s.Topics {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

// NewRepositories wires mock repositories over store
func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		Topic:   NewMockTopicRepository(store),
		User:    NewMockUserRepository(store),
		Article: NewMockArticleRepository(store),
		Comment: NewMockCommentRepository(store),
		Exists:  NewMockExistenceChecker(store),
	}
}

// foreignKeyViolation mimics the error Postgres raises for a dangling reference
func foreignKeyViolation(constraint string) error {
	return &pq.Error{
		Code:       "23503",
		Message:    fmt.Sprintf("insert or update on table \"comments\" violates foreign key constraint %q", constraint),
		Constraint: constraint,
	}
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Store   *Store
	ListErr error
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository(store *Store) *MockTopicRepository {
	return &MockTopicRepository{Store: store}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return append(make([]models.Topic, 0, len(m.Store.Topics)), m.Store.Topics...), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Store   *Store
	ListErr error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository(store *Store) *MockUserRepository {
	return &MockUserRepository{Store: store}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return append(make([]models.User, 0, len(m.Store.Users)), m.Store.Users...), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Store      *Store
	Err        error
	ListCalls  int
	LastFilter models.ArticleFilter
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository(store *Store) *MockArticleRepository {
	return &MockArticleRepository{Store: store}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	return &models.ArticleWithCount{Article: *a, CommentCount: m.Store.commentCount(id)}, nil
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	m.Store.mu.Lock()
	m.ListCalls++
	m.LastFilter = filter
	m.Store.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	summaries := make([]models.ArticleSummary, 0, len(m.Store.Articles))
	for _, a := range m.Store.Articles {
		if filter.Topic != "" && a.Topic != filter.Topic {
			continue
		}
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:    a.ArticleID,
			Title:        a.Title,
			Topic:        a.Topic,
			Author:       a.Author,
			CreatedAt:    a.CreatedAt,
			Votes:        a.Votes,
			CommentCount: m.Store.commentCount(a.ArticleID),
		})
	}

	desc := filter.Order == models.OrderDesc
	sort.Slice(summaries, func(i, j int) bool {
		c := compareSummaries(summaries[i], summaries[j], filter.SortBy)
		if c == 0 {
			c = compareInts(summaries[i].ArticleID, summaries[j].ArticleID)
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return summaries, nil
}

func compareSummaries(a, b models.ArticleSummary, sortBy string) int {
	switch sortBy {
	case models.SortTitle:
		return strings.Compare(a.Title, b.Title)
	case models.SortTopic:
		return strings.Compare(a.Topic, b.Topic)
	case models.SortAuthor:
		return strings.Compare(a.Author, b.Author)
	case models.SortVotes:
		return compareInts(a.Votes, b.Votes)
	case models.SortArticleID:
		return compareInts(a.ArticleID, b.ArticleID)
	default:
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()

	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += inc
	updated := *a
	return &updated, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Store       *Store
	Err         error
	CreateCalls int
	DeleteCalls int
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository(store *Store) *MockCommentRepository {
	return &MockCommentRepository{Store: store}
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	c, ok := m.Store.Comments[id]
	if !ok {
		return nil, nil
	}
	found := *c
	return &found, nil
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range m.Store.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt.Time) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt.Time)
		}
		return comments[i].CommentID > comments[j].CommentID
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()
	m.CreateCalls++

	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.Store.Articles[articleID]; !ok {
		return nil, foreignKeyViolation("comments_article_id_fkey")
	}
	if !m.Store.hasUser(comment.Username) {
		return nil, foreignKeyViolation("comments_author_fkey")
	}

	created := &models.Comment{
		CommentID: m.Store.nextCommentID,
		ArticleID: articleID,
		Author:    comment.Username,
		Body:      comment.Body,
		CreatedAt: models.NewTimestamp(time.Now()),
	}
	m.Store.nextCommentID++
	m.Store.Comments[created.CommentID] = created

	result := *created
	return &result, nil
}

func (m *MockCommentRepository) UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()

	c, ok := m.Store.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += inc
	updated := *c
	return &updated, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()
	m.DeleteCalls++

	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Store.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Store.Comments, id)
	return true, nil
}

// MockExistenceChecker is a mock implementation of ExistenceChecker.
// It enforces the same allow-list as the SQL implementation.
type MockExistenceChecker struct {
	Store *Store
	Err   error
}

var _ repository.ExistenceChecker = (*MockExistenceChecker)(nil)

func NewMockExistenceChecker(store *Store) *MockExistenceChecker {
	return &MockExistenceChecker{Store: store}
}

func (m *MockExistenceChecker) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	switch table + "." + column {
	case "articles.article_id":
		id, ok := value.(int)
		_, found := m.Store.Articles[id]
		return ok && found, nil
	case "comments.comment_id":
		id, ok := value.(int)
		_, found := m.Store.Comments[id]
		return ok && found, nil
	case "topics.slug":
		slug, ok := value.(string)
		return ok && m.Store.hasTopic(slug), nil
	case "users.username":
		username, ok := value.(string)
		return ok && m.Store.hasUser(username), nil
	}
	return false, fmt.Errorf("%w: %s.%s", repository.ErrUnknownRelation, table, column)
}
