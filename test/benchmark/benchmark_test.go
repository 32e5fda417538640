package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/api"
	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/mocks"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

type healthy struct{}

func (healthy) HealthCheck(ctx context.Context) error { return nil }

// largeStore extends the fixture with n extra articles, each with a comment
func largeStore(n int) *mocks.Store {
	store := mocks.NewFixtureStore()
	base := mocks.FixtureArticles()[0]
	for i := 0; i < n; i++ {
		id := 1000 + i
		a := base
		a.ArticleID = id
		a.Title = fmt.Sprintf("Article %06d", i)
		a.Votes = i % 97
		store.Articles[id] = &a
		store.Comments[10000+i] = &models.Comment{CommentID: 10000 + i, ArticleID: id, Author: "lurker", Body: "+1", CreatedAt: a.CreatedAt}
	}
	return store
}

func newRouter(store *mocks.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	services := service.NewServices(mocks.NewRepositories(store), zerolog.Nop())
	return api.NewRouter(services, healthy{}, &config.Config{}, zerolog.Nop())
}

// BenchmarkParseArticleFilter benchmarks query-parameter validation
func BenchmarkParseArticleFilter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := validation.ParseArticleFilter("votes", "ASC", "mitch"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseID benchmarks path identifier validation
func BenchmarkParseID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		validation.ParseID("article_id", "2147483647")
	}
}

// BenchmarkListArticles benchmarks the listing endpoint over 1000 articles
func BenchmarkListArticles(b *testing.B) {
	router := newRouter(largeStore(1000))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/api/articles?sort_by=votes&order=asc&topic=mitch", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("Expected 200, got %d", w.Code)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkPostComment benchmarks comment insertion with the concurrent article existence check
func BenchmarkPostComment(b *testing.B) {
	router := newRouter(mocks.NewFixtureStore())
	body := `{"username": "lurker", "body": "benchmark"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("POST", "/api/articles/1/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			b.Fatalf("Expected 201, got %d", w.Code)
		}
	}
}

// BenchmarkGetArticleParallel benchmarks concurrent single-article reads
func BenchmarkGetArticleParallel(b *testing.B) {
	router := newRouter(largeStore(1000))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest("GET", "/api/articles/1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}
	})
}
