package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/news-forum-api/internal/api"
	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/mocks"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(ctx context.Context) error {
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "9090"},
		Log:    config.LogConfig{Level: "info", Format: "json"},
	}
}

// setupTestRouter serves the full stack over the in-memory fixture
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := mocks.NewFixtureStore()
	services := service.NewServices(mocks.NewRepositories(store), zerolog.Nop())
	return api.NewRouter(services, stubHealth{}, testConfig(), zerolog.Nop())
}

// setupMockRouter serves stubbed services for fault injection
func setupMockRouter() (*gin.Engine, *service.Services, *mocks.MockArticleService, *mocks.MockCommentService) {
	gin.SetMode(gin.TestMode)

	services, articles, comments := mocks.NewMockServices()
	router := api.NewRouter(services, stubHealth{}, testConfig(), zerolog.Nop())
	return router, services, articles, comments
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON response %q: %v", w.Body.String(), err)
	}
	return response
}

func expectMsg(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("Expected status %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	if got := decode(t, w)["msg"]; got != msg {
		t.Errorf("Expected msg %q, got %v", msg, got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decode(t, w)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "news-forum-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	services, _, _ := mocks.NewMockServices()
	router := api.NewRouter(services, stubHealth{err: errors.New("dial tcp: connection refused")}, testConfig(), zerolog.Nop())

	w := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
	if decode(t, w)["status"] != "unhealthy" {
		t.Error("Expected unhealthy status")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter()
	doRequest(router, "GET", "/api/topics", "")

	w := doRequest(router, "GET", "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "http_requests_total") {
		t.Error("Expected http_requests_total in exposition")
	}
	if !strings.Contains(body, `path="/api/topics"`) {
		t.Error("Expected route template label for /api/topics")
	}
}

func TestGetEndpoints(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	summary, ok := decode(t, w)["summary"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected summary object")
	}
	for _, endpoint := range []string{"GET /api/topics", "GET /api/articles", "POST /api/articles/:article_id/comments", "DELETE /api/comments/:comment_id"} {
		if _, ok := summary[endpoint]; !ok {
			t.Errorf("Summary missing %s", endpoint)
		}
	}
}

func TestGetTopics(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/topics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Topics []map[string]interface{} `json:"topics"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Topics) != 3 {
		t.Fatalf("Expected 3 topics, got %d", len(response.Topics))
	}
	for _, topic := range response.Topics {
		if _, ok := topic["slug"].(string); !ok {
			t.Errorf("Topic missing slug: %v", topic)
		}
		if _, ok := topic["description"].(string); !ok {
			t.Errorf("Topic missing description: %v", topic)
		}
	}
}

func TestPathNotFound(t *testing.T) {
	router := setupTestRouter()

	expectMsg(t, doRequest(router, "GET", "/api/bad-path", ""), http.StatusNotFound, "path not found")
	expectMsg(t, doRequest(router, "GET", "/nothing/here", ""), http.StatusNotFound, "path not found")
	expectMsg(t, doRequest(router, "PUT", "/api/topics", `{}`), http.StatusNotFound, "path not found")
}

func TestGetUsers(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/users", "")
	var response struct {
		Users []models.User `json:"users"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Users) != 4 {
		t.Fatalf("Expected 4 users, got %d", len(response.Users))
	}
	for _, u := range response.Users {
		if u.Username == "" {
			t.Error("User missing username")
		}
	}
}

func TestGetArticle(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/articles/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	article := decode(t, w)["article"].(map[string]interface{})
	expected := map[string]interface{}{
		"article_id":    float64(1),
		"title":         "Living in the shadow of a great man",
		"topic":         "mitch",
		"author":        "butter_bridge",
		"body":          "I find this existence challenging",
		"created_at":    "2020-07-09T20:11:00.000Z",
		"votes":         float64(100),
		"comment_count": "11",
	}
	for key, want := range expected {
		if article[key] != want {
			t.Errorf("Expected %s=%v, got %v", key, want, article[key])
		}
	}
}

func TestGetArticle_NoComments(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/articles/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	article := decode(t, w)["article"].(map[string]interface{})
	if article["comment_count"] != "0" {
		t.Errorf("Expected comment_count \"0\", got %v", article["comment_count"])
	}
}

func TestGetArticle_Errors(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/articles/invalid_id", http.StatusBadRequest, "bad request"},
		{"/api/articles/1.5", http.StatusBadRequest, "bad request"},
		{"/api/articles/2147483648", http.StatusBadRequest, "bad request"},
		{"/api/articles/%201", http.StatusBadRequest, "bad request"},
		{"/api/articles/1%20", http.StatusBadRequest, "bad request"},
		{"/api/articles/99", http.StatusNotFound, "article does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			expectMsg(t, doRequest(router, "GET", tt.path, ""), tt.status, tt.msg)
		})
	}
}

type articleList struct {
	Articles []map[string]interface{} `json:"articles"`
}

func listArticles(t *testing.T, router *gin.Engine, query string) []map[string]interface{} {
	t.Helper()
	w := doRequest(router, "GET", "/api/articles"+query, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for %s, got %d (%s)", query, w.Code, w.Body.String())
	}
	var response articleList
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid response: %v", err)
	}
	if response.Articles == nil {
		t.Fatalf("Expected articles array for %s, got %s", query, w.Body.String())
	}
	return response.Articles
}

func TestListArticles(t *testing.T) {
	router := setupTestRouter()

	articles := listArticles(t, router, "")
	if len(articles) != 12 {
		t.Fatalf("Expected 12 articles, got %d", len(articles))
	}

	for _, a := range articles {
		if _, ok := a["body"]; ok {
			t.Errorf("Listing should not include body: %v", a)
		}
		if _, ok := a["comment_count"].(string); !ok {
			t.Errorf("comment_count should be a string: %v", a["comment_count"])
		}
		for _, key := range []string{"article_id", "title", "topic", "author", "created_at", "votes"} {
			if _, ok := a[key]; !ok {
				t.Errorf("Article missing %s", key)
			}
		}
	}

	dates := make([]string, len(articles))
	for i, a := range articles {
		dates[i] = a["created_at"].(string)
	}
	if !sort.SliceIsSorted(dates, func(i, j int) bool { return dates[i] > dates[j] }) {
		t.Errorf("Expected created_at descending, got %v", dates)
	}
}

func TestListArticles_Sorting(t *testing.T) {
	router := setupTestRouter()

	articles := listArticles(t, router, "?sort_by=votes")
	for i := 1; i < len(articles); i++ {
		if articles[i]["votes"].(float64) > articles[i-1]["votes"].(float64) {
			t.Errorf("Expected votes descending at index %d", i)
		}
	}
	if articles[0]["article_id"] != float64(1) {
		t.Errorf("Expected article 1 first by votes, got %v", articles[0]["article_id"])
	}

	articles = listArticles(t, router, "?sort_by=topic&order=asc")
	for i := 1; i < len(articles); i++ {
		if articles[i]["topic"].(string) < articles[i-1]["topic"].(string) {
			t.Errorf("Expected topic ascending at index %d", i)
		}
	}

	articles = listArticles(t, router, "?sort_by=article_id&order=ASC")
	for i, a := range articles {
		if a["article_id"] != float64(i+1) {
			t.Errorf("Expected article_id %d at index %d, got %v", i+1, i, a["article_id"])
		}
	}
}

func TestListArticles_InvalidQueries(t *testing.T) {
	router := setupTestRouter()

	expectMsg(t, doRequest(router, "GET", "/api/articles?sort_by=invalidInput", ""), http.StatusBadRequest, "bad request")
	expectMsg(t, doRequest(router, "GET", "/api/articles?sort_by=topic&order=invalidInput", ""), http.StatusBadRequest, "bad request")
	expectMsg(t, doRequest(router, "GET", "/api/articles?sort_by=votes%3BDROP%20TABLE%20articles", ""), http.StatusBadRequest, "bad request")
	expectMsg(t, doRequest(router, "GET", "/api/articles?topic=%00", ""), http.StatusBadRequest, "bad request")
	expectMsg(t, doRequest(router, "GET", "/api/articles?topic=mi%FFtch", ""), http.StatusBadRequest, "bad request")
}

func TestListArticles_InvalidQueryNeverReachesService(t *testing.T) {
	router, _, articles, _ := setupMockRouter()

	doRequest(router, "GET", "/api/articles?sort_by=body", "")
	if len(articles.Filters) != 0 {
		t.Errorf("Service should not be called, got %v", articles.Filters)
	}

	doRequest(router, "GET", "/api/articles?order=ASC&topic=cats", "")
	if len(articles.Filters) != 1 {
		t.Fatalf("Expected one service call, got %d", len(articles.Filters))
	}
	want := models.ArticleFilter{SortBy: "created_at", Order: "asc", Topic: "cats"}
	if articles.Filters[0] != want {
		t.Errorf("Expected filter %+v, got %+v", want, articles.Filters[0])
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	router := setupTestRouter()

	articles := listArticles(t, router, "?topic=mitch")
	if len(articles) != 11 {
		t.Errorf("Expected 11 mitch articles, got %d", len(articles))
	}
	for _, a := range articles {
		if a["topic"] != "mitch" {
			t.Errorf("Expected topic mitch, got %v", a["topic"])
		}
	}

	// Known topic without articles
	articles = listArticles(t, router, "?topic=paper")
	if len(articles) != 0 {
		t.Errorf("Expected no paper articles, got %d", len(articles))
	}

	expectMsg(t, doRequest(router, "GET", "/api/articles?topic=invalidTopic", ""), http.StatusNotFound, "topic doesn't exist")
}

func TestListArticleComments(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/articles/1/comments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Comments []map[string]interface{} `json:"comments"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Comments) != 11 {
		t.Fatalf("Expected 11 comments, got %d", len(response.Comments))
	}
	for _, c := range response.Comments {
		for _, key := range []string{"comment_id", "votes", "created_at", "author", "body", "article_id"} {
			if _, ok := c[key]; !ok {
				t.Errorf("Comment missing %s", key)
			}
		}
	}
	for i := 1; i < len(response.Comments); i++ {
		if response.Comments[i]["created_at"].(string) > response.Comments[i-1]["created_at"].(string) {
			t.Errorf("Expected newest first at index %d", i)
		}
	}
}

func TestListArticleComments_EmptyAndMissing(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/articles/4/comments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"comments":[]}` {
		t.Errorf("Expected empty comments array, got %s", w.Body.String())
	}

	expectMsg(t, doRequest(router, "GET", "/api/articles/99/comments", ""), http.StatusNotFound, "article does not exist")
	expectMsg(t, doRequest(router, "GET", "/api/articles/abc/comments", ""), http.StatusBadRequest, "bad request")
}

func TestPatchArticle(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "PATCH", "/api/articles/1", `{"inc_votes": 1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	article := decode(t, w)["article"].(map[string]interface{})
	expected := map[string]interface{}{
		"article_id": float64(1),
		"title":      "Living in the shadow of a great man",
		"topic":      "mitch",
		"author":     "butter_bridge",
		"body":       "I find this existence challenging",
		"created_at": "2020-07-09T20:11:00.000Z",
		"votes":      float64(101),
	}
	if len(article) != len(expected) {
		t.Errorf("Expected exactly %d fields, got %v", len(expected), article)
	}
	for key, want := range expected {
		if article[key] != want {
			t.Errorf("Expected %s=%v, got %v", key, want, article[key])
		}
	}
}

func TestPatchArticle_Decrement(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "PATCH", "/api/articles/1", `{"inc_votes": -100}`)
	article := decode(t, w)["article"].(map[string]interface{})
	if article["votes"] != float64(0) {
		t.Errorf("Expected 0 votes, got %v", article["votes"])
	}
}

func TestPatchArticle_Errors(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"empty object", "/api/articles/1", `{}`, http.StatusBadRequest, "bad request"},
		{"no body", "/api/articles/1", "", http.StatusBadRequest, "bad request"},
		{"null votes", "/api/articles/1", `{"inc_votes": null}`, http.StatusBadRequest, "bad request"},
		{"string votes", "/api/articles/1", `{"inc_votes": "abc"}`, http.StatusBadRequest, "bad request"},
		{"fractional votes", "/api/articles/1", `{"inc_votes": 1.5}`, http.StatusBadRequest, "bad request"},
		{"malformed json", "/api/articles/1", `{"inc_votes":`, http.StatusBadRequest, "bad request"},
		{"invalid id", "/api/articles/invalid-id", `{"inc_votes": 1}`, http.StatusBadRequest, "bad request"},
		{"missing article", "/api/articles/99", `{"inc_votes": 1}`, http.StatusNotFound, "article does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectMsg(t, doRequest(router, "PATCH", tt.path, tt.body), tt.status, tt.msg)
		})
	}
}

func TestPostComment(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "POST", "/api/articles/1/comments", `{"username": "butter_bridge", "body": "coding is fun"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	var response struct {
		Comment models.Comment `json:"comment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid response: %v", err)
	}
	c := response.Comment
	if c.CommentID == 0 {
		t.Error("Expected generated comment_id")
	}
	if c.ArticleID != 1 || c.Author != "butter_bridge" || c.Body != "coding is fun" || c.Votes != 0 {
		t.Errorf("Unexpected comment %+v", c)
	}
	if c.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	// Round trip: new comment appears once, first
	w = doRequest(router, "GET", "/api/articles/1/comments", "")
	var list struct {
		Comments []models.Comment `json:"comments"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Comments) != 12 {
		t.Fatalf("Expected 12 comments, got %d", len(list.Comments))
	}
	if list.Comments[0].CommentID != c.CommentID {
		t.Errorf("Expected new comment first, got %d", list.Comments[0].CommentID)
	}
	seen := 0
	for _, lc := range list.Comments {
		if lc.CommentID == c.CommentID {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("Expected new comment exactly once, got %d", seen)
	}

	w = doRequest(router, "GET", "/api/articles/1", "")
	if decode(t, w)["article"].(map[string]interface{})["comment_count"] != "12" {
		t.Error("Expected comment_count to include the new comment")
	}
}

func TestPostComment_Errors(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing body", "/api/articles/1/comments", `{"username": "butter_bridge"}`},
		{"blank body", "/api/articles/1/comments", `{"username": "butter_bridge", "body": "  "}`},
		{"missing username", "/api/articles/1/comments", `{"body": "hello"}`},
		{"unknown username", "/api/articles/1/comments", `{"username": "not-a-user", "body": "hello"}`},
		{"non-string username", "/api/articles/1/comments", `{"username": 5, "body": "hello"}`},
		{"empty payload", "/api/articles/1/comments", ""},
		{"missing article", "/api/articles/99/comments", `{"username": "butter_bridge", "body": "hello"}`},
		{"invalid article id", "/api/articles/abc/comments", `{"username": "butter_bridge", "body": "hello"}`},
		{"NUL byte in body", "/api/articles/1/comments", `{"username": "butter_bridge", "body": "a\u0000b"}`},
		{"NUL byte in username", "/api/articles/1/comments", `{"username": "butter\u0000bridge", "body": "hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectMsg(t, doRequest(router, "POST", tt.path, tt.body), http.StatusBadRequest, "bad request")
		})
	}
}

func TestGetComment(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/comments/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	comment := decode(t, w)["comment"].(map[string]interface{})
	if comment["comment_id"] != float64(1) || comment["article_id"] != float64(9) {
		t.Errorf("Unexpected comment %v", comment)
	}

	expectMsg(t, doRequest(router, "GET", "/api/comments/999", ""), http.StatusNotFound, "comment does not exist")
	expectMsg(t, doRequest(router, "GET", "/api/comments/one", ""), http.StatusBadRequest, "bad request")
}

func TestPatchComment(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "PATCH", "/api/comments/1", `{"inc_votes": -20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	comment := decode(t, w)["comment"].(map[string]interface{})
	if comment["votes"] != float64(-4) {
		t.Errorf("Expected -4 votes, got %v", comment["votes"])
	}

	expectMsg(t, doRequest(router, "PATCH", "/api/comments/999", `{"inc_votes": 1}`), http.StatusNotFound, "comment does not exist")
	expectMsg(t, doRequest(router, "PATCH", "/api/comments/1", `{"inc_votes": "abc"}`), http.StatusBadRequest, "bad request")
}

func TestDeleteComment(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "DELETE", "/api/comments/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}

	expectMsg(t, doRequest(router, "DELETE", "/api/comments/1", ""), http.StatusNotFound, "comment does not exist")
	expectMsg(t, doRequest(router, "DELETE", "/api/comments/999", ""), http.StatusNotFound, "comment does not exist")
	expectMsg(t, doRequest(router, "DELETE", "/api/comments/invalidFormat", ""), http.StatusBadRequest, "bad request")
}

func TestRepeatedGetsAreIdentical(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/api/articles/1", "/api/articles?sort_by=title", "/api/articles/1/comments", "/api/users"} {
		first := doRequest(router, "GET", path, "").Body.String()
		second := doRequest(router, "GET", path, "").Body.String()
		if first != second {
			t.Errorf("Responses for %s differ:\n%s\n%s", path, first, second)
		}
	}
}

func TestServerErrorsDoNotLeak(t *testing.T) {
	router, services, _, comments := setupMockRouter()
	services.Topic = &mocks.MockTopicService{
		ListFunc: func(ctx context.Context) ([]models.Topic, error) {
			return nil, errors.New(`pq: relation "topics" does not exist`)
		},
	}
	comments.DeleteFunc = func(ctx context.Context, id int) error {
		return &pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"}
	}

	w := doRequest(router, "GET", "/api/topics", "")
	expectMsg(t, w, http.StatusInternalServerError, "internal server error")
	if strings.Contains(w.Body.String(), "relation") {
		t.Errorf("Response leaks store details: %s", w.Body.String())
	}

	expectMsg(t, doRequest(router, "DELETE", "/api/comments/3", ""), http.StatusInternalServerError, "internal server error")
}

func TestStoreClientFaultsAreBadRequest(t *testing.T) {
	router, _, articles, _ := setupMockRouter()
	articles.GetFunc = func(ctx context.Context, id int) (*models.ArticleWithCount, error) {
		return nil, &pq.Error{Code: "22P02", Message: "invalid input syntax for type integer"}
	}

	expectMsg(t, doRequest(router, "GET", "/api/articles/1", ""), http.StatusBadRequest, "bad request")
}

func TestStoreEncodingFaultsAreBadRequest(t *testing.T) {
	router, _, _, comments := setupMockRouter()
	comments.CreateFunc = func(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
		return nil, &pq.Error{Code: "22021", Message: "invalid byte sequence for encoding \"UTF8\": 0x00"}
	}

	w := doRequest(router, "POST", "/api/articles/1/comments", `{"username": "butter_bridge", "body": "a\u0000b"}`)
	expectMsg(t, w, http.StatusBadRequest, "bad request")
	if strings.Contains(w.Body.String(), "UTF8") {
		t.Errorf("Response leaks store details: %s", w.Body.String())
	}
}

func TestPanicRecovery(t *testing.T) {
	router, _, articles, _ := setupMockRouter()
	articles.UpdateVotesFunc = func(ctx context.Context, id, inc int) (*models.Article, error) {
		panic("nil map write")
	}

	expectMsg(t, doRequest(router, "PATCH", "/api/articles/1", `{"inc_votes": 1}`), http.StatusInternalServerError, "internal server error")
}

func TestRequestID(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(router, "GET", "/api/topics", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected generated X-Request-ID")
	}

	req := httptest.NewRequest("GET", "/api/topics", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("Expected propagated request id, got %q", got)
	}
}

func TestCORSHeaders(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest("OPTIONS", "/api/articles/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected CORS origin '*', got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Errorf("Expected PATCH in allowed methods, got %q", w.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestRateLimiting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}

	services := service.NewServices(mocks.NewRepositories(mocks.NewFixtureStore()), zerolog.Nop())
	router := api.NewRouter(services, stubHealth{}, cfg, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if w := doRequest(router, "GET", "/api/topics", ""); w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := doRequest(router, "GET", "/api/topics", "")
	expectMsg(t, w, http.StatusTooManyRequests, "too many requests")
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

func TestRateLimiting_IgnoresSpoofedForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}

	services := service.NewServices(mocks.NewRepositories(mocks.NewFixtureStore()), zerolog.Nop())
	router := api.NewRouter(services, stubHealth{}, cfg, zerolog.Nop())

	admitted := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/api/topics", nil)
		req.RemoteAddr = "192.0.2.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			admitted++
		}
	}
	if admitted != 2 {
		t.Errorf("Expected burst of 2 admitted from one peer, got %d", admitted)
	}
}

func TestRateLimiting_TrustedProxyForwardsClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.Server.TrustedProxies = []string{"192.0.2.7"}
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}

	services := service.NewServices(mocks.NewRepositories(mocks.NewFixtureStore()), zerolog.Nop())
	router := api.NewRouter(services, stubHealth{}, cfg, zerolog.Nop())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/topics", nil)
		req.RemoteAddr = "192.0.2.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Client 10.0.0.%d behind trusted proxy: expected 200, got %d", i, w.Code)
		}
	}
}
