package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles?sort_by=...&order=...&topic=...
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter, err := validation.ParseArticleFilter(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		c.Error(err)
		return
	}

	articles, err := h.services.Article.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	id, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	inc, err := bindVoteUpdate(c)
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), id, inc)
	if err != nil {
		c.Error(err)
		return
	}

	votesApplied.WithLabelValues("article").Inc()
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// bindVoteUpdate decodes and validates an {inc_votes} payload
func bindVoteUpdate(c *gin.Context) (int, error) {
	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, apperr.BadRequest(err)
	}
	return validation.ValidateVoteUpdate(&req)
}
