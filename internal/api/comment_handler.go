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

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListArticleComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListArticleComments(c *gin.Context) {
	articleID, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err))
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), articleID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	commentsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// GetComment handles GET /api/comments/:comment_id
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := validation.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// UpdateCommentVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateCommentVotes(c *gin.Context) {
	id, err := validation.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}
	inc, err := bindVoteUpdate(c)
	if err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.UpdateVotes(c.Request.Context(), id, inc)
	if err != nil {
		c.Error(err)
		return
	}

	votesApplied.WithLabelValues("comment").Inc()
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := validation.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	commentsDeleted.Inc()
	c.Status(http.StatusNoContent)
}
