package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/repository"
)

// errorTranslator renders the last error a handler attached with c.Error.
// Classified errors keep their status and message, store rejections of bad
// input become 400, and anything else is a generic 500.
func errorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, msg := classify(c.Errors.Last().Err)
		c.AbortWithStatusJSON(status, gin.H{"msg": msg})
	}
}

func classify(err error) (int, string) {
	if appErr, ok := apperr.From(err); ok {
		return appErr.Status, appErr.Msg
	}
	if repository.IsClientFault(err) {
		return http.StatusBadRequest, apperr.MsgBadRequest
	}
	return http.StatusInternalServerError, apperr.MsgInternal
}

// pathNotFound is the fallback for unmatched routes
func pathNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": apperr.MsgPathNotFound})
}
