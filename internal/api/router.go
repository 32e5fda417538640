package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, health HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Only listed proxies may supply the client IP the rate limiter keys on
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Error().Err(err).Msg("Invalid trusted proxies, ignoring forwarded headers")
		router.SetTrustedProxies(nil)
	}

	// Middleware, outermost first
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(recoveryMiddleware(log))
	router.Use(metricsMiddleware())
	if cfg.RateLimit.Enabled {
		router.Use(newRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).handler())
	}
	router.Use(corsMiddleware(cfg.CORS))
	router.Use(errorTranslator())

	// Handlers
	topicHandler := NewTopicHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Operational endpoints
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("", listEndpoints)
		api.GET("/topics", topicHandler.ListTopics)
		api.GET("/users", topicHandler.ListUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateArticleVotes)
			articles.GET("/:article_id/comments", commentHandler.ListArticleComments)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/:comment_id", commentHandler.GetComment)
			comments.PATCH("/:comment_id", commentHandler.UpdateCommentVotes)
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)
		}
	}

	router.NoRoute(pathNotFound)

	return router
}

// healthCheck pings the database
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := health.HealthCheck(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
			c.Error(err)
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "news-forum-api",
		})
	}
}
