package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	commentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_comments_created_total",
			Help: "Comments posted.",
		},
	)

	commentsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_comments_deleted_total",
			Help: "Comments deleted.",
		},
	)

	votesApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_vote_updates_total",
			Help: "Successful vote updates by resource.",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, httpInflight, commentsCreated, commentsDeleted, votesApplied)
}

// metricsMiddleware instruments requests by route template, never by raw URL
// unless no route matched
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
