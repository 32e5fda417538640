package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
)

// ValidationError describes why a single input field was rejected.
// It is wrapped as the cause of an apperr.BadRequest and only ever logged.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string, value interface{}) error {
	return apperr.BadRequest(&ValidationError{Field: field, Message: message, Value: value})
}

// validSortColumns is the allow-list for sort_by
var validSortColumns = map[string]bool{
	models.SortTitle:     true,
	models.SortTopic:     true,
	models.SortAuthor:    true,
	models.SortCreatedAt: true,
	models.SortVotes:     true,
	models.SortArticleID: true,
}

// validOrders is the allow-list for order
var validOrders = map[string]bool{
	models.OrderAsc:  true,
	models.OrderDesc: true,
}

// storableText reports whether s can be stored in a Postgres text column.
// Postgres rejects NUL bytes and invalid UTF-8 outright.
func storableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// ParseID validates a path identifier such as :article_id or :comment_id.
// Identifiers are serial int4 columns, so anything outside int32 is rejected here
// rather than by the store.
func ParseID(field, raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, invalid(field, "must be an integer", raw)
	}
	return int(id), nil
}

// ParseArticleFilter validates the article listing query parameters,
// applying defaults for the ones left empty.
func ParseArticleFilter(sortBy, order, topic string) (models.ArticleFilter, error) {
	filter := models.DefaultArticleFilter()

	if sortBy != "" {
		if !validSortColumns[sortBy] {
			return filter, invalid("sort_by", "invalid sort column, must be one of: title, topic, author, created_at, votes, article_id", sortBy)
		}
		filter.SortBy = sortBy
	}

	if order != "" {
		normalized := strings.ToLower(order)
		if !validOrders[normalized] {
			return filter, invalid("order", "invalid order, must be one of: asc, desc", order)
		}
		filter.Order = normalized
	}

	if !storableText(topic) {
		return filter, invalid("topic", "must be valid UTF-8 without NUL bytes", nil)
	}
	filter.Topic = topic
	return filter, nil
}

// ValidateNewComment checks that both username and body are present and non-blank
func ValidateNewComment(c *models.NewComment) error {
	if c == nil {
		return invalid("body", "request body is required", nil)
	}
	if strings.TrimSpace(c.Username) == "" {
		return invalid("username", "username is required", nil)
	}
	if strings.TrimSpace(c.Body) == "" {
		return invalid("body", "body is required", nil)
	}
	if !storableText(c.Username) {
		return invalid("username", "must be valid UTF-8 without NUL bytes", nil)
	}
	if !storableText(c.Body) {
		return invalid("body", "must be valid UTF-8 without NUL bytes", nil)
	}
	return nil
}

// ValidateVoteUpdate checks that inc_votes was supplied and returns it
func ValidateVoteUpdate(v *models.VoteUpdate) (int, error) {
	if v == nil || v.IncVotes == nil {
		return 0, invalid("inc_votes", "inc_votes is required", nil)
	}
	return *v.IncVotes, nil
}
