package repository

import (
	"errors"
	"strings"

	"github.com/news-forum-api/internal/models"
)

// ErrUnsupportedSort is returned when a filter reaches the builder with a sort
// column or direction outside the allow-list
var ErrUnsupportedSort = errors.New("unsupported sort column or order")

// sortColumns maps validated sort_by values to qualified column literals
var sortColumns = map[string]string{
	models.SortTitle:     "a.title",
	models.SortTopic:     "a.topic",
	models.SortAuthor:    "a.author",
	models.SortCreatedAt: "a.created_at",
	models.SortVotes:     "a.votes",
	models.SortArticleID: "a.article_id",
}

// sortDirections maps validated order values to SQL keywords
var sortDirections = map[string]string{
	models.OrderAsc:  "ASC",
	models.OrderDesc: "DESC",
}

const articleListSelect = `SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes,
COUNT(c.comment_id) AS comment_count
FROM articles a
LEFT JOIN comments c ON c.article_id = a.article_id`

// buildArticleListQuery assembles the listing statement for filter.
// The topic value is always bound; only allow-listed literals are concatenated.
func buildArticleListQuery(filter models.ArticleFilter) (string, []interface{}, error) {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		return "", nil, ErrUnsupportedSort
	}
	direction, ok := sortDirections[filter.Order]
	if !ok {
		return "", nil, ErrUnsupportedSort
	}

	var sb strings.Builder
	var args []interface{}

	sb.WriteString(articleListSelect)
	if filter.Topic != "" {
		args = append(args, filter.Topic)
		sb.WriteString("\nWHERE a.topic = $1")
	}
	sb.WriteString("\nGROUP BY a.article_id")
	sb.WriteString("\nORDER BY " + column + " " + direction)
	if column != sortColumns[models.SortArticleID] {
		// Stable order for ties
		sb.WriteString(", a.article_id " + direction)
	}

	return sb.String(), args, nil
}
