package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/news-forum-api/internal/database"
)

// ErrUnknownRelation is returned for a (table, column) pair outside the allow-list
var ErrUnknownRelation = errors.New("unknown table/column for existence check")

type relation struct {
	table  string
	column string
}

// existsQueries maps every checkable key to its statement, so no identifier
// from a caller is ever concatenated into SQL.
var existsQueries = map[relation]string{
	{"articles", "article_id"}: "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)",
	{"comments", "comment_id"}: "SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)",
	{"topics", "slug"}:         "SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)",
	{"users", "username"}:      "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)",
}

// existenceChecker is the concrete implementation of ExistenceChecker
type existenceChecker struct {
	db *database.DB
}

// NewExistenceChecker creates a new existence checker
func NewExistenceChecker(db *database.DB) ExistenceChecker {
	return &existenceChecker{db: db}
}

// Exists checks whether table has a row whose column equals value
func (e *existenceChecker) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	query, ok := existsQueries[relation{table, column}]
	if !ok {
		return false, fmt.Errorf("%w: %s.%s", ErrUnknownRelation, table, column)
	}

	var exists bool
	if err := e.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		return false, MapError(err, "check "+table+" existence")
	}
	return exists, nil
}
