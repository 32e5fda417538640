package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

const getArticleQuery = `
	SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes,
	COUNT(c.comment_id) AS comment_count
	FROM articles a
	LEFT JOIN comments c ON c.article_id = a.article_id
	WHERE a.article_id = $1
	GROUP BY a.article_id
`

const updateArticleVotesQuery = `
	UPDATE articles SET votes = votes + $1
	WHERE article_id = $2
	RETURNING article_id, title, topic, author, body, created_at, votes
`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	var article models.ArticleWithCount
	err := r.db.QueryRowContext(ctx, getArticleQuery, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author, &article.Body,
		&article.CreatedAt, &article.Votes, &article.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err, "get article")
	}
	return &article, nil
}

// List returns article summaries sorted and filtered by filter
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	query, args, err := buildArticleListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err, "list articles")
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.CommentCount,
		); err != nil {
			return nil, MapError(err, "scan article")
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "list articles")
	}
	return articles, nil
}

// UpdateVotes adds inc to an article's votes and returns the updated row
func (r *articleRepo) UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	var article models.Article
	err := r.db.QueryRowContext(ctx, updateArticleVotesQuery, inc, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author, &article.Body,
		&article.CreatedAt, &article.Votes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err, "update article votes")
	}
	return &article, nil
}
