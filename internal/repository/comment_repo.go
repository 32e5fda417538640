package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

const (
	getCommentQuery = `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	listCommentsQuery = `SELECT ` + commentColumns + ` FROM comments
	WHERE article_id = $1
	ORDER BY created_at DESC, comment_id DESC`

	insertCommentQuery = `INSERT INTO comments (article_id, author, body)
	VALUES ($1, $2, $3)
	RETURNING ` + commentColumns

	updateCommentVotesQuery = `UPDATE comments SET votes = votes + $1
	WHERE comment_id = $2
	RETURNING ` + commentColumns

	deleteCommentQuery = `DELETE FROM comments WHERE comment_id = $1`
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx, getCommentQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err, "get comment")
	}
	return comment, nil
}

// ListByArticle returns the comments on an article, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsQuery, articleID)
	if err != nil {
		return nil, MapError(err, "list comments")
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, MapError(err, "scan comment")
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "list comments")
	}
	return comments, nil
}

// Create inserts a comment and returns the stored row
func (r *commentRepo) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	created, err := scanComment(r.db.QueryRowContext(ctx, insertCommentQuery,
		articleID, comment.Username, comment.Body,
	))
	if err != nil {
		return nil, MapError(err, "insert comment")
	}
	return created, nil
}

// UpdateVotes adds inc to a comment's votes and returns the updated row
func (r *commentRepo) UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx, updateCommentVotesQuery, inc, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, MapError(err, "update comment votes")
	}
	return comment, nil
}

// Delete removes a comment, reporting whether a row was deleted
func (r *commentRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, deleteCommentQuery, id)
	if err != nil {
		return false, MapError(err, "delete comment")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, MapError(err, "delete comment")
	}
	return affected > 0, nil
}
