package service

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/news-forum-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// commentService implements CommentService
type commentService struct {
	comments repository.CommentRepository
	exists   repository.ExistenceChecker
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, exists repository.ExistenceChecker, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		exists:   exists,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Get returns a single comment
func (s *commentService) Get(ctx context.Context, id int) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound(apperr.MsgCommentNotFound)
	}
	return comment, nil
}

// ListByArticle returns an article's comments, newest first. The article
// existence check runs concurrently so a missing article is NotFound rather than [].
func (s *commentService) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	var (
		comments      []models.Comment
		articleExists bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID)
		return err
	})
	g.Go(func() error {
		var err error
		articleExists, err = s.exists.Exists(gctx, "articles", "article_id", articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !articleExists {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return comments, nil
}

// Create validates and inserts a comment. A missing article or unknown author
// is a client error: the existence check catches the former and the foreign key
// constraint backs up both.
func (s *commentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if err := validation.ValidateNewComment(comment); err != nil {
		return nil, err
	}

	var (
		created       *models.Comment
		articleExists bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		created, err = s.comments.Create(gctx, articleID, comment)
		return repository.MapError(err, "insert comment")
	})
	g.Go(func() error {
		var err error
		articleExists, err = s.exists.Exists(gctx, "articles", "article_id", articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !articleExists {
		return nil, apperr.BadRequest(fmt.Errorf("article %d does not exist", articleID))
	}

	s.log.Info().
		Int("comment_id", created.CommentID).
		Int("article_id", articleID).
		Str("author", created.Author).
		Msg("Comment created")
	return created, nil
}

// UpdateVotes adds inc to a comment's votes in a single statement
func (s *commentService) UpdateVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	comment, err := s.comments.UpdateVotes(ctx, id, inc)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound(apperr.MsgCommentNotFound)
	}

	s.log.Debug().Int("comment_id", id).Int("inc_votes", inc).Int("votes", comment.Votes).Msg("Comment votes updated")
	return comment, nil
}

// Delete removes a comment. The existence check and the DELETE run concurrently; the
// affected row count decides the outcome.
func (s *commentService) Delete(ctx context.Context, id int) error {
	var existed, deleted bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deleted, err = s.comments.Delete(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		existed, err = s.exists.Exists(gctx, "comments", "comment_id", id)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !deleted {
		if existed {
			s.log.Warn().Int("comment_id", id).Msg("Comment removed by a concurrent request")
		}
		return apperr.NotFound(apperr.MsgCommentNotFound)
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
