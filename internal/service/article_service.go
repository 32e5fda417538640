package service

import (
	"context"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// articleService implements ArticleService
type articleService struct {
	articles repository.ArticleRepository
	exists   repository.ExistenceChecker
	log      zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, exists repository.ExistenceChecker, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		exists:   exists,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// Get returns a single article with its comment count
func (s *articleService) Get(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return article, nil
}

// List returns article summaries. When a topic filter is set, the topic's
// existence is checked alongside the listing so an unknown topic reports
// NotFound while a known topic without articles yields an empty list.
func (s *articleService) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	if filter.Topic == "" {
		return s.articles.List(ctx, filter)
	}

	var (
		articles    []models.ArticleSummary
		topicExists bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		topicExists, err = s.exists.Exists(gctx, "topics", "slug", filter.Topic)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !topicExists {
		return nil, apperr.NotFound(apperr.MsgTopicNotFound)
	}
	return articles, nil
}

// UpdateVotes adds inc to an article's votes in a single statement
func (s *articleService) UpdateVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	article, err := s.articles.UpdateVotes(ctx, id, inc)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}

	s.log.Debug().Int("article_id", id).Int("inc_votes", inc).Int("votes", article.Votes).Msg("Article votes updated")
	return article, nil
}
