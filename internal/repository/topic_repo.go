package repository

import (
	"context"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

const listTopicsQuery = `SELECT slug, description FROM topics ORDER BY slug`

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, listTopicsQuery)
	if err != nil {
		return nil, MapError(err, "list topics")
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, MapError(err, "scan topic")
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "list topics")
	}
	return topics, nil
}
