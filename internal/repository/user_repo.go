package repository

import (
	"context"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

const listUsersQuery = `SELECT username, name, avatar_url FROM users ORDER BY username`

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// List returns every user
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, MapError(err, "list users")
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, MapError(err, "scan user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "list users")
	}
	return users, nil
}
