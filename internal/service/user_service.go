package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService implements UserService
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) *userService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
