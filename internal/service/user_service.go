package service

import (
	"context"
	"fmt"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/repository"
)

// UserService exposes read-only user queries to the chatbot tools
type UserService interface {
	ListByStatus(ctx context.Context, status string) ([]model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListByStatus(ctx context.Context, status string) ([]model.User, error) {
	users, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByID returns nil without error when no such user exists
func (s *userService) FindByID(ctx context.Context, userID string) (*model.User, error) {
	return findUser(ctx, s.repo, userID)
}
