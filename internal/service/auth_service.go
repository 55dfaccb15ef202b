package service

import (
	"context"
	"errors"
	"fmt"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/repository"
	"chatbot_mcp/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, phone string) (*model.User, string, error)
	Profile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Login finds the user by exact phone match and issues a token for them
func (s *authService) Login(ctx context.Context, phone string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Profile loads the user a verified token was issued for.
// A subject without a matching row (or that is not a UUID) is ErrUserNotFound.
func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// findUser skips the query for ids the uuid column could never hold
func findUser(ctx context.Context, repo repository.UserRepository, userID string) (*model.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, nil
	}
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	return user, nil
}
