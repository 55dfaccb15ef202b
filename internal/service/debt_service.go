package service

import (
	"context"
	"fmt"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/repository"

	"github.com/google/uuid"
)

// DebtService defines operations for debts
type DebtService interface {
	ListByUser(ctx context.Context, userID string) ([]model.Debt, error)
}

type debtService struct {
	repo repository.DebtRepository
}

// NewDebtService creates a new DebtService
func NewDebtService(repo repository.DebtRepository) DebtService {
	return &debtService{repo: repo}
}

// ListByUser returns the user's debts; an unknown owner simply has none
func (s *debtService) ListByUser(ctx context.Context, userID string) ([]model.Debt, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return []model.Debt{}, nil
	}
	debts, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}
