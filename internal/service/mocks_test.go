package service

import (
	"context"

	"chatbot_mcp/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByStatus(ctx context.Context, status string) ([]model.User, error) {
	args := m.Called(ctx, status)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockDebtRepo struct {
	mock.Mock
}

func (m *mockDebtRepo) Create(ctx context.Context, debt *model.Debt) error {
	return m.Called(ctx, debt).Error(0)
}

func (m *mockDebtRepo) FindByUser(ctx context.Context, userID string) ([]model.Debt, error) {
	args := m.Called(ctx, userID)
	debts, _ := args.Get(0).([]model.Debt)
	return debts, args.Error(1)
}
