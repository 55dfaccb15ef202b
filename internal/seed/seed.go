// Package seed resets the store to a small demo data set.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/repository"
	"chatbot_mcp/internal/utils"
)

// DemoPhone logs in as the demo user
const DemoPhone = "5555123456789"

const demoPassword = "123456"

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Heitor"}
	lastNames  = []string{"Almeida", "Barbosa", "Costa", "Duarte", "Esteves", "Ferraz", "Gomes", "Hora"}
	products   = []string{
		"Ergonomic Steel Chair", "Wireless Headphones", "Electricity Bill", "Internet Plan",
		"Gym Membership", "Laptop Installment", "Car Insurance", "Water Bill",
	}
	debtStatuses = []string{model.DebtStatusPending, model.DebtStatusPaid, model.DebtStatusOverdue}
)

// Result counts what a run created
type Result struct {
	Deleted int64
	Users   []model.User
	Debts   int
}

// Seeder writes demo users and their debts
type Seeder struct {
	users repository.UserRepository
	debts repository.DebtRepository
	rng   *rand.Rand
	now   func() time.Time
}

// New creates a Seeder. rng drives every random choice; nil seeds from the clock.
func New(users repository.UserRepository, debts repository.DebtRepository, rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Seeder{users: users, debts: debts, rng: rng, now: time.Now}
}

// Run deletes every user (their debts cascade) and inserts the demo set:
// John Doe, active, owning DemoPhone, plus two inactive users. Each user gets
// one to three debts.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	deleted, err := s.users.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	phone := DemoPhone
	users := []model.User{
		{Name: "John Doe", Email: "john@acme.com", Phone: &phone, Status: model.UserStatusActive},
		s.randomUser(),
		s.randomUser(),
	}

	res := &Result{Deleted: deleted}
	for i := range users {
		users[i].PasswordHash = &hash
		if err := s.users.Create(ctx, &users[i]); err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", users[i].Email, err)
		}

		n := 1 + s.rng.IntN(3)
		for j := 0; j < n; j++ {
			debt := s.randomDebt(users[i].ID)
			if err := s.debts.Create(ctx, &debt); err != nil {
				return nil, fmt.Errorf("failed to create debt for %s: %w", users[i].Email, err)
			}
			res.Debts++
		}
	}
	res.Users = users
	return res, nil
}

func (s *Seeder) randomUser() model.User {
	first := firstNames[s.rng.IntN(len(firstNames))]
	last := lastNames[s.rng.IntN(len(lastNames))]
	return model.User{
		Name:   first + " " + last,
		Email:  fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), s.rng.IntN(1000)),
		Status: model.UserStatusInactive,
	}
}

func (s *Seeder) randomDebt(userID string) model.Debt {
	now := s.now()
	cents := 5000 + s.rng.IntN(500000-5000+1)

	d := model.Debt{
		UserID:      userID,
		Description: products[s.rng.IntN(len(products))],
		Amount:      fmt.Sprintf("%d.%02d", cents/100, cents%100),
		DueDate:     now.Add(time.Duration(1+s.rng.Int64N(int64(30*24*time.Hour)))),
		Status:      debtStatuses[s.rng.IntN(len(debtStatuses))],
	}
	// 40% were already paid in the last five days
	if s.rng.Float64() < 0.4 {
		paid := now.Add(-time.Duration(s.rng.Int64N(int64(5 * 24 * time.Hour))))
		d.PaidAt = &paid
	}
	return d
}
