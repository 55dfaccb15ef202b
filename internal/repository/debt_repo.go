package repository

import (
	"context"
	"fmt"

	"chatbot_mcp/internal/model"
)

// DebtRepository defines operations for debt data
type DebtRepository interface {
	Create(ctx context.Context, debt *model.Debt) error
	FindByUser(ctx context.Context, userID string) ([]model.Debt, error)
}

type debtRepository struct {
	db DBTX
}

// NewDebtRepository creates a new DebtRepository
func NewDebtRepository(db DBTX) DebtRepository {
	return &debtRepository{db: db}
}

// Create inserts a new debt into the database
func (r *debtRepository) Create(ctx context.Context, d *model.Debt) error {
	sql := `INSERT INTO debts (user_id, description, amount, due_date, paid_at, status)
            VALUES ($1, $2, $3::numeric, $4, $5, $6) RETURNING id::text, amount::text, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, d.UserID, d.Description, d.Amount, d.DueDate, d.PaidAt, d.Status).
		Scan(&d.ID, &d.Amount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// FindByUser retrieves the debts owned by a user, earliest due first
func (r *debtRepository) FindByUser(ctx context.Context, userID string) ([]model.Debt, error) {
	sql := `SELECT id::text, user_id::text, description, amount::text, due_date, paid_at, status::text, created_at, updated_at
            FROM debts WHERE user_id = $1 ORDER BY due_date, id`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts by user: %w", err)
	}
	defer rows.Close()

	debts := []model.Debt{}
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Description, &d.Amount, &d.DueDate,
			&d.PaidAt, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return debts, nil
}
