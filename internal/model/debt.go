package model

import "time"

const (
	DebtStatusPending = "pending"
	DebtStatusPaid    = "paid"
	DebtStatusOverdue = "overdue"
)

// Debt is an amount owed by a user
type Debt struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Description string     `json:"description"`
	Amount      string     `json:"amount"` // numeric(12,2) kept as its decimal text
	DueDate     time.Time  `json:"dueDate"`
	PaidAt      *time.Time `json:"paidAt"` // nil while unpaid
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

