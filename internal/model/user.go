package model

import "time"

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a chatbot customer
type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	EmailVerified *time.Time `json:"emailVerified"`
	PasswordHash  *string    `json:"-"` // Do not expose password hash in JSON responses
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FirstName returns the first word of the display name
func (u *User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' || r == '\t' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// PhoneOrEmpty dereferences the optional phone
func (u *User) PhoneOrEmpty() string {
	if u.Phone == nil {
		return ""
	}
	return *u.Phone
}
