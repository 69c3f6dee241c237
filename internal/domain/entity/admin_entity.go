package entity

import "time"

// Admin is the aggregate root for the admin account domain.
// Password holds a bcrypt hash, never the plain text.
type Admin struct {
	ID         string
	Name       string
	Email      string
	Password   string
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
