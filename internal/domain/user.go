package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and act on the registry.
// Email is immutable after creation.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     *string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// ActorOf returns the Actor view of the user.
func (u *User) ActorOf() Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}
