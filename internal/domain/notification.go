package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message for a single user, created as a side effect of
// a review.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	IsRead    bool
	CreatedAt time.Time
}
