package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of an action. UserID is nil when the
// actor is unknown (system or anonymous request).
type AuditLog struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	Action     AuditAction
	TargetType TargetType
	TargetID   *string
	Details    *string
	IP         *string
	CreatedAt  time.Time
}

// AuditFilter narrows audit log listings. Zero values mean "no filter".
type AuditFilter struct {
	UserID     *uuid.UUID
	Action     *AuditAction
	TargetType *TargetType
	Start      *time.Time
	End        *time.Time
	Limit      int
}
