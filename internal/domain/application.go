package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Application is a request to mark a customer as defaulted (DEFAULT) or as
// recovered (REBIRTH). It moves through exactly one review transition.
type Application struct {
	ID                   uuid.UUID
	Type                 ApplicationType
	CustomerID           uuid.UUID
	ReasonID             uuid.UUID
	LatestExternalRating *string
	Severity             *Severity
	Remark               *string
	Status               ApplicationStatus
	CreatedBy            uuid.UUID
	ReviewedBy           *uuid.UUID
	ReviewRemark         *string
	CreatedAt            time.Time
	ReviewedAt           *time.Time
}

// Attachment is evidence uploaded for an application.
type Attachment struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Filename      string
	URL           string
	StorageKey    string
	ContentType   string
	Size          int64
	UploadedAt    time.Time
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	CustomerID   *uuid.UUID
	CustomerName *string
	Status       *ApplicationStatus
	Type         *ApplicationType
	Limit        int
	Offset       int
}

// transitions lists the statuses reachable from each status.
// Terminal statuses have no entry.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending: {ApplicationStatusApproved, ApplicationStatusRejected},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to ApplicationStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckReviewable validates the review preconditions that depend only on
// the application itself. The status check precedes the decision check so
// that any review of a terminal application reports ErrNotPending.
func (a *Application) CheckReviewable(decision ApplicationStatus) error {
	if a.Status != ApplicationStatusPending {
		return fmt.Errorf("application %s is %s: %w", a.ID, a.Status, ErrNotPending)
	}
	if !CanTransition(a.Status, decision) {
		return fmt.Errorf("decision %q: %w", decision, ErrInvalidDecision)
	}
	return nil
}

// RequiresEvidence reports whether the decision needs at least one
// attachment. Only approving a DEFAULT application does.
func (a *Application) RequiresEvidence(decision ApplicationStatus) bool {
	return decision == ApplicationStatusApproved && a.Type == ApplicationTypeDefault
}

// ApplyReview moves the application into its terminal state.
// Callers must run CheckReviewable first.
func (a *Application) ApplyReview(decision ApplicationStatus, reviewer uuid.UUID, remark *string, at time.Time) {
	a.Status = decision
	a.ReviewedBy = &reviewer
	a.ReviewRemark = remark
	a.ReviewedAt = &at
}

// DefaultFlagAfter returns the customer default flag implied by the
// decision, or nil when the customer must be left untouched.
func (a *Application) DefaultFlagAfter(decision ApplicationStatus) *bool {
	if decision != ApplicationStatusApproved {
		return nil
	}
	var flag bool
	switch a.Type {
	case ApplicationTypeDefault:
		flag = true
	case ApplicationTypeRebirth:
		flag = false
	default:
		return nil
	}
	return &flag
}

// ReviewNotice is the notification text sent to the applicant.
func (a *Application) ReviewNotice() string {
	return fmt.Sprintf("Application #%s %s", a.ID, a.Status)
}
