package application

import (
	"path"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	maxRemarkLen   = 2000
	maxRatingLen   = 50
	maxFilenameLen = 255
	maxPageSize    = 200
)

// CreateInput holds parameters for application creation. The type is not
// checked here: the rule engine reports an unknown type after the customer
// and reason checks.
type CreateInput struct {
	Type                 domain.ApplicationType
	CustomerID           uuid.UUID
	ReasonID             uuid.UUID
	LatestExternalRating *string
	Severity             *domain.Severity
	Remark               *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.ReasonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reason_id", Message: "required"})
	}
	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be HIGH, MEDIUM or LOW"})
	}
	if i.Remark != nil && utf8.RuneCountInString(*i.Remark) > maxRemarkLen {
		errs = append(errs, domain.FieldError{Field: "remark", Message: "too long"})
	}
	if i.LatestExternalRating != nil && utf8.RuneCountInString(*i.LatestExternalRating) > maxRatingLen {
		errs = append(errs, domain.FieldError{Field: "latest_external_rating", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput holds parameters for a review. Decision is checked by the
// state machine, not here, so that a terminal application reports
// ErrNotPending first.
type ReviewInput struct {
	ApplicationID uuid.UUID
	Decision      domain.ApplicationStatus
	Remark        *string
}

// Validate validates the review input.
func (i ReviewInput) Validate() error {
	if i.ApplicationID == uuid.Nil {
		return domain.NewValidationError("application_id", "required")
	}
	if i.Remark != nil && utf8.RuneCountInString(*i.Remark) > maxRemarkLen {
		return domain.NewValidationError("remark", "too long")
	}
	return nil
}

// ListInput holds filters for listing applications.
type ListInput struct {
	CustomerID   *uuid.UUID
	CustomerName *string
	Status       *domain.ApplicationStatus
	Type         *domain.ApplicationType
	Limit        int
	Offset       int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid type"})
	}
	if i.Limit < 0 || i.Limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// cleanFilename reduces a client-supplied name to a single safe path
// element.
func cleanFilename(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	base := path.Base(name)
	if base == "." || base == "/" || base == ".." || name == "" {
		return "", domain.NewValidationError("filename", "required")
	}
	if utf8.RuneCountInString(base) > maxFilenameLen {
		return "", domain.NewValidationError("filename", "too long")
	}
	return base, nil
}
