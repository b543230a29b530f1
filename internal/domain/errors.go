package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Business-rule violations raised by the application workflow.
var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrInvalidReason          = errors.New("invalid reason")
	ErrInvalidApplicationType = errors.New("invalid application type")
	ErrCustomerAlreadyDefault = errors.New("customer already default")
	ErrCustomerNotDefault     = errors.New("customer is not default")
	ErrNotPending             = errors.New("not pending")
	ErrInvalidDecision        = errors.New("invalid decision")
	ErrAttachmentRequired     = errors.New("attachment required")
)

// ErrSerializationConflict is returned when the database aborted a unit of
// work because of a concurrent writer. It is the only error a caller may
// retry automatically.
var ErrSerializationConflict = errors.New("serialization conflict")

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Kind classifies an error independently of any transport.
type Kind string

const (
	KindInternal               Kind = "INTERNAL"
	KindNotFound               Kind = "NOT_FOUND"
	KindForbidden              Kind = "FORBIDDEN"
	KindUnauthorized           Kind = "UNAUTHORIZED"
	KindValidation             Kind = "VALIDATION"
	KindAlreadyExists          Kind = "ALREADY_EXISTS"
	KindConflict               Kind = "CONFLICT"
	KindCustomerNotFound       Kind = "CUSTOMER_NOT_FOUND"
	KindInvalidReason          Kind = "INVALID_REASON"
	KindInvalidApplicationType Kind = "INVALID_APPLICATION_TYPE"
	KindCustomerAlreadyDefault Kind = "CUSTOMER_ALREADY_DEFAULT"
	KindCustomerNotDefault     Kind = "CUSTOMER_NOT_DEFAULT"
	KindNotPending             Kind = "NOT_PENDING"
	KindInvalidDecision        Kind = "INVALID_DECISION"
	KindAttachmentRequired     Kind = "ATTACHMENT_REQUIRED"
	KindSerializationConflict  Kind = "SERIALIZATION_CONFLICT"
)

// kindTable is ordered: rule violations are checked before the generic
// sentinels they may be wrapped together with.
var kindTable = []struct {
	err  error
	kind Kind
}{
	{ErrSerializationConflict, KindSerializationConflict},
	{ErrCustomerNotFound, KindCustomerNotFound},
	{ErrInvalidReason, KindInvalidReason},
	{ErrInvalidApplicationType, KindInvalidApplicationType},
	{ErrCustomerAlreadyDefault, KindCustomerAlreadyDefault},
	{ErrCustomerNotDefault, KindCustomerNotDefault},
	{ErrNotPending, KindNotPending},
	{ErrInvalidDecision, KindInvalidDecision},
	{ErrAttachmentRequired, KindAttachmentRequired},
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrUnauthorized, KindUnauthorized},
	{ErrValidation, KindValidation},
	{ErrAlreadyExists, KindAlreadyExists},
	{ErrConflict, KindConflict},
}

// KindOf returns the Kind of err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsRuleViolation reports whether the kind is a client-correctable
// business-rule failure.
func (k Kind) IsRuleViolation() bool {
	switch k {
	case KindCustomerNotFound, KindInvalidReason, KindInvalidApplicationType,
		KindCustomerAlreadyDefault, KindCustomerNotDefault, KindNotPending,
		KindInvalidDecision, KindAttachmentRequired:
		return true
	}
	return false
}

// Retryable reports whether an automatic retry by the caller is allowed.
func (k Kind) Retryable() bool {
	return k == KindSerializationConflict
}
