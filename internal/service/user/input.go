package user

import (
	"net/mail"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt ignores anything longer
	maxFullNameLen = 255
	maxListLimit   = 200
)

// CreateUserInput holds the fields of a new account.
type CreateUserInput struct {
	Email    string
	Password string
	FullName *string
	Role     *domain.Role
}

// Validate validates the create input. Email is expected to be normalized.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	switch {
	case len(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}

	if i.FullName != nil && len(*i.FullName) > maxFullNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "must be at most 255 characters"})
	}

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be Admin, Reviewer or Operator"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePage(limit, offset int) error {
	var errs []domain.FieldError
	if limit < 0 || limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
