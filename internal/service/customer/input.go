package customer

import (
	"unicode/utf8"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	maxNameLen      = 255
	maxAttributeLen = 100
)

// CreateInput holds parameters for customer creation.
// New customers always start with IsDefault false; only reviews set it.
type CreateInput struct {
	Name     string
	Industry *string
	Region   *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = appendAttrErr(errs, "industry", i.Industry)
	errs = appendAttrErr(errs, "region", i.Region)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds optional fields for a customer update. A nil field is
// left unchanged; an empty Industry or Region clears it.
type UpdateInput struct {
	Name      *string
	Industry  *string
	Region    *string
	IsDefault *bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if utf8.RuneCountInString(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	errs = appendAttrErr(errs, "industry", i.Industry)
	errs = appendAttrErr(errs, "region", i.Region)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendAttrErr(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > maxAttributeLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// normalizeAttr trims an optional attribute. An explicit empty value is kept
// so the repository can clear the column.
func normalizeAttr(v *string) *string {
	if v == nil {
		return nil
	}
	n := domain.NormalizeName(*v)
	return &n
}
