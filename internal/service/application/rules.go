package application

import (
	"fmt"

	"github.com/heartmarshall/default-registry/internal/domain"
)

// Validate checks whether an application of type typ may be filed for
// customer with reason. A nil customer or reason means it does not exist.
// Checks run in a fixed order and the first failure is returned.
func Validate(customer *domain.Customer, reason *domain.Reason, typ domain.ApplicationType) error {
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	if reason == nil || !reason.Enabled {
		return domain.ErrInvalidReason
	}

	switch typ {
	case domain.ApplicationTypeDefault:
		if customer.IsDefault {
			return domain.ErrCustomerAlreadyDefault
		}
	case domain.ApplicationTypeRebirth:
		if !customer.IsDefault {
			return domain.ErrCustomerNotDefault
		}
	default:
		return fmt.Errorf("type %q: %w", typ, domain.ErrInvalidApplicationType)
	}

	return nil
}
