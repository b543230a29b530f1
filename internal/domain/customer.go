package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a corporate counterparty. IsDefault is driven by approved
// applications once any application exists for the customer.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Industry  *string
	Region    *string
	IsDefault bool
	CreatedAt time.Time
}

// CustomerUpdateParams holds optional fields for a partial customer update.
// A nil field is left unchanged.
type CustomerUpdateParams struct {
	Name      *string
	Industry  *string
	Region    *string
	IsDefault *bool
}
