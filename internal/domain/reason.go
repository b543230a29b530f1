package domain

import "github.com/google/uuid"

// Reason is a catalogue entry justifying a DEFAULT or REBIRTH application.
type Reason struct {
	ID          uuid.UUID
	Type        ApplicationType
	Description string
	Enabled     bool
	SortOrder   int
}

// ReasonFilter narrows reason listings.
type ReasonFilter struct {
	Type        *ApplicationType
	EnabledOnly bool
}
