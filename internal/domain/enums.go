package domain

// Role is the closed set of authorization levels a user may hold.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleReviewer Role = "Reviewer"
	RoleOperator Role = "Operator"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReviewer, RoleOperator:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ApplicationType is the kind of status change an application requests.
// Reasons share the same enumeration.
type ApplicationType string

const (
	ApplicationTypeDefault ApplicationType = "DEFAULT"
	ApplicationTypeRebirth ApplicationType = "REBIRTH"
)

func (t ApplicationType) String() string { return string(t) }

func (t ApplicationType) IsValid() bool {
	switch t {
	case ApplicationTypeDefault, ApplicationTypeRebirth:
		return true
	}
	return false
}

// ApplicationStatus is a state of the review state machine.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// Severity grades the seriousness of a default application.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// TargetType identifies the kind of entity an audit entry refers to.
type TargetType string

const (
	TargetTypeApplication TargetType = "Application"
	TargetTypeAttachment  TargetType = "ApplicationAttachment"
	TargetTypeCustomer    TargetType = "Customer"
	TargetTypeReason      TargetType = "Reason"
	TargetTypeUser        TargetType = "User"
	TargetTypeHTTP        TargetType = "HTTP"
)

func (t TargetType) String() string { return string(t) }

// AuditAction represents the kind of event recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionReview AuditAction = "REVIEW"
	AuditActionUpload AuditAction = "UPLOAD"
	AuditActionLogin  AuditAction = "LOGIN"
)

func (a AuditAction) String() string { return string(a) }

// StatsDimension is the grouping column of the reporting projection.
type StatsDimension string

const (
	StatsDimensionIndustry StatsDimension = "industry"
	StatsDimensionRegion   StatsDimension = "region"
)

func (d StatsDimension) IsValid() bool {
	return d == StatsDimensionIndustry || d == StatsDimensionRegion
}
