package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FullName  *string     `json:"full_name"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  *string   `json:"industry"`
	Region    *string   `json:"region"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Region:    c.Region,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
	}
}

type reasonResponse struct {
	ID          uuid.UUID              `json:"id"`
	Type        domain.ApplicationType `json:"type"`
	Description string                 `json:"description"`
	Enabled     bool                   `json:"enabled"`
	SortOrder   int                    `json:"sort_order"`
}

func toReasonResponse(r *domain.Reason) reasonResponse {
	return reasonResponse{
		ID:          r.ID,
		Type:        r.Type,
		Description: r.Description,
		Enabled:     r.Enabled,
		SortOrder:   r.SortOrder,
	}
}

type applicationResponse struct {
	ID                   uuid.UUID                `json:"id"`
	Type                 domain.ApplicationType   `json:"type"`
	CustomerID           uuid.UUID                `json:"customer_id"`
	CustomerName         *string                  `json:"customer_name,omitempty"`
	ReasonID             uuid.UUID                `json:"reason_id"`
	ReasonDescription    *string                  `json:"reason_description,omitempty"`
	LatestExternalRating *string                  `json:"latest_external_rating"`
	Severity             *domain.Severity         `json:"severity"`
	Remark               *string                  `json:"remark"`
	Status               domain.ApplicationStatus `json:"status"`
	CreatedBy            uuid.UUID                `json:"created_by"`
	ReviewedBy           *uuid.UUID               `json:"reviewed_by"`
	ReviewRemark         *string                  `json:"review_remark"`
	CreatedAt            time.Time                `json:"created_at"`
	ReviewedAt           *time.Time               `json:"reviewed_at"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:                   a.ID,
		Type:                 a.Type,
		CustomerID:           a.CustomerID,
		ReasonID:             a.ReasonID,
		LatestExternalRating: a.LatestExternalRating,
		Severity:             a.Severity,
		Remark:               a.Remark,
		Status:               a.Status,
		CreatedBy:            a.CreatedBy,
		ReviewedBy:           a.ReviewedBy,
		ReviewRemark:         a.ReviewRemark,
		CreatedAt:            a.CreatedAt,
		ReviewedAt:           a.ReviewedAt,
	}
}

type attachmentResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Filename      string    `json:"filename"`
	URL           string    `json:"url"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

func toAttachmentResponse(a *domain.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:            a.ID,
		ApplicationID: a.ApplicationID,
		Filename:      a.Filename,
		URL:           a.URL,
		ContentType:   a.ContentType,
		Size:          a.Size,
		UploadedAt:    a.UploadedAt,
	}
}

type notificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{ID: n.ID, Content: n.Content, IsRead: n.IsRead, CreatedAt: n.CreatedAt}
}

type auditLogResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     *uuid.UUID         `json:"user_id"`
	Action     domain.AuditAction `json:"action"`
	TargetType domain.TargetType  `json:"target_type"`
	TargetID   *string            `json:"target_id"`
	Details    *string            `json:"details"`
	IP         *string            `json:"ip"`
	CreatedAt  time.Time          `json:"created_at"`
}

func toAuditLogResponse(l *domain.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     l.Action,
		TargetType: l.TargetType,
		TargetID:   l.TargetID,
		Details:    l.Details,
		IP:         l.IP,
		CreatedAt:  l.CreatedAt,
	}
}

// mapSlice converts a slice of entities into response DTOs. The result is
// never nil so empty lists encode as [].
func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
