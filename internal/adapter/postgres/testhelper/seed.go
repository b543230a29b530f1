package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/default-registry/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active user with the given role. The password hash is
// a placeholder and cannot be used to log in.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.IsActive, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// CustomerOption customizes a seeded customer.
type CustomerOption func(*domain.Customer)

// WithIndustry sets the customer's industry.
func WithIndustry(industry string) CustomerOption {
	return func(c *domain.Customer) { c.Industry = &industry }
}

// WithRegion sets the customer's region.
func WithRegion(region string) CustomerOption {
	return func(c *domain.Customer) { c.Region = &region }
}

// AsDefault marks the customer as defaulted.
func AsDefault() CustomerOption {
	return func(c *domain.Customer) { c.IsDefault = true }
}

// SeedCustomer creates a customer with a unique name.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, opts ...CustomerOption) domain.Customer {
	t.Helper()

	c := domain.Customer{
		ID:        uuid.New(),
		Name:      "Customer " + uniqueSuffix(),
		CreatedAt: now(),
	}
	for _, o := range opts {
		o(&c)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, name, industry, region, is_default, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Industry, c.Region, c.IsDefault, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}

	return c
}

// SeedReason creates an enabled or disabled reason of the given type.
func SeedReason(t *testing.T, pool *pgxpool.Pool, typ domain.ApplicationType, enabled bool) domain.Reason {
	t.Helper()

	r := domain.Reason{
		ID:          uuid.New(),
		Type:        typ,
		Description: "Reason " + uniqueSuffix(),
		Enabled:     enabled,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reasons (id, type, description, enabled, sort_order) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, string(r.Type), r.Description, r.Enabled, r.SortOrder,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReason: %v", err)
	}

	return r
}

// SeedApplication creates a PENDING application.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, typ domain.ApplicationType, customerID, reasonID, createdBy uuid.UUID) domain.Application {
	t.Helper()

	a := domain.Application{
		ID:         uuid.New(),
		Type:       typ,
		CustomerID: customerID,
		ReasonID:   reasonID,
		Status:     domain.ApplicationStatusPending,
		CreatedBy:  createdBy,
		CreatedAt:  now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO applications (id, type, customer_id, reason_id, status, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, string(a.Type), a.CustomerID, a.ReasonID, string(a.Status), a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return a
}

// SeedApproval marks an application APPROVED at the given time without
// touching the customer.
func SeedApproval(t *testing.T, pool *pgxpool.Pool, appID, reviewer uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE applications SET status = 'APPROVED', reviewed_by = $2, reviewed_at = $3 WHERE id = $1`,
		appID, reviewer, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApproval: %v", err)
	}
}

// SeedAttachment records attachment metadata for an application.
func SeedAttachment(t *testing.T, pool *pgxpool.Pool, appID uuid.UUID) domain.Attachment {
	t.Helper()

	name := "evidence-" + uniqueSuffix() + ".pdf"
	a := domain.Attachment{
		ID:            uuid.New(),
		ApplicationID: appID,
		Filename:      name,
		URL:           "/files/applications/" + appID.String() + "/" + name,
		StorageKey:    "applications/" + appID.String() + "/" + name,
		ContentType:   "application/pdf",
		Size:          42,
		UploadedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO application_attachments (id, application_id, filename, url, storage_key, content_type, size, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.ApplicationID, a.Filename, a.URL, a.StorageKey, a.ContentType, a.Size, a.UploadedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttachment: %v", err)
	}

	return a
}
