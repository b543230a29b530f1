package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
)

// Create registers a customer. Creation is idempotent by name: when a
// customer with the same name exists, the provided industry and region are
// applied to it and it is returned instead.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	actor, err := s.authorize(ctx, access.CustomerWrite)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := domain.NormalizeName(input.Name)

	var result *domain.Customer
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.customers.GetByName(ctx, name)
		switch {
		case err == nil:
			params := domain.CustomerUpdateParams{Industry: normalizeAttr(input.Industry), Region: normalizeAttr(input.Region)}
			result, err = s.customers.Update(ctx, existing.ID, params)
			if err != nil {
				return fmt.Errorf("update existing customer: %w", err)
			}
			return s.record(ctx, actor, domain.AuditActionUpdate, existing.ID, "idempotent create")
		case errors.Is(err, domain.ErrNotFound):
		default:
			return fmt.Errorf("get customer by name: %w", err)
		}

		result, err = s.customers.Create(ctx, &domain.Customer{
			ID:        uuid.New(),
			Name:      name,
			Industry:  domain.TrimOrNil(input.Industry),
			Region:    domain.TrimOrNil(input.Region),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return s.record(ctx, actor, domain.AuditActionCreate, result.ID, "")
	})
	if err != nil {
		return nil, fmt.Errorf("customer.Create: %w", err)
	}

	s.log.InfoContext(ctx, "customer saved",
		slog.String("customer_id", result.ID.String()),
		slog.String("name", result.Name),
	)
	return result, nil
}

// List returns customers ordered by name, optionally filtered by a name
// fragment.
func (s *Service) List(ctx context.Context, nameFilter *string) ([]domain.Customer, error) {
	if _, err := s.authorize(ctx, access.CustomerRead); err != nil {
		return nil, err
	}

	customers, err := s.customers.List(ctx, domain.TrimOrNil(nameFilter))
	if err != nil {
		return nil, fmt.Errorf("customer.List: %w", err)
	}
	return customers, nil
}

// Get returns a single customer.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if _, err := s.authorize(ctx, access.CustomerRead); err != nil {
		return nil, err
	}

	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer.Get: %w", err)
	}
	return c, nil
}

// Update changes customer attributes. Renames are applied for Admins only
// and are silently dropped for other roles. The default flag may only be set
// while no application references the customer; afterwards reviews own it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Customer, error) {
	actor, err := s.authorize(ctx, access.CustomerWrite)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CustomerUpdateParams{
		Industry:  normalizeAttr(input.Industry),
		Region:    normalizeAttr(input.Region),
		IsDefault: input.IsDefault,
	}
	if input.Name != nil && actor.Role.IsAdmin() {
		name := domain.NormalizeName(*input.Name)
		params.Name = &name
	}

	var updated *domain.Customer
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.customers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if params.IsDefault != nil && *params.IsDefault != current.IsDefault {
			has, err := s.customers.HasApplications(ctx, id)
			if err != nil {
				return fmt.Errorf("check applications: %w", err)
			}
			if has {
				return domain.NewValidationError("is_default", "owned by application reviews once applications exist")
			}
		}

		if params.Name != nil && *params.Name != current.Name {
			other, err := s.customers.GetByName(ctx, *params.Name)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("check name: %w", err)
			}
			if other != nil && other.ID != id {
				return fmt.Errorf("customer name %q: %w", *params.Name, domain.ErrAlreadyExists)
			}
		}

		updated, err = s.customers.Update(ctx, id, params)
		if err != nil {
			return err
		}
		return s.record(ctx, actor, domain.AuditActionUpdate, id, "")
	})
	if err != nil {
		return nil, fmt.Errorf("customer.Update: %w", err)
	}

	s.log.InfoContext(ctx, "customer updated", slog.String("customer_id", id.String()))
	return updated, nil
}

// Delete removes a customer that no application references.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.authorize(ctx, access.CustomerDelete)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.customers.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, actor, domain.AuditActionDelete, id, "")
	})
	if err != nil {
		return fmt.Errorf("customer.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "customer deleted", slog.String("customer_id", id.String()))
	return nil
}
