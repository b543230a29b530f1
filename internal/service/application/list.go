package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const defaultPageSize = 50

// List returns applications matching the filters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Application, error) {
	if _, err := s.authorize(ctx, access.ApplicationRead); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	apps, err := s.apps.List(ctx, domain.ApplicationFilter{
		CustomerID:   input.CustomerID,
		CustomerName: domain.TrimOrNil(input.CustomerName),
		Status:       input.Status,
		Type:         input.Type,
		Limit:        limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("application.List: %w", err)
	}
	return apps, nil
}

// Get returns a single application.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if _, err := s.authorize(ctx, access.ApplicationRead); err != nil {
		return nil, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("application.Get: %w", err)
	}
	return app, nil
}
