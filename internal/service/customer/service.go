package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// customerRepo defines the customer repository interface needed by the service.
type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
	List(ctx context.Context, nameFilter *string) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	HasApplications(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// auditSink appends audit records.
type auditSink interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

// authorizer answers access control questions.
type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements customer maintenance.
type Service struct {
	log       *slog.Logger
	customers customerRepo
	audit     auditSink
	access    authorizer
	tx        txManager
}

// NewService creates a new customer service instance.
func NewService(logger *slog.Logger, customers customerRepo, audit auditSink, access authorizer, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "customer"),
		customers: customers,
		audit:     audit,
		access:    access,
		tx:        tx,
	}
}

func (s *Service) authorize(ctx context.Context, op access.Operation) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if err := s.access.Check(actor, op); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

func (s *Service) record(ctx context.Context, actor domain.Actor, action domain.AuditAction, id uuid.UUID, details string) error {
	target := id.String()
	entry := domain.AuditLog{
		UserID:     &actor.UserID,
		Action:     action,
		TargetType: domain.TargetTypeCustomer,
		TargetID:   &target,
		IP:         ctxutil.ClientIPFromCtx(ctx),
	}
	if details != "" {
		entry.Details = &details
	}
	return s.audit.Log(ctx, entry)
}
