package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.Role) error
}

// auditSink appends audit records.
type auditSink interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

// passwordHasher produces password hashes for storage.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// authorizer answers access control questions.
type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account administration.
type Service struct {
	log       *slog.Logger
	users     userRepo
	audit     auditSink
	passwords passwordHasher
	access    authorizer
	tx        txManager
	now       func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditSink,
	passwords passwordHasher,
	access authorizer,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		audit:     audit,
		passwords: passwords,
		access:    access,
		tx:        tx,
		now:       time.Now,
	}
}

func (s *Service) requireAdmin(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if err := s.access.Check(actor, access.UserManage); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

func (s *Service) record(ctx context.Context, actor *uuid.UUID, action domain.AuditAction, target uuid.UUID, details string) error {
	id := target.String()
	entry := domain.AuditLog{
		UserID:     actor,
		Action:     action,
		TargetType: domain.TargetTypeUser,
		TargetID:   &id,
		IP:         ctxutil.ClientIPFromCtx(ctx),
	}
	if details != "" {
		entry.Details = &details
	}
	return s.audit.Log(ctx, entry)
}
