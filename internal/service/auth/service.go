package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// auditSink appends audit records.
type auditSink interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(actor domain.Actor) (string, time.Time, error)
	ValidateAccessToken(token string) (domain.Actor, error)
}

// passwordVerifier compares a password against its stored hash.
type passwordVerifier interface {
	Verify(hash, password string) (bool, error)
}

// Service implements login and token validation.
type Service struct {
	log       *slog.Logger
	users     userRepo
	audit     auditSink
	jwt       jwtManager
	passwords passwordVerifier
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditSink,
	jwt jwtManager,
	passwords passwordVerifier,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		audit:     audit,
		jwt:       jwt,
		passwords: passwords,
	}
}
