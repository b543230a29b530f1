package application

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/adapter/kafka"
	"github.com/heartmarshall/default-registry/internal/adapter/storage"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// applicationRepo defines the application repository interface needed by the service.
type applicationRepo interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	SaveReview(ctx context.Context, a *domain.Application) error
	CreateAttachment(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, applicationID uuid.UUID) ([]domain.Attachment, error)
	GetAttachmentByFilename(ctx context.Context, applicationID uuid.UUID, filename string) (*domain.Attachment, error)
	CountAttachments(ctx context.Context, applicationID uuid.UUID) (int, error)
}

// customerRepo defines the customer repository interface needed by the service.
type customerRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	SetDefault(ctx context.Context, id uuid.UUID, isDefault bool) error
}

// reasonRepo defines the reason repository interface needed by the service.
type reasonRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reason, error)
}

// notificationSink receives the applicant notification of a review.
type notificationSink interface {
	Enqueue(ctx context.Context, userID uuid.UUID, content string) (*domain.Notification, error)
}

// auditSink appends audit records.
type auditSink interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

// fileStore stores attachment content.
type fileStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (storage.Object, error)
	Presign(ctx context.Context, key string) (string, bool, error)
}

// eventPublisher fans review events out after commit.
type eventPublisher interface {
	PublishReview(ctx context.Context, ev kafka.ReviewEvent) error
}

// recorder counts workflow events.
type recorder interface {
	ApplicationCreated(typ string)
	Reviewed(typ, decision string)
	EventFailed()
}

// authorizer answers access control questions.
type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the collaborators of the application service.
type Deps struct {
	Applications  applicationRepo
	Customers     customerRepo
	Reasons       reasonRepo
	Notifications notificationSink
	Audit         auditSink
	Files         fileStore
	Events        eventPublisher
	Metrics       recorder
	Access        authorizer
	Tx            txManager
}

// Service implements the application workflow: creation under the rule
// engine, the review state machine and attachment handling.
type Service struct {
	log    *slog.Logger
	apps   applicationRepo
	custs  customerRepo
	rsns   reasonRepo
	notify notificationSink
	audit  auditSink
	files  fileStore
	events eventPublisher
	stats  recorder
	access authorizer
	tx     txManager
	now    func() time.Time
}

// NewService creates a new application service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:    logger.With("service", "application"),
		apps:   deps.Applications,
		custs:  deps.Customers,
		rsns:   deps.Reasons,
		notify: deps.Notifications,
		audit:  deps.Audit,
		files:  deps.Files,
		events: deps.Events,
		stats:  deps.Metrics,
		access: deps.Access,
		tx:     deps.Tx,
		now:    time.Now,
	}
}

// authorize resolves the caller and checks op against the access table.
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

func strPtr(s string) *string { return &s }
