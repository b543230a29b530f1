package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/adapter/kafka"
	"github.com/heartmarshall/default-registry/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/application"
	auditrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/audit"
	customerrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/customer"
	notificationrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/notification"
	reasonrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/reason"
	statsrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/stats"
	userrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/user"
	"github.com/heartmarshall/default-registry/internal/adapter/storage"
	"github.com/heartmarshall/default-registry/internal/auth"
	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/metrics"
	"github.com/heartmarshall/default-registry/internal/service/application"
	auditsvc "github.com/heartmarshall/default-registry/internal/service/audit"
	authsvc "github.com/heartmarshall/default-registry/internal/service/auth"
	"github.com/heartmarshall/default-registry/internal/service/bootstrap"
	"github.com/heartmarshall/default-registry/internal/service/customer"
	"github.com/heartmarshall/default-registry/internal/service/notification"
	"github.com/heartmarshall/default-registry/internal/service/reason"
	"github.com/heartmarshall/default-registry/internal/service/stats"
	"github.com/heartmarshall/default-registry/internal/service/user"
)

// Repos holds the PostgreSQL repositories.
type Repos struct {
	Users         *userrepo.Repo
	Customers     *customerrepo.Repo
	Reasons       *reasonrepo.Repo
	Applications  *applicationrepo.Repo
	Notifications *notificationrepo.Repo
	Audit         *auditrepo.Repo
	Stats         *statsrepo.Repo
}

// NewRepos creates every repository on top of pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Users:         userrepo.New(pool),
		Customers:     customerrepo.New(pool),
		Reasons:       reasonrepo.New(pool),
		Applications:  applicationrepo.New(pool),
		Notifications: notificationrepo.New(pool),
		Audit:         auditrepo.New(pool),
		Stats:         statsrepo.New(pool),
	}
}

// Services holds the business services.
type Services struct {
	Auth         *authsvc.Service
	Users        *user.Service
	Customers    *customer.Service
	Reasons      *reason.Service
	Applications *application.Service
	Notification *notification.Service
	Audit        *auditsvc.Service
	Stats        *stats.Service
	Bootstrap    *bootstrap.Service
}

// Infra groups the non-database collaborators of the services.
type Infra struct {
	Files   *storage.Local
	Events  EventPublisher
	Metrics *metrics.Registry
}

// EventPublisher fans review events out to a broker.
type EventPublisher interface {
	PublishReview(ctx context.Context, ev kafka.ReviewEvent) error
	Close() error
}

// NewEventPublisher returns a Kafka publisher, or a no-op one when no
// brokers are configured.
func NewEventPublisher(cfg config.KafkaConfig, logger *slog.Logger) EventPublisher {
	if !cfg.Enabled() {
		logger.Info("kafka disabled, review events are discarded")
		return kafka.Noop{}
	}
	logger.Info("kafka enabled",
		slog.Any("brokers", cfg.BrokerList()),
		slog.String("topic", cfg.Topic),
	)
	return kafka.NewPublisher(cfg, logger)
}

// NewServices builds every service. All writes run through one TxManager.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, repos *Repos, infra Infra) *Services {
	tx := postgres.NewTxManager(pool)
	table := access.MustNewTable()
	passwords := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Services{
		Auth:      authsvc.NewService(logger, repos.Users, repos.Audit, jwt, passwords),
		Users:     user.NewService(logger, repos.Users, repos.Audit, passwords, table, tx),
		Customers: customer.NewService(logger, repos.Customers, repos.Audit, table, tx),
		Reasons:   reason.NewService(logger, repos.Reasons, repos.Audit, table, tx),
		Applications: application.NewService(logger, application.Deps{
			Applications:  repos.Applications,
			Customers:     repos.Customers,
			Reasons:       repos.Reasons,
			Notifications: repos.Notifications,
			Audit:         repos.Audit,
			Files:         infra.Files,
			Events:        infra.Events,
			Metrics:       infra.Metrics,
			Access:        table,
			Tx:            tx,
		}),
		Notification: notification.NewService(logger, repos.Notifications, table),
		Audit:        auditsvc.NewService(logger, repos.Audit, table),
		Stats:        stats.NewService(logger, repos.Stats, table),
		Bootstrap:    bootstrap.NewService(logger, repos.Users, repos.Reasons, passwords, cfg.Bootstrap),
	}
}
