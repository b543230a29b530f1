package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/transport/dataloader"
	"github.com/heartmarshall/default-registry/internal/transport/middleware"
	"github.com/heartmarshall/default-registry/internal/transport/rest"
)

// NewHTTPHandler builds the REST router behind the middleware chain.
// Order: request id, client ip, recovery, access log, metrics, CORS, auth,
// loaders, then the HTTP audit trail closest to the handlers.
func NewHTTPHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	repos *Repos,
	svcs *Services,
	infra Infra,
	limiter *middleware.RateLimiter,
) http.Handler {
	retrier := rest.NewRetrier(infra.Metrics, logger)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Component{Name: "database", Ping: pool},
			rest.Component{Name: "storage", Ping: infra.Files},
		),
		Auth:          rest.NewAuthHandler(svcs.Auth, logger),
		Users:         rest.NewUserHandler(svcs.Users, retrier, logger),
		Customers:     rest.NewCustomerHandler(svcs.Customers, retrier, logger),
		Reasons:       rest.NewReasonHandler(svcs.Reasons, retrier, logger),
		Applications:  rest.NewApplicationHandler(svcs.Applications, retrier, cfg.Storage.MaxUploadBytes, logger),
		Notifications: rest.NewNotificationHandler(svcs.Notification, logger),
		Stats:         rest.NewStatsHandler(svcs.Stats, logger),
		Audit:         rest.NewAuditHandler(svcs.Audit, logger),
		Files:         rest.NewFileHandler(infra.Files, logger),
	}, limiter.Limit(cfg.RateLimit.LoginPerMinute))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(infra.Metrics),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.Auth),
		dataloader.Middleware(&dataloader.Repos{Customer: repos.Customers, Reason: repos.Reasons}),
		middleware.HTTPAudit(svcs.Audit, logger),
	)
	return chain(router)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
