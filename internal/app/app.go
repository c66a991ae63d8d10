package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/talentoapp/talento-backend/internal/adapter/postgres"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/coach"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/opportunity"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/organization"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/player"
	"github.com/talentoapp/talento-backend/internal/adapter/postgres/user"
	"github.com/talentoapp/talento-backend/internal/auth"
	"github.com/talentoapp/talento-backend/internal/config"
	"github.com/talentoapp/talento-backend/internal/service/importer"
	"github.com/talentoapp/talento-backend/internal/transport/middleware"
	"github.com/talentoapp/talento-backend/internal/transport/rest"
)

// jwtValidator adapts auth.JWTManager to the middleware token contract.
type jwtValidator struct {
	m *auth.JWTManager
}

func (v jwtValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.m.ValidateAccessToken(token)
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires the import service behind the REST transport, and
// serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	users := user.New(pool)
	players := player.New(pool)
	coaches := coach.New(pool)
	organizations := organization.New(pool)
	opportunities := opportunity.New(pool)
	txManager := postgres.NewTxManager(pool)

	importSvc := importer.NewService(
		logger, cfg.Import,
		users, players, coaches, organizations, opportunities,
		txManager,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	importHandler := rest.NewImportHandler(importSvc, logger, cfg.Import.MaxUploadBytes)
	router := rest.NewRouter(healthHandler, importHandler)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtValidator{m: jwtManager}),
		rateLimiter.Limit(60),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
