package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/azulpack/juridico-backend/internal/adapter/postgres"
	activityrepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/activity"
	historyrepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/history"
	processrepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/process"
	sharerepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/share"
	userrepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/user"
	"github.com/azulpack/juridico-backend/internal/adapter/provider/workflow"
	redisstore "github.com/azulpack/juridico-backend/internal/adapter/redis"
	"github.com/azulpack/juridico-backend/internal/adapter/storage"
	authpkg "github.com/azulpack/juridico-backend/internal/auth"
	"github.com/azulpack/juridico-backend/internal/config"
	"github.com/azulpack/juridico-backend/internal/service/activity"
	"github.com/azulpack/juridico-backend/internal/service/admin"
	authsvc "github.com/azulpack/juridico-backend/internal/service/auth"
	"github.com/azulpack/juridico-backend/internal/service/directory"
	"github.com/azulpack/juridico-backend/internal/service/generation"
	"github.com/azulpack/juridico-backend/internal/service/navigation"
	"github.com/azulpack/juridico-backend/internal/service/process"
	"github.com/azulpack/juridico-backend/internal/service/sharing"
	"github.com/azulpack/juridico-backend/internal/transport/middleware"
	"github.com/azulpack/juridico-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It connects to PostgreSQL, Redis and
// object storage, builds the services and serves HTTP until ctx is cancelled,
// then shuts the server down gracefully.
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
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	rdb, err := redisstore.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer rdb.Close()

	objects, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, deps{
		db:       pool,
		tx:       postgres.NewTxManager(pool),
		redis:    rdb,
		storage:  objects,
		workflow: workflow.New(cfg.Webhook, logger),
		limiter:  limiter,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// deps holds the infrastructure shared by every service.
type deps struct {
	db       *pgxpool.Pool
	tx       *postgres.TxManager
	redis    *goredis.Client
	storage  *storage.Store
	workflow *workflow.Client
	limiter  *middleware.RateLimiter
}

// newHandler builds repositories, services and handlers, and wraps the router
// in the global middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger, d deps) http.Handler {
	// Repositories.
	users := userrepo.New(d.db)
	processes := processrepo.New(d.db)
	shares := sharerepo.New(d.db)
	history := historyrepo.New(d.db)
	activityRecords := activityrepo.New(d.db)

	sessions := redisstore.NewSessionStore(d.redis, cfg.Redis.KeyPrefix)
	navStore := redisstore.NewNavStore(d.redis, cfg.Redis.KeyPrefix)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Services.
	authService := authsvc.NewService(logger, users, sessions, jwtMgr, hasher, cfg.Auth)
	processService := process.NewService(logger, processes, d.tx, d.storage, d.workflow)
	generationService := generation.NewService(logger, processes, history, d.workflow, d.tx, cfg.Webhook.GenerateTimeout)
	sharingService := sharing.NewService(logger, shares, processes, users, d.tx)
	directoryService := directory.NewService(users)
	navigationService := navigation.NewService(logger, navStore)
	activityService := activity.NewService(logger, activityRecords, processes, users, users, cfg.Activity)
	adminService := admin.NewService(
		logger, users, hasher, sessions, activityService, processes, d.tx, cfg.Auth.MinPasswordLength,
	)

	// Handlers.
	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": d.db,
			"redis": rest.PingFunc(func(ctx context.Context) error {
				return d.redis.Ping(ctx).Err()
			}),
		}, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Navigation: rest.NewNavigationHandler(navigationService, logger),
		Directory:  rest.NewDirectoryHandler(directoryService, logger),
		Process:    rest.NewProcessHandler(processService, logger, cfg.Server.MaxUploadBytes),
		Generation: rest.NewGenerationHandler(generationService, logger),
		Sharing:    rest.NewSharingHandler(sharingService, logger),
		Admin:      rest.NewAdminHandler(adminService, activityService, logger),
	}, d.limiter.Limit(cfg.Server.RateLimitPerMinute))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
