package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-api/internal/db"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/identity"
	"github.com/BruksfildServices01/clinic-api/internal/infra/redisstore"
	"github.com/BruksfildServices01/clinic-api/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-api/internal/logger"
	"github.com/BruksfildServices01/clinic-api/internal/metrics"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	"github.com/BruksfildServices01/clinic-api/internal/routes"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	m := metrics.NewCollector("clinic")

	// ------------------------------
	// Identity
	// ------------------------------
	var verifier identity.Verifier
	switch cfg.IdentityStrategy {
	case config.IdentityLocal:
		verifier = identity.NewLocalVerifier(cfg.SupabaseJWTSecret)
	default:
		verifier = identity.NewRemoteVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.IdentityTimeout)
	}

	repos := routes.NewRepositories(db)
	auditLog := audit.New(db)

	deps := routes.Deps{
		Config:       cfg,
		Logger:       log,
		Metrics:      m,
		Clock:        timezone.NewClock(cfg.ClinicTimezone),
		Repos:        repos,
		Resolver:     identity.NewResolver(verifier, repos.Users),
		Audit:        audit.NewDispatcher(auditLog, log, m.AuditFailures.Inc),
		AuditLogs:    auditLog,
		Health:       sqlDB,
		EmailDomains: validators.IsEmailDomainValid,
	}

	if cfg.SupabaseURL != "" && cfg.SupabaseServiceRoleKey != "" {
		deps.Provisioner = identity.NewProvisioner(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.IdentityTimeout)
	} else {
		log.Warn("account provisioning disabled: SUPABASE_SERVICE_ROLE_KEY not set")
	}

	// ------------------------------
	// Optional infra
	// ------------------------------
	if cfg.RedisURL != "" {
		counter, err := redisstore.New(cfg.RedisURL, "clinic:ratelimit:")
		if err != nil {
			return err
		}
		defer counter.Close()
		if err := counter.Ping(ctx); err != nil {
			log.Warn("redis unreachable, rate limiter will fail open", zap.Error(err))
		}
		deps.Counter = counter
	} else {
		log.Info("public rate limiting disabled: REDIS_URL not set")
	}

	if cfg.UploadsEnabled() {
		deps.Store = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.StorageBucket,
			Region:    cfg.StorageRegion,
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			PublicURL: cfg.StoragePublicURL,
		})
	}

	// ------------------------------
	// HTTP
	// ------------------------------
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	httperr.UseJSONFieldNames()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound, "route_not_found", "Ruta no encontrada.")
	})

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr()), zap.String("identity", cfg.IdentityStrategy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
