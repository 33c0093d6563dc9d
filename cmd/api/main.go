// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bite-platform/bite-backend/internal/admin"
	"github.com/bite-platform/bite-backend/internal/auth"
	"github.com/bite-platform/bite-backend/internal/avatar"
	"github.com/bite-platform/bite-backend/internal/config"
	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/dashboard"
	"github.com/bite-platform/bite-backend/internal/health"
	"github.com/bite-platform/bite-backend/internal/mailer"
	"github.com/bite-platform/bite-backend/internal/middleware"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/server"
	"github.com/bite-platform/bite-backend/internal/settings"
	"github.com/bite-platform/bite-backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	genKeys := flag.Bool("generate-keys", false, "generate an ES256 key pair and exit")
	flag.Parse()

	if *genKeys {
		if err := generateKeys(*configPath); err != nil {
			slog.Error("key generation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func generateKeys(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := auth.GenerateKeyPair(
		cfg.JWT.PrivateKeyPath,
		cfg.JWT.PublicKeyPath,
	); err != nil {
		return err
	}

	slog.Info("key pair written",
		"private", cfg.JWT.PrivateKeyPath,
		"public", cfg.JWT.PublicKeyPath,
	)
	return nil
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	mail, err := mailer.New(cfg.Email)
	if err != nil {
		return err
	}
	logger.Info("mailer configured", "provider", cfg.Email.Provider)

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(db.DB, userRepo, logger)
	userHandler := user.NewHandler(userSvc, validate)

	profileRepo := profile.NewRepository(db.DB)
	profileSvc := profile.NewService(profileRepo)

	revocations := auth.NewRevocationStore(redis.Client, cfg.JWT.SessionExpire)
	authSvc := auth.NewService(
		userSvc,
		jwtManager,
		revocations,
		mail,
		cfg.App.ClientURL,
		logger,
	)
	authHandler := auth.NewHandler(authSvc, validate)

	avatarRepo := avatar.NewRepository(db.DB)
	avatarSvc := avatar.NewService(avatarRepo)
	avatarHandler := avatar.NewHandler(avatarSvc)

	settingsSvc := settings.NewService(
		userSvc,
		profileSvc,
		avatarSvc,
		authSvc,
		redis.Client,
	)
	settingsHandler := settings.NewHandler(settingsSvc, validate)

	dashboardHandler := dashboard.NewHandler(userSvc, profileSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DB:         db.DB,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager, revocations)

	router.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authHandler.RegisterPublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(authenticator)
				authHandler.RegisterProtectedRoutes(r)
			})
		})

		r.Route("/avatars", avatarHandler.RegisterRoutes)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.TieredRateLimiter(redis.Client))

			r.Route("/dashboard", dashboardHandler.RegisterRoutes)
			r.Route("/settings", settingsHandler.RegisterRoutes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/admin", func(r chi.Router) {
					adminHandler.RegisterRoutes(r)
					r.Route("/users", userHandler.RegisterRoutes)
				})
			})
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
