package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/vigilance-service/internal/api/http"
	"github.com/spec-kit/vigilance-service/internal/api/http/handlers"
	"github.com/spec-kit/vigilance-service/internal/auth"
	"github.com/spec-kit/vigilance-service/internal/config"
	"github.com/spec-kit/vigilance-service/internal/events"
	"github.com/spec-kit/vigilance-service/internal/observability"
	"github.com/spec-kit/vigilance-service/internal/persistence"
	"github.com/spec-kit/vigilance-service/internal/repository"
	"github.com/spec-kit/vigilance-service/internal/service"
	"github.com/spec-kit/vigilance-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var userRepo repository.UserRepository
	var reportRepo repository.ReportRepository
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		reportRepo = repository.NewReportRepository(pool)
	} else {
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		reportRepo = store.Reports()
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService, err := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	statsCache := repository.NewRedisStatsCache(redis.Client)
	reportService := service.NewReportService(reportRepo, statsCache, dispatcher)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)
	reportsHandler := handlers.NewReportsHandler(reportService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Health:         healthHandler,
		Auth:           authHandler,
		Reports:        reportsHandler,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
