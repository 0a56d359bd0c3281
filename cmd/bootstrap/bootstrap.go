package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-directory-admin/config"
	deliveryHttp "medical-directory-admin/internal/delivery/http"
	"medical-directory-admin/internal/delivery/http/handler"
	"medical-directory-admin/internal/delivery/http/middleware"
	"medical-directory-admin/internal/infrastructure/cache"
	"medical-directory-admin/internal/infrastructure/database"
	"medical-directory-admin/internal/infrastructure/identity"
	"medical-directory-admin/internal/infrastructure/storage"
	"medical-directory-admin/internal/repository"
	"medical-directory-admin/internal/service"
	"medical-directory-admin/internal/usecase"
	"medical-directory-admin/pkg/jwt"
	"medical-directory-admin/pkg/metrics"
	"medical-directory-admin/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Storage     service.ObjectStorage
	Metrics     *metrics.Metrics
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}
	ctx := context.Background()

	// Setup logger
	setupLogger()
	log := logrus.StandardLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	log.SetLevel(config.ParseLogLevel(cfg.App.LogLevel))
	config.WatchLogLevel(log)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize object storage
	objectStorage, err := storage.NewMinioStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}
	app.Storage = objectStorage

	// Initialize metrics
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		app.Metrics = metrics.New(registry)
	}

	// Initialize all layers
	server, err := initializeServer(ctx, cfg, log, db, redisClient, objectStorage, app.Metrics)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	ctx context.Context,
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	objectStorage service.ObjectStorage,
	m *metrics.Metrics,
) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	entryRepo := repository.NewDirectoryEntryRepository()
	metadataRepo := repository.NewRoleMetadataRepository()
	accountRepo := repository.NewAccountRepository()
	profileRepo := repository.NewAccountProfileRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	identityProvider := identity.NewProvider(db, log)
	sessionStore := cache.NewTokenStore(redisClient, log)
	auditService := service.NewAuditService(db, log, auditLogRepo)
	provisioner := service.NewAccountProvisioner(db, log, accountRepo, profileRepo, identityProvider, objectStorage, m, cfg.Identity.TempPasswordLength)
	enricher := service.NewEntryEnricher(db, log, metadataRepo, m)

	if err := service.SeedAdmin(ctx, db, log, accountRepo, identityProvider, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, accountRepo, identityProvider, sessionStore, auditService, jwtService)
	entryUsecase := usecase.NewDirectoryEntryUsecase(db, log, entryRepo, metadataRepo, accountRepo, profileRepo, provisioner, enricher, auditService, m)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	entryHandler := handler.NewDirectoryEntryHandler(entryUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionStore)
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware(m)

	var metricsHandler http.Handler
	if m != nil {
		metricsHandler = m.Handler()
	}

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, entryHandler, auditLogHandler, authMiddleware, corsMiddleware, metricsMiddleware, metricsHandler)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
