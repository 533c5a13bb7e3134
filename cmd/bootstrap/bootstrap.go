package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	deliveryHttp "github.com/AlexCL0320/backend-banco-angeles/internal/delivery/http"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/http/handler"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/http/middleware"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/cache"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/database"
	"github.com/AlexCL0320/backend-banco-angeles/internal/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/repository/memory"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"
	"github.com/AlexCL0320/backend-banco-angeles/internal/usecase"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Repos       Repositories
	Server      *http.Server
}

// Repositories is the set of ports the use cases are wired with.
type Repositories struct {
	Municipality domainRepo.MunicipalityRepository
	Neighborhood domainRepo.NeighborhoodRepository
	Coordinate   domainRepo.CoordinateRepository
	Address      domainRepo.AddressRepository
	Role         domainRepo.RoleRepository
	User         domainRepo.UserRepository
	Donor        domainRepo.DonorRepository
	Appointment  domainRepo.AppointmentRepository
	AuditLog     domainRepo.AuditLogRepository
}

func postgresRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Municipality: repository.NewMunicipalityRepository(db),
		Neighborhood: repository.NewNeighborhoodRepository(db),
		Coordinate:   repository.NewCoordinateRepository(db),
		Address:      repository.NewAddressRepository(db),
		Role:         repository.NewRoleRepository(db),
		User:         repository.NewUserRepository(db),
		Donor:        repository.NewDonorRepository(db),
		Appointment:  repository.NewAppointmentRepository(db),
		AuditLog:     repository.NewAuditLogRepository(db),
	}
}

func memoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Municipality: memory.NewMunicipalityRepository(store),
		Neighborhood: memory.NewNeighborhoodRepository(store),
		Coordinate:   memory.NewCoordinateRepository(store),
		Address:      memory.NewAddressRepository(store),
		Role:         memory.NewRoleRepository(store),
		User:         memory.NewUserRepository(store),
		Donor:        memory.NewDonorRepository(store),
		Appointment:  memory.NewAppointmentRepository(store),
		AuditLog:     memory.NewAuditLogRepository(store),
	}
}

// New loads the configuration from the environment and builds the App.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new App instance with all dependencies initialized.
// The memory storage needs neither postgres nor redis.
func NewWithConfig(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	app.Log = setupLogger(cfg.Log.Level)
	app.Log.Info("Configuration loaded successfully")

	var (
		repos      Repositories
		tokenStore cache.TokenStore
	)

	switch cfg.App.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		store.SeedRoles()
		repos = memoryRepositories(store)
		tokenStore = cache.NewMemoryTokenStore()
		app.Log.Warn("Using in-memory storage, data is lost on shutdown")

	default:
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Database connected successfully")

		if cfg.DB.AutoMigrate {
			migrator, err := database.NewMigrator(db)
			if err != nil {
				app.Close()
				return nil, err
			}
			if err := migrator.Up(); err != nil {
				app.Close()
				return nil, err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")

		repos = postgresRepositories(db)
		tokenStore = cache.NewRedisTokenStore(redisClient)
	}

	app.Repos = repos
	app.Server = initializeServer(cfg, app.Log, repos, tokenStore)
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, repos Repositories, tokenStore cache.TokenStore) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	auditService := service.NewAuditService(log, repos.AuditLog)

	// Initialize usecases
	municipalityUsecase := usecase.NewMunicipalityUsecase(log, repos.Municipality, auditService)
	neighborhoodUsecase := usecase.NewNeighborhoodUsecase(log, repos.Neighborhood, repos.Municipality, auditService)
	coordinateUsecase := usecase.NewCoordinateUsecase(log, repos.Coordinate, auditService)
	addressUsecase := usecase.NewAddressUsecase(log, repos.Address, repos.Neighborhood, repos.Coordinate, auditService)
	roleUsecase := usecase.NewRoleUsecase(log, repos.Role, auditService)
	userUsecase := usecase.NewUserUsecase(log, repos.User, repos.Role, tokenStore, auditService)
	donorUsecase := usecase.NewDonorUsecase(log, repos.Donor, repos.User, repos.Address, auditService, cfg.Donor)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.Appointment, repos.Donor, auditService)
	authUsecase := usecase.NewAuthUsecase(log, repos.User, jwtService, tokenStore)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.AuditLog)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(log, authUsecase, customValidator),
		Municipality: handler.NewMunicipalityHandler(log, municipalityUsecase, neighborhoodUsecase, customValidator),
		Neighborhood: handler.NewNeighborhoodHandler(log, neighborhoodUsecase, addressUsecase, customValidator),
		Coordinate:   handler.NewCoordinateHandler(log, coordinateUsecase, customValidator),
		Address:      handler.NewAddressHandler(log, addressUsecase, customValidator),
		Role:         handler.NewRoleHandler(log, roleUsecase, customValidator),
		User:         handler.NewUserHandler(log, userUsecase, donorUsecase, customValidator),
		Donor:        handler.NewDonorHandler(log, donorUsecase, appointmentUsecase, customValidator),
		Appointment:  handler.NewAppointmentHandler(log, appointmentUsecase, customValidator),
		AuditLog:     handler.NewAuditLogHandler(log, auditLogUsecase),
	}

	// Metrics live in a registry of their own
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(registry)

	// Initialize router
	router := deliveryHttp.NewRouter(
		handlers,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		metricsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, storage: %s", app.Config.App.Env, app.Config.App.Storage)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
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
