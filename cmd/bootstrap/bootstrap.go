package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-queue/config"
	"clinic-queue/internal/converter"
	deliveryHttp "clinic-queue/internal/delivery/http"
	"clinic-queue/internal/delivery/http/handler"
	"clinic-queue/internal/delivery/http/middleware"
	"clinic-queue/internal/domain/entity"
	"clinic-queue/internal/infrastructure/cache"
	"clinic-queue/internal/infrastructure/database"
	"clinic-queue/internal/repository"
	"clinic-queue/internal/service"
	"clinic-queue/internal/usecase"
	"clinic-queue/internal/validation"
	"clinic-queue/pkg/validator"

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
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.Log)
	app := &App{Config: cfg, Log: log}

	// Initialize database
	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Infof("Database connected successfully (%s)", cfg.DB.Driver)

	// Initialize Redis; the service runs without it
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warnf("Redis unavailable, rate limiting disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
		}
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHandler(cfg, log, db, app.RedisClient),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewLogger configures a logrus logger from the log settings
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// OpenDatabase connects to the configured database driver
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch {
	case cfg.DB.UsesSQLite():
		return database.NewSQLiteConnection(cfg.DB.SQLiteDSN)
	case cfg.DB.Driver == "postgres":
		return database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// NewHandler wires repositories, commands, handlers and middleware into the
// HTTP router. redisClient may be nil.
func NewHandler(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) http.Handler {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	specializationRepo := repository.NewSpecializationRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize commands
	doctorHandler := handler.NewDoctorHandler(
		usecase.NewAddOrUpdateDoctorCommand(db, log, doctorRepo, specializationRepo, validation.NewStructValidator[entity.Doctor](), auditService),
		usecase.NewDeleteDoctorCommand(db, log, doctorRepo, validation.DoctorDeletionValidator(), auditService),
		usecase.NewGetAllDoctorsCommand(db, log, doctorRepo, converter.DoctorConverter{}),
		usecase.NewGetAppointmentsByDoctorCommand(db, log, doctorRepo, converter.AppointmentConverter{}),
		customValidator,
	)
	patientHandler := handler.NewPatientHandler(
		usecase.NewAddOrUpdatePatientCommand(db, log, patientRepo, validation.NewStructValidator[entity.Patient](), auditService),
		usecase.NewDeletePatientCommand(db, log, patientRepo, validation.PatientDeletionValidator(), auditService),
		usecase.NewGetAllPatientsCommand(db, log, patientRepo, converter.PatientConverter{}),
		customValidator,
	)
	specializationHandler := handler.NewSpecializationHandler(
		usecase.NewAddOrUpdateSpecializationCommand(db, log, specializationRepo, validation.NewStructValidator[entity.Specialization](), auditService),
		usecase.NewDeleteSpecializationCommand(db, log, specializationRepo, validation.SpecializationDeletionValidator(), auditService),
		usecase.NewGetAllSpecializationsCommand(db, log, specializationRepo, converter.SpecializationConverter{}),
		customValidator,
	)
	appointmentHandler := handler.NewAppointmentHandler(
		usecase.NewAddOrUpdateAppointmentCommand(db, log, appointmentRepo, doctorRepo, patientRepo, validation.AppointmentReferencesValidator(), auditService),
		usecase.NewDeleteAppointmentCommand(db, log, appointmentRepo, nil, auditService),
		usecase.NewGetAllAppointmentsCommand(db, log, appointmentRepo, converter.AppointmentConverter{}),
		customValidator,
	)
	auditLogHandler := handler.NewAuditLogHandler(usecase.NewGetAllAuditLogsCommand(db, log, auditLogRepo))

	// Initialize middleware
	var (
		healthHandler *handler.HealthHandler
		rateLimiter   *middleware.RateLimitMiddleware
	)
	if redisClient != nil {
		healthHandler = handler.NewHealthHandler(db, redisClient)
		rateLimiter = middleware.NewRateLimitMiddleware(redisClient, log, cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.TrustedProxies)
	} else {
		healthHandler = handler.NewHealthHandler(db, nil)
	}

	router := deliveryHttp.NewRouter(
		healthHandler,
		doctorHandler,
		patientHandler,
		specializationHandler,
		appointmentHandler,
		auditLogHandler,
		middleware.NewCORSMiddleware(cfg.App.AllowedOrigins),
		middleware.NewLoggingMiddleware(log),
		rateLimiter,
	)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

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
	return nil
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
