package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/config"
	deliveryHttp "github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/handler"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"
	"github.com/Abdudhi100/dr-olaosebikan/internal/infrastructure/cache"
	"github.com/Abdudhi100/dr-olaosebikan/internal/infrastructure/database"
	"github.com/Abdudhi100/dr-olaosebikan/internal/repository"
	"github.com/Abdudhi100/dr-olaosebikan/internal/service"
	"github.com/Abdudhi100/dr-olaosebikan/internal/usecase"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/jwt"
	"github.com/Abdudhi100/dr-olaosebikan/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Dispatcher  *service.NotificationDispatcher
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.Clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, dispatcher, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.Dispatcher = dispatcher

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.NotificationDispatcher, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	serviceRepo := repository.NewServiceRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	publicationRepo := repository.NewPublicationRepository()
	achievementRepo := repository.NewAchievementRepository()
	intentRepo := repository.NewMessageIntentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Clinic calendar: validates booking windows and generates day slots
	calendar, err := usecase.NewClinicCalendar(cfg.Clinic)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build clinic calendar: %w", err)
	}

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	mailer := service.NewSMTPMailer(cfg.Mail)
	dispatcher := service.NewNotificationDispatcher(db, log, appointmentRepo, mailer)
	linkBuilder := service.NewWhatsAppLinkBuilder(cfg.Clinic.WhatsAppPhone)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, auditService)
	slotUsecase := usecase.NewSlotUsecase(db, log, calendar, serviceRepo, availabilityRepo)
	bookingUsecase := usecase.NewBookingUsecase(db, log, calendar, slotUsecase, serviceRepo,
		availabilityRepo, appointmentRepo, intentRepo, auditService, dispatcher, linkBuilder)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, availabilityRepo, auditService)
	publicationUsecase := usecase.NewPublicationUsecase(db, log, publicationRepo, achievementRepo, auditService)
	contactUsecase := usecase.NewContactUsecase(db, log, intentRepo, linkBuilder)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	slotHandler := handler.NewSlotHandler(slotUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	publicationHandler := handler.NewPublicationHandler(publicationUsecase, customValidator)
	whatsAppHandler := handler.NewWhatsAppHandler(contactUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, serviceHandler, slotHandler, bookingHandler,
		appointmentHandler, publicationHandler, whatsAppHandler, auditLogHandler,
		authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, dispatcher, nil
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

// Close closes all connections (database, redis, dispatcher)
func (app *App) Close() {
	// Drain pending booking emails first
	if app.Dispatcher != nil {
		app.Dispatcher.Stop()
	}

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
