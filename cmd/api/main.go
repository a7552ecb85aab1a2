package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/csiedev/meeting-records/pkg/validator"

	"github.com/csiedev/meeting-records/internal/adapter/handler"
	"github.com/csiedev/meeting-records/internal/adapter/repository"
	"github.com/csiedev/meeting-records/internal/infrastructure/cache"
	"github.com/csiedev/meeting-records/internal/infrastructure/database"
	"github.com/csiedev/meeting-records/internal/infrastructure/mail"
	"github.com/csiedev/meeting-records/internal/infrastructure/storage"
	"github.com/csiedev/meeting-records/internal/usecase/auth"
	"github.com/csiedev/meeting-records/internal/usecase/feedback"
	"github.com/csiedev/meeting-records/internal/usecase/meeting"
	"github.com/csiedev/meeting-records/internal/usecase/motion"
	"github.com/csiedev/meeting-records/internal/usecase/notification"
	"github.com/csiedev/meeting-records/internal/usecase/person"
	"github.com/csiedev/meeting-records/internal/usecase/search"
	"github.com/csiedev/meeting-records/internal/usecase/stats"
	"github.com/csiedev/meeting-records/internal/usecase/template"
	"github.com/csiedev/meeting-records/pkg/config"
	"github.com/csiedev/meeting-records/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run sql-migrate from CI.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.Migrate(db, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping startup migrations; use sql-migrate in CI/CD/production")
	}

	// Initialize cache; fall back to the in-memory store when Redis is
	// disabled or unreachable
	var statsCache stats.Cache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		statsCache = cache.NewRedisStore(redisClient)
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		statsCache = cache.NewMemoryStore()
	}

	// Initialize object storage
	log.Println("📦 Connecting to MinIO...")
	objectStore, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	motionRepo := repository.NewMotionRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize notification worker
	log.Println("📧 Initializing notification worker...")
	mailer := mail.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		logger,
	)
	notifications := notification.NewService(mailer, logger, cfg.SMTP.QueueSize)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	notifications.Start(workerCtx)

	// Initialize usecases
	log.Println("✨ Initializing services...")
	authService := auth.NewAuthService(personRepo, jwtManager, notifications)
	personService := person.NewPersonService(personRepo)
	meetingService := meeting.NewMeetingService(meetingRepo, attendeeRepo, personRepo, attachmentRepo, objectStore)
	motionService := motion.NewMotionService(motionRepo, meetingRepo)
	statsService := stats.NewStatsService(meetingRepo, motionRepo, personRepo, feedbackRepo, statsCache, logger)
	searchService := search.NewSearchService(meetingRepo, personRepo)
	feedbackService := feedback.NewFeedbackService(feedbackRepo)
	templateService := template.NewTemplateService(templateRepo, personRepo)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	personHandler := handler.NewPerson(personService, logger)
	meetingHandler := handler.NewMeeting(meetingService, notifications, logger)
	motionHandler := handler.NewMotion(motionService, logger)
	statsHandler := handler.NewStats(statsService, logger)
	searchHandler := handler.NewSearch(searchService, logger)
	miscHandler := handler.NewMisc(feedbackService, templateService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager,
		authHandler, personHandler, meetingHandler, motionHandler,
		statsHandler, searchHandler, miscHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	stopWorker()
	notifications.Wait()

	log.Println("✅ Server stopped gracefully")
}
