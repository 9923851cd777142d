package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"earnhub.backend/internal/config"
	"earnhub.backend/internal/infrastructure/jobs"
	"earnhub.backend/internal/infrastructure/repositories"
	"earnhub.backend/internal/interfaces/http/handlers"
	"earnhub.backend/internal/interfaces/http/middleware"
	"earnhub.backend/internal/usecases"
	"earnhub.backend/pkg/jwt"
	"earnhub.backend/pkg/logger"
	"earnhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, uow, jwtService, cfg.Rewards.ReferralBonus)
	taskUsecase := usecases.NewTaskUsecase(userRepo, taskRepo, uow)
	kycUsecase := usecases.NewKYCUsecase(userRepo, uow)
	referralUsecase := usecases.NewReferralUsecase(userRepo, uow)
	settingsUsecase := usecases.NewSettingsUsecase(settingRepo)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(userRepo, withdrawalRepo, settingsUsecase, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	taskHandler := handlers.NewTaskHandler(taskUsecase)
	kycHandler := handlers.NewKYCHandler(kycUsecase)
	referralHandler := handlers.NewReferralHandler(referralUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase, settingsUsecase)
	adminHandler := handlers.NewAdminHandler(userRepo)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resetJob := jobs.NewDailyResetJob(taskUsecase, cfg.Rewards.SweepBatch)
	if err := resetJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to start daily reset job: %w", err)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		taskHandler:       taskHandler,
		kycHandler:        kycHandler,
		referralHandler:   referralHandler,
		withdrawalHandler: withdrawalHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		resetJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("EarnHub backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
