package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kyc-loan.backend/internal/config"
	"kyc-loan.backend/internal/infrastructure/models"
	"kyc-loan.backend/internal/infrastructure/reports"
	"kyc-loan.backend/internal/infrastructure/repositories"
	"kyc-loan.backend/internal/infrastructure/storage"
	"kyc-loan.backend/internal/interfaces/http/handlers"
	"kyc-loan.backend/internal/interfaces/http/middleware"
	"kyc-loan.backend/internal/usecases"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/jwt"
	"kyc-loan.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		switch cfg.Driver {
		case "postgres":
			return gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
		default:
			return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{TranslateError: true})
		}
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.User{}, &models.Document{}, &models.LoanApplication{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info(context.Background(), "database ready", zap.String("driver", cfg.Database.Driver))

	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	cipher, err := crypto.NewFieldCipher(cfg.Security.FieldEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize field cipher: %w", err)
	}

	fileStore := storage.NewFileStore(cfg.Storage.UploadDir)
	renderer := reports.NewRenderer(cfg.Storage.LetterDir, cfg.Storage.ReportDir)

	userRepo := repositories.NewUserRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUseCase(userRepo, auditRepo, tokens)
	kycUsecase := usecases.NewKYCUseCase(userRepo, docRepo, auditRepo, fileStore, cipher)
	loanUsecase := usecases.NewLoanUseCase(userRepo, loanRepo, auditRepo)
	adminUsecase := usecases.NewAdminUseCase(userRepo, docRepo, loanRepo, auditRepo, uow, renderer)
	superUsecase := usecases.NewSuperAdminUseCase(userRepo, docRepo, loanRepo, auditRepo, uow)
	auditUsecase := usecases.NewAuditUseCase(auditRepo)
	exportUsecase := usecases.NewExportUseCase(userRepo, loanRepo, renderer)

	deps := handlers.Deps{
		Auth:         handlers.NewAuthHandler(authUsecase),
		KYC:          handlers.NewKYCHandler(kycUsecase, cfg.Storage.MaxUploadSize),
		Loan:         handlers.NewLoanHandler(loanUsecase),
		Admin:        handlers.NewAdminHandler(adminUsecase),
		Super:        handlers.NewSuperAdminHandler(superUsecase),
		Audit:        handlers.NewAuditHandler(auditUsecase),
		Export:       handlers.NewExportHandler(exportUsecase, cfg.Storage.LetterDir, cfg.Storage.ReportDir),
		Health:       handlers.NewHealthHandler(db),
		AuthRequired: middleware.AuthMiddleware(tokens),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	handlers.RegisterRoutes(r, deps)

	log.Printf("KYC & Loan backend starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
