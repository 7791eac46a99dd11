// Command seed-superadmin creates the initial super admin account. Run it
// once against a fresh database; it refuses to overwrite an existing account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kyc-loan.backend/internal/config"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/infrastructure/models"
	"kyc-loan.backend/internal/infrastructure/repositories"
	"kyc-loan.backend/pkg/crypto"
)

func main() {
	email := flag.String("email", "superadmin@example.com", "super admin email")
	password := flag.String("password", "", "super admin password (required)")
	firstName := flag.String("first-name", "Super", "first name")
	lastName := flag.String("last-name", "Admin", "last name")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-superadmin -password <password> [-email <email>]")
		os.Exit(2)
	}

	if err := run(*email, *password, *firstName, *lastName); err != nil {
		log.Fatal(err)
	}
}

func run(email, password, firstName, lastName string) error {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	if existing, err := userRepo.GetByEmail(ctx, strings.ToLower(email)); err == nil && existing != nil {
		return fmt.Errorf("account %s already exists", email)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	super := &entities.User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Role:         entities.UserRoleSuperAdmin,
		KYCStatus:    entities.KYCVerified,
	}
	if err := userRepo.Create(ctx, super); err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	fmt.Printf("super admin %s created (%s)\n", super.Email, super.ID)
	return nil
}
