package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/jwt"
	"kyc-loan.backend/pkg/logger"
)

// AuthUseCase handles registration and login
type AuthUseCase struct {
	userRepo  repositories.UserRepository
	auditRepo repositories.AuditRepository
	tokens    *jwt.TokenService
}

func NewAuthUseCase(userRepo repositories.UserRepository, auditRepo repositories.AuditRepository, tokens *jwt.TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		tokens:    tokens,
	}
}

// Register creates a customer account with pending KYC status
func (uc *AuthUseCase) Register(ctx context.Context, input *entities.RegisterInput, clientIP string) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}
	if existing != nil {
		return nil, domainerrors.DuplicateEmail("email already registered")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		Role:         entities.UserRoleCustomer,
		KYCStatus:    entities.KYCPending,
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, domainerrors.BadRequest("date_of_birth must be YYYY-MM-DD")
		}
		user.DateOfBirth = null.TimeFrom(dob)
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, user.ID, entities.ActionSignup, clientIP)
	logger.Info(ctx, "user registered", zap.String("userId", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues a signed token
func (uc *AuthUseCase) Login(ctx context.Context, input *entities.LoginInput, clientIP string) (*entities.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, domainerrors.InternalError(err)
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials()
	}

	token, err := uc.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, user.ID, entities.ActionLogin, clientIP)
	logger.Info(ctx, "user logged in", zap.String("userId", user.ID.String()), zap.String("role", string(user.Role)))
	return &entities.AuthResult{
		Token: token,
		Role:  string(user.Role),
		Name:  user.FullName(),
	}, nil
}

// Verify resolves the user behind validated claims, used by the token check endpoint
func (uc *AuthUseCase) Verify(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthenticated("account no longer exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}
