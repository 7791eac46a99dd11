package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/logger"
)

// SuperAdminUseCase handles admin account management
type SuperAdminUseCase struct {
	userRepo  repositories.UserRepository
	docRepo   repositories.DocumentRepository
	loanRepo  repositories.LoanRepository
	auditRepo repositories.AuditRepository
	uow       repositories.UnitOfWork
}

func NewSuperAdminUseCase(
	userRepo repositories.UserRepository,
	docRepo repositories.DocumentRepository,
	loanRepo repositories.LoanRepository,
	auditRepo repositories.AuditRepository,
	uow repositories.UnitOfWork,
) *SuperAdminUseCase {
	return &SuperAdminUseCase{
		userRepo:  userRepo,
		docRepo:   docRepo,
		loanRepo:  loanRepo,
		auditRepo: auditRepo,
		uow:       uow,
	}
}

// ListAdmins returns all admin accounts
func (uc *SuperAdminUseCase) ListAdmins(ctx context.Context) ([]*entities.User, error) {
	admins, err := uc.userRepo.ListByRole(ctx, entities.UserRoleAdmin)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return admins, nil
}

// AddAdmin creates an admin account. Admins skip KYC, they are created verified.
func (uc *SuperAdminUseCase) AddAdmin(ctx context.Context, callerID uuid.UUID, input *entities.CreateAdminInput, clientIP string) (*entities.User, error) {
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

	admin := &entities.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
		KYCStatus:    entities.KYCVerified,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, callerID, entities.ActionAdminCreated, clientIP)
	logger.Info(ctx, "admin account created",
		zap.String("callerId", callerID.String()),
		zap.String("adminId", admin.ID.String()))
	return admin, nil
}

// DeleteAdmin removes an admin account and everything attached to it in one
// transaction. Only accounts with the admin role can be deleted this way.
func (uc *SuperAdminUseCase) DeleteAdmin(ctx context.Context, callerID, targetID uuid.UUID, clientIP string) error {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("admin not found")
		}
		return domainerrors.InternalError(err)
	}
	if target.Role != entities.UserRoleAdmin {
		return domainerrors.InvalidTarget("target account is not an admin")
	}

	err = uc.uow.Do(ctx, func(txCtx context.Context) error {
		if err := uc.docRepo.DeleteByUser(txCtx, targetID); err != nil {
			return err
		}
		if err := uc.loanRepo.DeleteByUser(txCtx, targetID); err != nil {
			return err
		}
		if err := uc.auditRepo.DeleteByUser(txCtx, targetID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, targetID)
	})
	if err != nil {
		return domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, callerID, entities.ActionAdminDeleted, clientIP)
	logger.Info(ctx, "admin account deleted",
		zap.String("callerId", callerID.String()),
		zap.String("adminId", targetID.String()))
	return nil
}
