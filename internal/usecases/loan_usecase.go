package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/pkg/logger"
)

// LoanUseCase handles customer-facing loan application operations
type LoanUseCase struct {
	userRepo  repositories.UserRepository
	loanRepo  repositories.LoanRepository
	auditRepo repositories.AuditRepository
}

func NewLoanUseCase(userRepo repositories.UserRepository, loanRepo repositories.LoanRepository, auditRepo repositories.AuditRepository) *LoanUseCase {
	return &LoanUseCase{
		userRepo:  userRepo,
		loanRepo:  loanRepo,
		auditRepo: auditRepo,
	}
}

// Apply submits a loan application. Only KYC-verified customers may apply.
func (uc *LoanUseCase) Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyLoanInput, clientIP string) (*entities.LoanApplication, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if user.KYCStatus != entities.KYCVerified {
		return nil, domainerrors.KycNotVerified("complete KYC verification before applying for a loan")
	}

	loan := &entities.LoanApplication{
		ID:                uuid.New(),
		UserID:            userID,
		Amount:            input.Amount,
		Purpose:           input.Purpose,
		TenureMonths:      input.TenureMonths,
		InterestRate:      input.InterestRate,
		ApplicationStatus: entities.LoanPending,
		ApplicationDate:   time.Now(),
	}
	if loan.TenureMonths <= 0 {
		loan.TenureMonths = entities.DefaultTenureMonths
	}
	if loan.InterestRate <= 0 {
		loan.InterestRate = entities.DefaultInterestRate
	}

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, userID, entities.ActionLoanRequest, clientIP)
	logger.Info(ctx, "loan application submitted",
		zap.String("userId", userID.String()),
		zap.String("loanId", loan.ID.String()),
		zap.Float64("amount", loan.Amount))
	return loan, nil
}

// LoanSummary decorates an application with whether a decision letter exists.
type LoanSummary struct {
	*entities.LoanApplication
	DocumentAvailable bool `json:"document_available"`
}

// MyApplications lists the caller's loan applications, newest first
func (uc *LoanUseCase) MyApplications(ctx context.Context, userID uuid.UUID) ([]*LoanSummary, error) {
	loans, err := uc.loanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	summaries := make([]*LoanSummary, 0, len(loans))
	for _, loan := range loans {
		summaries = append(summaries, &LoanSummary{
			LoanApplication:   loan,
			DocumentAvailable: loan.DecisionDocumentPath.Valid,
		})
	}
	return summaries, nil
}

// GetByID returns a single application. Customers only see their own.
func (uc *LoanUseCase) GetByID(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, loanID uuid.UUID) (*entities.LoanApplication, error) {
	loan, err := uc.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("loan application not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if callerRole == entities.UserRoleCustomer && loan.UserID != callerID {
		return nil, domainerrors.NotFound("loan application not found")
	}
	return loan, nil
}
