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

// LetterRenderer produces decision letters for loan verdicts
type LetterRenderer interface {
	RenderLoanDecision(d *entities.LoanDecision) (string, error)
}

// PendingKYCEntry pairs a pending customer with their uploaded documents
type PendingKYCEntry struct {
	User      *entities.User       `json:"user"`
	Documents []*entities.Document `json:"documents"`
}

// Statistics summarizes platform state for the admin dashboard
type Statistics struct {
	TotalCustomers int64 `json:"total_customers"`
	VerifiedKYC    int64 `json:"verified_kyc"`
	PendingKYC     int64 `json:"pending_kyc"`
	TotalLoans     int64 `json:"total_loans"`
	PendingLoans   int64 `json:"pending_loans"`
	ApprovedLoans  int64 `json:"approved_loans"`
	RejectedLoans  int64 `json:"rejected_loans"`
}

// AdminUseCase handles KYC verification and loan decisions
type AdminUseCase struct {
	userRepo  repositories.UserRepository
	docRepo   repositories.DocumentRepository
	loanRepo  repositories.LoanRepository
	auditRepo repositories.AuditRepository
	uow       repositories.UnitOfWork
	renderer  LetterRenderer
}

func NewAdminUseCase(
	userRepo repositories.UserRepository,
	docRepo repositories.DocumentRepository,
	loanRepo repositories.LoanRepository,
	auditRepo repositories.AuditRepository,
	uow repositories.UnitOfWork,
	renderer LetterRenderer,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:  userRepo,
		docRepo:   docRepo,
		loanRepo:  loanRepo,
		auditRepo: auditRepo,
		uow:       uow,
		renderer:  renderer,
	}
}

// PendingKYC lists customers awaiting verification together with their documents
func (uc *AdminUseCase) PendingKYC(ctx context.Context) ([]*PendingKYCEntry, error) {
	users, err := uc.userRepo.ListByKYCStatus(ctx, entities.KYCPending, entities.UserRoleCustomer)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	entries := make([]*PendingKYCEntry, 0, len(users))
	for _, user := range users {
		docs, err := uc.docRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		entries = append(entries, &PendingKYCEntry{User: user, Documents: docs})
	}
	return entries, nil
}

// VerifyKYC applies an approve or reject verdict to a pending customer. The
// user row and all their document rows move together in one transaction.
func (uc *AdminUseCase) VerifyKYC(ctx context.Context, adminID, targetID uuid.UUID, approve bool, clientIP string) (*entities.User, error) {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if target.Role != entities.UserRoleCustomer {
		return nil, domainerrors.InvalidTarget("only customer accounts undergo KYC verification")
	}
	if target.KYCStatus != entities.KYCPending {
		return nil, domainerrors.AlreadyDecided("KYC verification already decided for this user")
	}

	userStatus := entities.KYCRejected
	docStatus := entities.DocumentRejected
	action := entities.ActionKYCReject
	if approve {
		userStatus = entities.KYCVerified
		docStatus = entities.DocumentVerified
		action = entities.ActionKYCApprove
	}

	err = uc.uow.Do(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.UpdateKYCStatus(txCtx, targetID, userStatus, adminID); err != nil {
			return err
		}
		return uc.docRepo.UpdateStatusByUser(txCtx, targetID, docStatus)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, adminID, action, clientIP)
	logger.Info(ctx, "kyc verdict applied",
		zap.String("adminId", adminID.String()),
		zap.String("targetId", targetID.String()),
		zap.String("status", string(userStatus)))

	target.KYCStatus = userStatus
	return target, nil
}

// LoanRequests lists pending loan applications with applicant details
func (uc *AdminUseCase) LoanRequests(ctx context.Context) ([]*entities.LoanWithApplicant, error) {
	loans, err := uc.loanRepo.ListByStatusWithApplicant(ctx, entities.LoanPending)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return loans, nil
}

// DecideLoan approves or rejects a pending application. The decision letter
// is rendered first so a render failure leaves the application untouched;
// only then is the decision committed in a single transaction.
func (uc *AdminUseCase) DecideLoan(ctx context.Context, adminID, loanID uuid.UUID, approve bool, notes, clientIP string) (*entities.LoanApplication, error) {
	loan, err := uc.loanRepo.GetWithApplicant(ctx, loanID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("loan application not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if loan.ApplicationStatus != entities.LoanPending {
		return nil, domainerrors.AlreadyDecided("loan application already decided")
	}

	status := entities.LoanRejected
	action := entities.ActionLoanRejected
	if approve {
		status = entities.LoanApproved
		action = entities.ActionLoanApproved
	}

	letterPath, err := uc.renderer.RenderLoanDecision(&entities.LoanDecision{
		LoanID:        loan.ID,
		ApplicantName: loan.ApplicantName,
		Amount:        loan.Amount,
		Purpose:       loan.Purpose,
		TenureMonths:  loan.TenureMonths,
		Status:        status,
		AppliedAt:     loan.ApplicationDate,
		DecidedAt:     time.Now(),
		Notes:         notes,
	})
	if err != nil {
		return nil, domainerrors.RenderError(err)
	}

	err = uc.uow.Do(ctx, func(txCtx context.Context) error {
		return uc.loanRepo.ApplyDecision(txCtx, loanID, repositories.LoanDecisionUpdate{
			Status:               status,
			ApprovedBy:           adminID,
			DecisionDocumentPath: letterPath,
			Notes:                notes,
		})
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, adminID, action, clientIP)
	logger.Info(ctx, "loan decision applied",
		zap.String("adminId", adminID.String()),
		zap.String("loanId", loanID.String()),
		zap.String("status", string(status)))

	decided, err := uc.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return decided, nil
}

// Statistics aggregates counters for the admin dashboard
func (uc *AdminUseCase) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}

	var err error
	if stats.TotalCustomers, err = uc.userRepo.CountByRole(ctx, entities.UserRoleCustomer); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.VerifiedKYC, err = uc.userRepo.CountByKYCStatus(ctx, entities.KYCVerified); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if stats.PendingKYC, err = uc.userRepo.CountByKYCStatus(ctx, entities.KYCPending); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	counts := map[entities.LoanStatus]*int64{
		entities.LoanPending:  &stats.PendingLoans,
		entities.LoanApproved: &stats.ApprovedLoans,
		entities.LoanRejected: &stats.RejectedLoans,
	}
	for status, dest := range counts {
		n, err := uc.loanRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		*dest = n
	}
	stats.TotalLoans = stats.PendingLoans + stats.ApprovedLoans + stats.RejectedLoans
	return stats, nil
}
