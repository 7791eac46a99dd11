package repositories

import (
	"context"

	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
)

// LoanDecisionUpdate carries the single decision write applied to a loan
type LoanDecisionUpdate struct {
	Status               entities.LoanStatus
	ApprovedBy           uuid.UUID
	DecisionDocumentPath string
	Notes                string
}

// LoanRepository defines loan application data operations
type LoanRepository interface {
	Create(ctx context.Context, loan *entities.LoanApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error)
	GetWithApplicant(ctx context.Context, id uuid.UUID) (*entities.LoanWithApplicant, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error)
	ListByStatusWithApplicant(ctx context.Context, status entities.LoanStatus) ([]*entities.LoanWithApplicant, error)
	ApplyDecision(ctx context.Context, id uuid.UUID, update LoanDecisionUpdate) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	CountByStatus(ctx context.Context, status entities.LoanStatus) (int64, error)
}
