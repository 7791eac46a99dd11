package repositories

import (
	"context"

	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus, verifiedBy uuid.UUID) error
	ListByKYCStatus(ctx context.Context, status entities.KYCStatus, role entities.UserRole) ([]*entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role entities.UserRole) (int64, error)
	CountByKYCStatus(ctx context.Context, status entities.KYCStatus) (int64, error)
}
