package repositories

import (
	"context"

	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
)

// DocumentRepository defines document data operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Document, error)
	UpdateStatusByUser(ctx context.Context, userID uuid.UUID, status entities.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
