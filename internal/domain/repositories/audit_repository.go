package repositories

import (
	"context"

	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
)

// AuditRepository defines append-only audit log operations
type AuditRepository interface {
	Append(ctx context.Context, entry *entities.AuditLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*entities.AuditLogEntry, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
