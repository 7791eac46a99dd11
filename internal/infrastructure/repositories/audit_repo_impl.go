package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/infrastructure/models"
)

// AuditRepository implements append-only audit log operations
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append writes one audit entry
func (r *AuditRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	m := &models.AuditLog{
		ID:              entry.ID,
		UserID:          entry.UserID,
		Action:          entry.Action,
		ActionTimestamp: entry.ActionTimestamp,
		IPAddress:       entry.IPAddress,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListRecent returns the most recent entries, newest first
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*entities.AuditLogEntry, error) {
	var logModels []models.AuditLog
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("action_timestamp DESC").
		Limit(limit).
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.AuditLogEntry, 0, len(logModels))
	for _, m := range logModels {
		entries = append(entries, &entities.AuditLogEntry{
			ID:              m.ID,
			UserID:          m.UserID,
			Action:          m.Action,
			ActionTimestamp: m.ActionTimestamp,
			IPAddress:       m.IPAddress,
		})
	}
	return entries, nil
}

// DeleteByUser removes a user's audit entries as part of the account deletion cascade
func (r *AuditRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.AuditLog{}, "user_id = ?", userID).Error
}
