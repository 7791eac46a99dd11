package usecases

import (
	"context"

	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
)

// auditListLimit caps the audit listing to the most recent entries
const auditListLimit = 50

// AuditUseCase exposes the audit trail to administrators
type AuditUseCase struct {
	auditRepo repositories.AuditRepository
}

func NewAuditUseCase(auditRepo repositories.AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// RecentLogs returns the newest audit entries, newest first
func (uc *AuditUseCase) RecentLogs(ctx context.Context) ([]*entities.AuditLogEntry, error) {
	entries, err := uc.auditRepo.ListRecent(ctx, auditListLimit)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return entries, nil
}
