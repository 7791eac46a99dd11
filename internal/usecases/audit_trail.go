package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/pkg/logger"
)

// appendAudit records an action best-effort: a failed audit write is logged
// but never fails the action itself.
func appendAudit(ctx context.Context, repo repositories.AuditRepository, userID uuid.UUID, action, clientIP string) {
	entry := &entities.AuditLogEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Action:          action,
		ActionTimestamp: time.Now(),
		IPAddress:       clientIP,
	}
	if err := repo.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "audit append failed", zap.String("action", action), zap.Error(err))
	}
}
