package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
)

// AuditHandler exposes the audit trail to administrators
type AuditHandler struct {
	auditUsecase *usecases.AuditUseCase
}

func NewAuditHandler(auditUsecase *usecases.AuditUseCase) *AuditHandler {
	return &AuditHandler{auditUsecase: auditUsecase}
}

// Logs returns the most recent audit entries, newest first
// GET /api/audit/logs
func (h *AuditHandler) Logs(c *gin.Context) {
	entries, err := h.auditUsecase.RecentLogs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "audit logs", entries)
}
