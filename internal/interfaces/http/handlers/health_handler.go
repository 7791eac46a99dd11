package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/response"
)

// HealthHandler reports service and database liveness
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database and reports status
// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusServiceUnavailable, domainerrors.CodeStoreUnavailable, "database unreachable", err))
		return
	}

	response.Success(c, http.StatusOK, "healthy", gin.H{"database": "up"})
}
