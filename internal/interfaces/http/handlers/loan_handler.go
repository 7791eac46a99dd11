package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/middleware"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
)

// LoanHandler handles customer loan endpoints
type LoanHandler struct {
	loanUsecase *usecases.LoanUseCase
}

func NewLoanHandler(loanUsecase *usecases.LoanUseCase) *LoanHandler {
	return &LoanHandler{loanUsecase: loanUsecase}
}

// Apply submits a loan application
// POST /api/loans/apply
func (h *LoanHandler) Apply(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var input entities.ApplyLoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	loan, err := h.loanUsecase.Apply(c.Request.Context(), userID, &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "loan application submitted", loan)
}

// MyApplications lists the caller's loan applications
// GET /api/loans/my-applications
func (h *LoanHandler) MyApplications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	loans, err := h.loanUsecase.MyApplications(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "loan applications", loans)
}

// GetByID returns a single application, customers see only their own
// GET /api/loans/:id
func (h *LoanHandler) GetByID(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid loan id"))
		return
	}

	loan, err := h.loanUsecase.GetByID(c.Request.Context(), userID, role, loanID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "loan application", loan)
}
