package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/metrics"
	"kyc-loan.backend/internal/interfaces/http/middleware"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
)

// AdminHandler handles KYC review and loan decision endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUseCase
}

func NewAdminHandler(adminUsecase *usecases.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// verdictInput carries an approve/reject verdict with optional notes
type verdictInput struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Notes  string `json:"notes" binding:"omitempty,max=500"`
}

// PendingKYC lists customers awaiting verification
// GET /api/admin/pending-kyc
func (h *AdminHandler) PendingKYC(c *gin.Context) {
	entries, err := h.adminUsecase.PendingKYC(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "pending kyc", entries)
}

// VerifyKYC applies a KYC verdict to a customer
// POST /api/admin/verify-kyc/:user_id
func (h *AdminHandler) VerifyKYC(c *gin.Context) {
	adminID, _ := middleware.GetUserID(c)

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input verdictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	approve := input.Action == "approve"
	user, err := h.adminUsecase.VerifyKYC(c.Request.Context(), adminID, targetID, approve, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.CountKYCVerdict(string(user.KYCStatus))
	response.Success(c, http.StatusOK, "kyc "+string(user.KYCStatus), gin.H{
		"user_id":    user.ID,
		"kyc_status": user.KYCStatus,
	})
}

// LoanRequests lists pending loan applications with applicant details
// GET /api/admin/loan-requests
func (h *AdminHandler) LoanRequests(c *gin.Context) {
	loans, err := h.adminUsecase.LoanRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "pending loan requests", loans)
}

// ApproveLoan approves a pending application
// POST /api/admin/approve-loan/:id
func (h *AdminHandler) ApproveLoan(c *gin.Context) {
	h.decideLoan(c, true)
}

// RejectLoan rejects a pending application
// POST /api/admin/reject-loan/:id
func (h *AdminHandler) RejectLoan(c *gin.Context) {
	h.decideLoan(c, false)
}

func (h *AdminHandler) decideLoan(c *gin.Context, approve bool) {
	adminID, _ := middleware.GetUserID(c)

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid loan id"))
		return
	}

	// notes are optional and the body may be empty entirely
	var input struct {
		Notes string `json:"notes" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	loan, err := h.adminUsecase.DecideLoan(c.Request.Context(), adminID, loanID, approve, strings.TrimSpace(input.Notes), c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.CountLoanDecision(string(loan.ApplicationStatus))
	response.Success(c, http.StatusOK, "loan "+string(loan.ApplicationStatus), loan)
}

// Statistics returns dashboard counters
// GET /api/admin/statistics
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.adminUsecase.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "statistics", stats)
}
