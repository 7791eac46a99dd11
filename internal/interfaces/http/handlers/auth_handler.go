package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/middleware"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUseCase
}

func NewAuthHandler(authUsecase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles customer registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.FullName(),
		"kyc_status": user.KYCStatus,
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout acknowledges a logout. Tokens are stateless, the client discards it.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Verify confirms the caller's token is still valid and the account exists
// GET /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthenticated("missing identity"))
		return
	}

	user, err := h.authUsecase.Verify(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "token valid", gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.FullName(),
		"role":       user.Role,
		"kyc_status": user.KYCStatus,
	})
}
