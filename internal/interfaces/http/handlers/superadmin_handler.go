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

// SuperAdminHandler handles admin account management endpoints
type SuperAdminHandler struct {
	superUsecase *usecases.SuperAdminUseCase
}

func NewSuperAdminHandler(superUsecase *usecases.SuperAdminUseCase) *SuperAdminHandler {
	return &SuperAdminHandler{superUsecase: superUsecase}
}

// ListAdmins returns all admin accounts
// GET /api/super/admins
func (h *SuperAdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.superUsecase.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "admins", admins)
}

// AddAdmin creates an admin account
// POST /api/super/add-admin
func (h *SuperAdminHandler) AddAdmin(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	var input entities.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	admin, err := h.superUsecase.AddAdmin(c.Request.Context(), callerID, &input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "admin created", gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.FullName(),
	})
}

// DeleteAdmin removes an admin account and everything attached to it
// POST /api/super/delete-admin
func (h *SuperAdminHandler) DeleteAdmin(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	var input struct {
		AdminID string `json:"admin_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	targetID, err := uuid.Parse(input.AdminID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	if err := h.superUsecase.DeleteAdmin(c.Request.Context(), callerID, targetID, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "admin deleted", nil)
}
