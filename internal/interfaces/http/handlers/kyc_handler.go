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

// KYCHandler handles customer KYC endpoints
type KYCHandler struct {
	kycUsecase    *usecases.KYCUseCase
	maxUploadSize int64
}

func NewKYCHandler(kycUsecase *usecases.KYCUseCase, maxUploadSize int64) *KYCHandler {
	return &KYCHandler{
		kycUsecase:    kycUsecase,
		maxUploadSize: maxUploadSize,
	}
}

// Status returns the caller's KYC status
// GET /api/kyc/status
func (h *KYCHandler) Status(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.kycUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "kyc status", gin.H{
		"kyc_status":  user.KYCStatus,
		"name":        user.FirstName + " " + user.LastName,
		"verified_by": user.VerifiedBy.Ptr(),
	})
}

// UploadDocument accepts a multipart identity document upload
// POST /api/kyc/upload-document
func (h *KYCHandler) UploadDocument(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var input entities.UploadDocumentInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	file, err := c.FormFile("document")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("document file is required"))
		return
	}
	if file.Size > h.maxUploadSize {
		response.Error(c, domainerrors.BadRequest("file exceeds the upload size limit"))
		return
	}

	doc, err := h.kycUsecase.UploadDocument(c.Request.Context(), userID, &input, file, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "document uploaded", doc)
}

// Documents lists the caller's uploaded documents
// GET /api/kyc/documents
func (h *KYCHandler) Documents(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	docs, err := h.kycUsecase.ListDocuments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "documents", docs)
}

// DeleteDocument removes one of the caller's documents
// DELETE /api/kyc/document/:id
func (h *KYCHandler) DeleteDocument(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid document id"))
		return
	}

	if err := h.kycUsecase.DeleteDocument(c.Request.Context(), userID, docID, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "document deleted", nil)
}
