package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DocumentStatus represents a document's verification status.
// Documents follow their owner's KYC verdict.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

// Document represents an uploaded identity document
type Document struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"userId"`
	DocumentType       string         `json:"documentType"`
	DocumentNumber     string         `json:"documentNumber,omitempty"` // encrypted at rest
	ExpiryDate         null.Time      `json:"expiryDate,omitempty"`
	FilePath           string         `json:"-"`
	UploadDate         time.Time      `json:"uploadDate"`
	VerificationStatus DocumentStatus `json:"status"`
}

// UploadDocumentInput represents the multipart form fields accompanying an upload
type UploadDocumentInput struct {
	DocumentType   string `form:"document_type" binding:"required,min=2,max=50"`
	DocumentNumber string `form:"document_number" binding:"omitempty,max=50"`
	ExpiryDate     string `form:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
}
