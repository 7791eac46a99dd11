package entities

import (
	"time"

	"github.com/google/uuid"
)

// Audit action labels
const (
	ActionSignup         = "signup"
	ActionLogin          = "login"
	ActionDocumentUpload = "document_upload"
	ActionDocumentDelete = "document_delete"
	ActionKYCApprove     = "kyc_approve"
	ActionKYCReject      = "kyc_reject"
	ActionLoanRequest    = "loan_request"
	ActionLoanApproved   = "loan_approved"
	ActionLoanRejected   = "loan_rejected"
	ActionAdminCreated   = "admin_created"
	ActionAdminDeleted   = "admin_deleted"
)

// AuditLogEntry is an append-only record of a security-relevant action
type AuditLogEntry struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Action          string    `json:"action"`
	ActionTimestamp time.Time `json:"timestamp"`
	IPAddress       string    `json:"ip"`
}
