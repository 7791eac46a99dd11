package usecases

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/logger"
)

// DocumentStore abstracts uploaded-file persistence
type DocumentStore interface {
	SaveUpload(ownerID uuid.UUID, header *multipart.FileHeader) (string, error)
	Remove(path string) error
}

var allowedDocumentExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// KYCUseCase handles document upload and KYC state reads for customers
type KYCUseCase struct {
	userRepo  repositories.UserRepository
	docRepo   repositories.DocumentRepository
	auditRepo repositories.AuditRepository
	store     DocumentStore
	cipher    *crypto.FieldCipher
}

func NewKYCUseCase(
	userRepo repositories.UserRepository,
	docRepo repositories.DocumentRepository,
	auditRepo repositories.AuditRepository,
	store DocumentStore,
	cipher *crypto.FieldCipher,
) *KYCUseCase {
	return &KYCUseCase{
		userRepo:  userRepo,
		docRepo:   docRepo,
		auditRepo: auditRepo,
		store:     store,
		cipher:    cipher,
	}
}

// Status returns the caller's current KYC status and verifier, if any
func (uc *KYCUseCase) Status(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// UploadDocument stores an identity document for the caller. The document
// number is encrypted before it reaches the database.
func (uc *KYCUseCase) UploadDocument(ctx context.Context, userID uuid.UUID, input *entities.UploadDocumentInput, file *multipart.FileHeader, clientIP string) (*entities.Document, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedDocumentExtensions[ext] {
		return nil, domainerrors.BadRequest("file type not allowed, use png, jpg, jpeg or pdf")
	}

	doc := &entities.Document{
		ID:                 uuid.New(),
		UserID:             userID,
		DocumentType:       strings.TrimSpace(input.DocumentType),
		UploadDate:         time.Now(),
		VerificationStatus: entities.DocumentPending,
	}
	if input.DocumentNumber != "" {
		encrypted, err := uc.cipher.Encrypt(input.DocumentNumber)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		doc.DocumentNumber = encrypted
	}
	if input.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
		if err != nil {
			return nil, domainerrors.BadRequest("expiry_date must be YYYY-MM-DD")
		}
		doc.ExpiryDate = null.TimeFrom(expiry)
	}

	path, err := uc.store.SaveUpload(userID, file)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	doc.FilePath = path

	if err := uc.docRepo.Create(ctx, doc); err != nil {
		// avoid orphaned files when the row never lands
		if rmErr := uc.store.Remove(path); rmErr != nil {
			logger.Warn(ctx, "orphaned upload cleanup failed", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, domainerrors.InternalError(err)
	}

	appendAudit(ctx, uc.auditRepo, userID, entities.ActionDocumentUpload, clientIP)
	logger.Info(ctx, "document uploaded",
		zap.String("userId", userID.String()),
		zap.String("documentId", doc.ID.String()),
		zap.String("type", doc.DocumentType))
	return doc, nil
}

// ListDocuments returns the caller's documents with decrypted numbers
func (uc *KYCUseCase) ListDocuments(ctx context.Context, userID uuid.UUID) ([]*entities.Document, error) {
	docs, err := uc.docRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	for _, doc := range docs {
		if doc.DocumentNumber == "" {
			continue
		}
		plain, err := uc.cipher.Decrypt(doc.DocumentNumber)
		if err != nil {
			logger.Warn(ctx, "document number decrypt failed", zap.String("documentId", doc.ID.String()))
			doc.DocumentNumber = ""
			continue
		}
		doc.DocumentNumber = plain
	}
	return docs, nil
}

// DeleteDocument removes one of the caller's own documents and its stored file
func (uc *KYCUseCase) DeleteDocument(ctx context.Context, userID, docID uuid.UUID, clientIP string) error {
	doc, err := uc.docRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("document not found")
		}
		return domainerrors.InternalError(err)
	}
	if doc.UserID != userID {
		return domainerrors.NotFound("document not found")
	}

	if err := uc.docRepo.Delete(ctx, docID); err != nil {
		return domainerrors.InternalError(err)
	}
	if err := uc.store.Remove(doc.FilePath); err != nil {
		logger.Warn(ctx, "stored file removal failed", zap.String("path", doc.FilePath), zap.Error(err))
	}

	appendAudit(ctx, uc.auditRepo, userID, entities.ActionDocumentDelete, clientIP)
	return nil
}
