package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/infrastructure/models"
)

// DocumentRepository implements document data operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document row
func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	m := &models.Document{
		ID:                 doc.ID,
		UserID:             doc.UserID,
		DocumentType:       doc.DocumentType,
		DocumentNumber:     doc.DocumentNumber,
		FilePath:           doc.FilePath,
		UploadDate:         doc.UploadDate,
		VerificationStatus: string(doc.VerificationStatus),
	}
	if doc.ExpiryDate.Valid {
		exp := doc.ExpiryDate.Time
		m.ExpiryDate = &exp
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	var m models.Document
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return documentToEntity(&m), nil
}

// ListByUser lists a user's documents, newest first
func (r *DocumentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Document, error) {
	var docModels []models.Document
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_date DESC").
		Find(&docModels).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*entities.Document, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, documentToEntity(&docModels[i]))
	}
	return docs, nil
}

// UpdateStatusByUser moves every document owned by userID to the given status.
// Used by the KYC decision cascade; zero rows is not an error because a user
// may be decided before uploading anything.
func (r *DocumentRepository) UpdateStatusByUser(ctx context.Context, userID uuid.UUID, status entities.DocumentStatus) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Document{}).
		Where("user_id = ?", userID).
		Update("verification_status", string(status)).Error
}

// Delete removes a document row
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all documents owned by a user
func (r *DocumentRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Document{}, "user_id = ?", userID).Error
}

func documentToEntity(m *models.Document) *entities.Document {
	d := &entities.Document{
		ID:                 m.ID,
		UserID:             m.UserID,
		DocumentType:       m.DocumentType,
		DocumentNumber:     m.DocumentNumber,
		FilePath:           m.FilePath,
		UploadDate:         m.UploadDate,
		VerificationStatus: entities.DocumentStatus(m.VerificationStatus),
	}
	if m.ExpiryDate != nil {
		d.ExpiryDate = null.TimeFrom(*m.ExpiryDate)
	}
	return d
}
