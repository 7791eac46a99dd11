package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	domainRepos "kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/internal/infrastructure/models"
)

// LoanRepository implements loan application data operations
type LoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// loanApplicantRow is the join projection for admin listings
type loanApplicantRow struct {
	models.LoanApplication
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Create creates a new loan application
func (r *LoanRepository) Create(ctx context.Context, loan *entities.LoanApplication) error {
	m := &models.LoanApplication{
		ID:                loan.ID,
		UserID:            loan.UserID,
		Amount:            loan.Amount,
		Purpose:           loan.Purpose,
		TenureMonths:      loan.TenureMonths,
		InterestRate:      loan.InterestRate,
		ApplicationStatus: string(loan.ApplicationStatus),
		ApplicationDate:   loan.ApplicationDate,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a loan by ID
func (r *LoanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error) {
	var m models.LoanApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return loanToEntity(&m), nil
}

// GetWithApplicant gets a loan joined with its applicant for decision letters
func (r *LoanRepository) GetWithApplicant(ctx context.Context, id uuid.UUID) (*entities.LoanWithApplicant, error) {
	var row loanApplicantRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("loan_applications").
		Select("loan_applications.*, users.first_name, users.last_name, users.email, users.phone").
		Joins("JOIN users ON users.id = loan_applications.user_id").
		Where("loan_applications.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return rowToLoanWithApplicant(&row), nil
}

// ListByUser lists a user's loan applications, newest first
func (r *LoanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	var loanModels []models.LoanApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&loanModels).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*entities.LoanApplication, 0, len(loanModels))
	for i := range loanModels {
		loans = append(loans, loanToEntity(&loanModels[i]))
	}
	return loans, nil
}

// ListByStatusWithApplicant lists loans in the given status joined with owner details.
// The status is always a bound parameter.
func (r *LoanRepository) ListByStatusWithApplicant(ctx context.Context, status entities.LoanStatus) ([]*entities.LoanWithApplicant, error) {
	var rows []loanApplicantRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("loan_applications").
		Select("loan_applications.*, users.first_name, users.last_name, users.email, users.phone").
		Joins("JOIN users ON users.id = loan_applications.user_id").
		Where("loan_applications.application_status = ?", string(status)).
		Order("loan_applications.application_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*entities.LoanWithApplicant, 0, len(rows))
	for i := range rows {
		loans = append(loans, rowToLoanWithApplicant(&rows[i]))
	}
	return loans, nil
}

// ApplyDecision records an approve/reject verdict in a single update
func (r *LoanRepository) ApplyDecision(ctx context.Context, id uuid.UUID, update domainRepos.LoanDecisionUpdate) error {
	values := map[string]interface{}{
		"application_status":     string(update.Status),
		"approved_by":            update.ApprovedBy,
		"approval_date":          time.Now(),
		"decision_document_path": update.DecisionDocumentPath,
	}
	if update.Notes != "" {
		values["notes"] = update.Notes
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.LoanApplication{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all loans owned by a user
func (r *LoanRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.LoanApplication{}, "user_id = ?", userID).Error
}

// CountByStatus counts loans in the given status
func (r *LoanRepository) CountByStatus(ctx context.Context, status entities.LoanStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.LoanApplication{}).
		Where("application_status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func loanToEntity(m *models.LoanApplication) *entities.LoanApplication {
	l := &entities.LoanApplication{
		ID:                m.ID,
		UserID:            m.UserID,
		Amount:            m.Amount,
		Purpose:           m.Purpose,
		TenureMonths:      m.TenureMonths,
		InterestRate:      m.InterestRate,
		ApplicationStatus: entities.LoanStatus(m.ApplicationStatus),
		ApplicationDate:   m.ApplicationDate,
	}
	if m.ApprovedBy != nil {
		l.ApprovedBy = null.StringFrom(m.ApprovedBy.String())
	}
	if m.ApprovalDate != nil {
		l.ApprovalDate = null.TimeFrom(*m.ApprovalDate)
	}
	if m.DecisionDocumentPath != nil {
		l.DecisionDocumentPath = null.StringFrom(*m.DecisionDocumentPath)
	}
	if m.Notes != nil {
		l.Notes = null.StringFrom(*m.Notes)
	}
	return l
}

func rowToLoanWithApplicant(row *loanApplicantRow) *entities.LoanWithApplicant {
	return &entities.LoanWithApplicant{
		LoanApplication: *loanToEntity(&row.LoanApplication),
		ApplicantName:   row.FirstName + " " + row.LastName,
		ApplicantEmail:  row.Email,
		ApplicantPhone:  row.Phone,
	}
}
