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
	"kyc-loan.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		KYCStatus:    string(user.KYCStatus),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.DateOfBirth.Valid {
		dob := user.DateOfBirth.Time
		m.DateOfBirth = &dob
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// UpdateKYCStatus records a KYC verdict and the deciding admin
func (r *UserRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.KYCStatus, verifiedBy uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"kyc_status":  string(status),
		"verified_by": verifiedBy,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByKYCStatus lists users filtered by KYC status and role
func (r *UserRepository) ListByKYCStatus(ctx context.Context, status entities.KYCStatus, role entities.UserRole) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_status = ? AND role = ?", string(status), string(role)).
		Order("created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// ListByRole lists users with the given role
func (r *UserRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("role = ?", string(role)).
		Order("created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// Delete removes a user row
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByRole counts users with the given role
func (r *UserRepository) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	return count, err
}

// CountByKYCStatus counts customers with the given KYC status. Admin
// accounts are seeded verified and are excluded.
func (r *UserRepository) CountByKYCStatus(ctx context.Context, status entities.KYCStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("kyc_status = ? AND role = ?", string(status), string(entities.UserRoleCustomer)).
		Count(&count).Error
	return count, err
}

func userToEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		KYCStatus:    entities.KYCStatus(m.KYCStatus),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DateOfBirth != nil {
		u.DateOfBirth = null.TimeFrom(*m.DateOfBirth)
	}
	if m.VerifiedBy != nil {
		u.VerifiedBy = null.StringFrom(m.VerifiedBy.String())
	}
	return u
}
