package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

// KYCStatus represents KYC verification status
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// User represents a registered account: customer, admin or super admin
type User struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	DateOfBirth  null.Time   `json:"dateOfBirth,omitempty"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	KYCStatus    KYCStatus   `json:"kycStatus"`
	VerifiedBy   null.String `json:"verifiedBy,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// FullName returns the display name used in letters and listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterInput represents input for customer registration
type RegisterInput struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=50"`
	LastName    string `json:"last_name" binding:"required,min=1,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAdminInput represents input for super-admin creating an admin account
type CreateAdminInput struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// AuthResult represents a successful login
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}
