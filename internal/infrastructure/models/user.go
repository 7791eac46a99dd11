package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName    string     `gorm:"type:varchar(50);not null"`
	LastName     string     `gorm:"type:varchar(50);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string     `gorm:"type:varchar(20)"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'customer'"`
	KYCStatus    string     `gorm:"type:varchar(20);not null;default:'pending'"`
	VerifiedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
