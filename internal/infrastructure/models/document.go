package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	DocumentType       string     `gorm:"type:varchar(50);not null"`
	DocumentNumber     string     `gorm:"type:text"` // AES-256-GCM blob, base64
	ExpiryDate         *time.Time `gorm:"type:date"`
	FilePath           string     `gorm:"type:varchar(255);not null"`
	UploadDate         time.Time  `gorm:"not null"`
	VerificationStatus string     `gorm:"type:varchar(20);not null;default:'pending'"`
}
