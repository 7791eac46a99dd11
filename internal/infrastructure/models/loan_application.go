package models

import (
	"time"

	"github.com/google/uuid"
)

type LoanApplication struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount               float64    `gorm:"not null"`
	Purpose              string     `gorm:"type:varchar(255);not null"`
	TenureMonths         int        `gorm:"not null"`
	InterestRate         float64    `gorm:"not null"`
	ApplicationStatus    string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApplicationDate      time.Time  `gorm:"not null"`
	ApprovedBy           *uuid.UUID `gorm:"type:uuid"`
	ApprovalDate         *time.Time
	DecisionDocumentPath *string `gorm:"type:varchar(255)"`
	Notes                *string `gorm:"type:text"`
}
