package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Action          string    `gorm:"type:varchar(100);not null"`
	ActionTimestamp time.Time `gorm:"not null;index"`
	IPAddress       string    `gorm:"type:varchar(45)"`
}
