package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. One row per user email.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PackageName   string    `gorm:"type:varchar(50);not null"`
	Amount        int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	TransactionID string    `gorm:"type:varchar(255)"`
	PaidAt        time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// MealRequestModel mirrors the 'meal_requests' table. The dedupe unique index is created by the migration.
type MealRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MealID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail   string    `gorm:"type:varchar(255);not null;index"`
	UserName    string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending"`
	RequestedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MealRequestModel) TableName() string {
	return "meal_requests"
}
