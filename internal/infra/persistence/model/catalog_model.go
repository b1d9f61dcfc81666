package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PackageModel mirrors the 'packages' table.
type PackageModel struct {
	ID       uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string                      `gorm:"type:varchar(50);uniqueIndex;not null"`
	Price    int64                       `gorm:"not null"`
	Level    int                         `gorm:"not null;default:0"`
	Benefits datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}

// MealModel mirrors the 'meals' table. Likes and reviews live in child tables.
type MealModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string                      `gorm:"type:varchar(200);not null"`
	Category         string                      `gorm:"type:varchar(50);index;not null"`
	Price            float64                     `gorm:"not null"`
	Description      string                      `gorm:"type:text"`
	Image            string                      `gorm:"type:text"`
	Ingredients      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	DistributorEmail string                      `gorm:"type:varchar(255)"`
	Rating           float64
	PostedAt         time.Time `gorm:"index"`

	Likes   []MealLikeModel   `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Reviews []MealReviewModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// MealLikeModel mirrors 'meal_likes'. The unique pair makes likes a set.
type MealLikeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MealID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_meal_like"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_meal_like"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealLikeModel) TableName() string {
	return "meal_likes"
}

// MealReviewModel mirrors 'meal_reviews'. The serial ID keeps insertion order.
type MealReviewModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	MealID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorEmail string    `gorm:"type:varchar(255);not null;index"`
	AuthorName  string    `gorm:"type:varchar(100)"`
	Text        string    `gorm:"type:text;not null"`
	Rating      int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealReviewModel) TableName() string {
	return "meal_reviews"
}
