package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. ParentID is optional;
// top-level categories carry NULL.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(100);unique;not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// HealthGoalModel mirrors the 'health_goals' table.
type HealthGoalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthGoalModel) TableName() string {
	return "health_goals"
}

// ProductCategoryModel is the link row between products and categories.
type ProductCategoryModel struct {
	ProductModelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}

// ProductHealthGoalModel is the link row between products and health goals.
type ProductHealthGoalModel struct {
	ProductModelID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	HealthGoalModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductHealthGoalModel) TableName() string {
	return "product_health_goals"
}
