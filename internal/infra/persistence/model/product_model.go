package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Money columns use exact
// decimals; Attributes is raw JSONB marshalled in the repository layer.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(255);not null;index"`
	Description   string          `gorm:"type:text"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'"`
	StockQuantity int             `gorm:"not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
	Attributes    []byte          `gorm:"type:jsonb"`
	Deleted       bool            `gorm:"not null;default:false"`
	DeletedAt     *time.Time      `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Categories  []*CategoryModel     `gorm:"many2many:product_categories"`
	HealthGoals []*HealthGoalModel   `gorm:"many2many:product_health_goals"`
	Variants    []*VariantModel      `gorm:"foreignKey:ProductID"`
	Images      []*ProductImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'product_variants' table. SKUs are globally
// unique; PriceAdjustment is a signed delta on the product base price.
type VariantModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU             string          `gorm:"type:varchar(64);unique;not null"`
	Name            string          `gorm:"type:varchar(100);not null"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	StockQuantity   int             `gorm:"not null;default:0"`
	Attributes      []byte          `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "product_variants"
}

// ProductImageModel mirrors the 'product_images' table. DisplayOrder
// controls render order, lowest first.
type ProductImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	URL          string    `gorm:"type:varchar(512);not null"`
	AltText      string    `gorm:"type:varchar(255)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
