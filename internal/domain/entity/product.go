package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Prices are exact decimals with two
// places; float arithmetic is never applied to money.
type Product struct {
	ID            uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name          string          // Display name, searched as a substring by the catalog.
	Description   string          // Free-form description, also searched.
	BasePrice     decimal.Decimal // Unit price snapshot source for checkout.
	Currency      string          // ISO currency code, defaults to USD.
	StockQuantity int             // On-hand stock at product level.
	IsActive      bool            // Merchandising flag, independent of soft deletion.
	Attributes    map[string]any  // Custom fields such as ingredients or dosage.
	Deleted       bool            // Soft-delete flag; deleted products are hidden from every read path.
	DeletedAt     *time.Time      // When the soft delete happened.

	Categories  []*Category   // Many-to-many via the category link table.
	HealthGoals []*HealthGoal // Many-to-many via the health-goal link table.
	Variants    []*Variant    // Exclusively owned SKU-level overrides.
	Images      []*ProductImage
}

// IsDeleted reports whether the product has been soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.Deleted
}

// Variant is a SKU-level override of a product's price and stock,
// e.g. "Small" or "120 capsules".
type Variant struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	SKU             string // Globally unique stock keeping unit.
	Name            string
	PriceAdjustment decimal.Decimal // Signed delta applied to the product's base price.
	StockQuantity   int
	Attributes      map[string]any
}

// ProductImage is an ordered product photo.
type ProductImage struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	URL          string
	AltText      string
	DisplayOrder int // Lower values render first.
}
