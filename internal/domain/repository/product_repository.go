package repository

import (
	"context"
	"errors"
	"time"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product does not exist or is
// hidden by soft deletion.
var ErrProductNotFound = errors.New("product not found")

// ProductSort selects the catalog ordering.
type ProductSort string

const (
	// SortPopularity is the default: no explicit ordering beyond stable
	// storage order, since no popularity metric is modeled.
	SortPopularity ProductSort = "popularity"
	SortPriceAsc   ProductSort = "price_asc"
	SortPriceDesc  ProductSort = "price_desc"
)

// ProductFilter captures the optional, ANDed catalog filters. Supplying
// both a name and an id for the same facet is allowed; the repository
// must join the facet's link table only once.
type ProductFilter struct {
	CategoryName   string
	CategoryID     *uuid.UUID
	HealthGoalName string
	HealthGoalID   *uuid.UUID
	Search         string // Substring match against name OR description.
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	Sort           ProductSort
	Offset         int
	Limit          int
}

// ProductPatch carries partial-update fields; nil fields are left
// untouched. Link id slices, when present, replace the entire link set.
type ProductPatch struct {
	Name          *string
	Description   *string
	BasePrice     *decimal.Decimal
	Currency      *string
	StockQuantity *int
	IsActive      *bool
	Attributes    *map[string]any
	CategoryIDs   *[]uuid.UUID
	HealthGoalIDs *[]uuid.UUID
}

// ProductRepository defines persistence operations for the catalog.
// Every read excludes soft-deleted products.
type ProductRepository interface {
	// List returns the filtered page of products with categories and
	// health goals eagerly attached, plus the total count of the
	// filtered-but-unpaginated query.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// FindByID retrieves a product with its categories, health goals,
	// variants and images attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product and its link rows.
	Create(ctx context.Context, product *entity.Product, categoryIDs, healthGoalIDs []uuid.UUID) error

	// Update applies a partial patch. Supplied link id lists replace the
	// entire link set (clear-then-insert, never a diff).
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) error

	// SoftDelete marks the product deleted at the given time.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error

	// ListRelated returns up to limit other non-deleted products.
	ListRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]*entity.Product, error)

	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListHealthGoals returns every health goal.
	ListHealthGoals(ctx context.Context) ([]*entity.HealthGoal, error)
}
