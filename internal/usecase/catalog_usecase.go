package usecase

import (
	"context"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ListProductsInput carries the optional, ANDed catalog filters plus the
// requested page. Facets accept either a name or an id.
type ListProductsInput struct {
	Category     string
	CategoryID   *uuid.UUID
	HealthGoal   string
	HealthGoalID *uuid.UUID
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string
	Page         int
	PageSize     int
}

// CreateProductInput defines the data required to create a catalog product.
type CreateProductInput struct {
	Name          string
	Description   string
	BasePrice     decimal.Decimal
	Currency      string
	StockQuantity int
	IsActive      bool
	Attributes    map[string]any
	CategoryIDs   []uuid.UUID
	HealthGoalIDs []uuid.UUID
}

// UpdateProductInput carries partial product updates; nil fields are left
// untouched. Link id slices, when present, replace the entire link set.
type UpdateProductInput struct {
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

// AddReviewInput defines the data required to review a product.
type AddReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
}

// --- Output DTOs ---

// ProductPage is one page of catalog results together with the
// pagination envelope fields.
type ProductPage struct {
	Data      []*entity.Product
	Page      int
	PageSize  int
	TotalItem int64
	TotalPage int64
}

// CatalogUsecase defines the interface for catalog business operations:
// product browsing, admin product management, taxonomy and reviews.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListRelated(ctx context.Context, id uuid.UUID) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListHealthGoals(ctx context.Context) ([]*entity.HealthGoal, error)
	AddReview(ctx context.Context, input *AddReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
