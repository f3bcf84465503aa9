package impl

import (
	"context"
	"log/slog"
	"time"

	"vitacart/config"
	deliverycontext "vitacart/internal/delivery/context"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// relatedProductLimit caps the "you may also like" list on product pages.
const relatedProductLimit = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo     repository.ProductRepository
	reviewRepo      repository.ReviewRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize, maxPageSize := 20, 100
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Catalog.DefaultPageSize
		}
		if params.Config.Catalog.MaxPageSize > 0 {
			maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return &catalogService{
		productRepo:     params.ProductRepo,
		reviewRepo:      params.ReviewRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one filtered, paginated page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page := usecase.NormalizePage(input.Page)
	pageSize := usecase.ClampPageSize(input.PageSize, srv.defaultPageSize, srv.maxPageSize)

	filter := repository.ProductFilter{
		CategoryName:   input.Category,
		CategoryID:     input.CategoryID,
		HealthGoalName: input.HealthGoal,
		HealthGoalID:   input.HealthGoalID,
		Search:         input.Search,
		MinPrice:       input.MinPrice,
		MaxPrice:       input.MaxPrice,
		Sort:           productSort(input.Sort),
		Offset:         (page - 1) * pageSize,
		Limit:          pageSize,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Data:      products,
		Page:      page,
		PageSize:  pageSize,
		TotalItem: total,
		TotalPage: usecase.TotalPages(total, pageSize),
	}, nil
}

// productSort maps the query-string sort value to the repository's
// selector, falling back to popularity for anything unknown.
func productSort(sort string) repository.ProductSort {
	switch repository.ProductSort(sort) {
	case repository.SortPriceAsc:
		return repository.SortPriceAsc
	case repository.SortPriceDesc:
		return repository.SortPriceDesc
	default:
		return repository.SortPopularity
	}
}

// GetProduct retrieves a single non-deleted product with associations.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a new product together with its taxonomy links.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.BasePrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("base price cannot be negative")
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		BasePrice:     input.BasePrice,
		Currency:      currency,
		StockQuantity: input.StockQuantity,
		IsActive:      input.IsActive,
		Attributes:    input.Attributes,
	}

	if err := srv.productRepo.Create(ctx, product, input.CategoryIDs, input.HealthGoalIDs); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return srv.GetProduct(ctx, product.ID)
}

// UpdateProduct applies a partial patch and returns the fresh state.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.BasePrice != nil && input.BasePrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("base price cannot be negative")
	}

	patch := repository.ProductPatch{
		Name:          input.Name,
		Description:   input.Description,
		BasePrice:     input.BasePrice,
		Currency:      input.Currency,
		StockQuantity: input.StockQuantity,
		IsActive:      input.IsActive,
		Attributes:    input.Attributes,
		CategoryIDs:   input.CategoryIDs,
		HealthGoalIDs: input.HealthGoalIDs,
	}

	if err := srv.productRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a product; order history keeps its snapshots.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product soft-deleted", slog.Any("productID", id))

	return nil
}

// ListRelated returns other products shown alongside the given one.
func (srv *catalogService) ListRelated(ctx context.Context, id uuid.UUID) ([]*entity.Product, error) {
	if _, err := srv.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	related, err := srv.productRepo.ListRelated(ctx, id, relatedProductLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	return related, nil
}

// ListCategories returns the whole category taxonomy.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListHealthGoals returns every health goal tag.
func (srv *catalogService) ListHealthGoals(ctx context.Context) ([]*entity.HealthGoal, error) {
	healthGoals, err := srv.productRepo.ListHealthGoals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health goals")
	}

	return healthGoals, nil
}

// AddReview records a rating for an existing product.
func (srv *catalogService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if !review.RatingValid() {
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := srv.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// ListReviews returns every review of an existing product, newest first.
func (srv *catalogService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
