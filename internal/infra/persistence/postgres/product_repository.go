package postgres

import (
	"context"
	"time"

	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// applyFilter translates a ProductFilter into WHERE/JOIN clauses. Each
// facet's link table is joined at most once even when both a name and an
// id are supplied for it.
func applyFilter(query *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	query = query.Where("products.deleted = ?", false)

	if filter.CategoryID != nil || filter.CategoryName != "" {
		query = query.Joins("JOIN product_categories pc ON pc.product_model_id = products.id")
		if filter.CategoryID != nil {
			query = query.Where("pc.category_model_id = ?", *filter.CategoryID)
		}
		if filter.CategoryName != "" {
			query = query.
				Joins("JOIN categories c ON c.id = pc.category_model_id").
				Where("c.name = ?", filter.CategoryName)
		}
	}

	if filter.HealthGoalID != nil || filter.HealthGoalName != "" {
		query = query.Joins("JOIN product_health_goals phg ON phg.product_model_id = products.id")
		if filter.HealthGoalID != nil {
			query = query.Where("phg.health_goal_model_id = ?", *filter.HealthGoalID)
		}
		if filter.HealthGoalName != "" {
			query = query.
				Joins("JOIN health_goals hg ON hg.id = phg.health_goal_model_id").
				Where("hg.name = ?", filter.HealthGoalName)
		}
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}

	if filter.MinPrice != nil {
		query = query.Where("products.base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.base_price <= ?", *filter.MaxPrice)
	}

	return query
}

// sortClause maps the catalog sort selector to an ORDER BY expression.
// Popularity has no backing metric, so it falls back to newest first.
func sortClause(sort repository.ProductSort) string {
	switch sort {
	case repository.SortPriceAsc:
		return "products.base_price ASC"
	case repository.SortPriceDesc:
		return "products.base_price DESC"
	default:
		return "products.created_at DESC"
	}
}

// List returns the filtered page of products plus the total count of the
// filtered-but-unpaginated query.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	base := applyFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).
		Distinct("products.id").
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := base.Session(&gorm.Session{}).
		Preload("Categories").
		Preload("HealthGoals").
		Order(sortClause(filter.Sort)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindByID retrieves a non-deleted product with every association attached.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("HealthGoals").
		Preload("Variants").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("products.id = ? AND products.deleted = ?", id, false).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product together with its link rows.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product, categoryIDs, healthGoalIDs []uuid.UUID) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConstraintError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	if err := repo.insertLinks(ctx, productM.ID, categoryIDs, healthGoalIDs); err != nil {
		return err
	}

	return nil
}

// Update applies a partial patch. Supplied link id lists replace the
// entire link set: clear then insert, never a diff.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, patch repository.ProductPatch) error {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.BasePrice != nil {
		updates["base_price"] = *patch.BasePrice
	}
	if patch.Currency != nil {
		updates["currency"] = *patch.Currency
	}
	if patch.StockQuantity != nil {
		updates["stock_quantity"] = *patch.StockQuantity
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Attributes != nil {
		updates["attributes"] = marshalJSONB(*patch.Attributes)
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ? AND deleted = ?", id, false).
			Updates(updates)

		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}
	} else {
		// Link-only patches still need the existence check.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ? AND deleted = ?", id, false).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}
	}

	if patch.CategoryIDs != nil {
		if err := repo.db.WithContext(ctx).
			Where("product_model_id = ?", id).
			Delete(&model.ProductCategoryModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear product categories")
		}
	}
	if patch.HealthGoalIDs != nil {
		if err := repo.db.WithContext(ctx).
			Where("product_model_id = ?", id).
			Delete(&model.ProductHealthGoalModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear product health goals")
		}
	}

	var categoryIDs, healthGoalIDs []uuid.UUID
	if patch.CategoryIDs != nil {
		categoryIDs = *patch.CategoryIDs
	}
	if patch.HealthGoalIDs != nil {
		healthGoalIDs = *patch.HealthGoalIDs
	}

	return repo.insertLinks(ctx, id, categoryIDs, healthGoalIDs)
}

// insertLinks writes the many-to-many rows for a product.
func (repo *productRepository) insertLinks(ctx context.Context, productID uuid.UUID, categoryIDs, healthGoalIDs []uuid.UUID) error {
	if len(categoryIDs) > 0 {
		links := make([]*model.ProductCategoryModel, 0, len(categoryIDs))
		for _, categoryID := range categoryIDs {
			links = append(links, &model.ProductCategoryModel{
				ProductModelID:  productID,
				CategoryModelID: categoryID,
			})
		}
		if err := repo.db.WithContext(ctx).Create(links).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown category reference")
			}

			return errors.Wrap(err, "failed to link product categories")
		}
	}

	if len(healthGoalIDs) > 0 {
		links := make([]*model.ProductHealthGoalModel, 0, len(healthGoalIDs))
		for _, healthGoalID := range healthGoalIDs {
			links = append(links, &model.ProductHealthGoalModel{
				ProductModelID:    productID,
				HealthGoalModelID: healthGoalID,
			})
		}
		if err := repo.db.WithContext(ctx).Create(links).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown health goal reference")
			}

			return errors.Wrap(err, "failed to link product health goals")
		}
	}

	return nil
}

// SoftDelete marks the product deleted without removing the row.
func (repo *productRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{
			"deleted":    true,
			"deleted_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListRelated returns up to limit other non-deleted products, newest first.
func (repo *productRepository) ListRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("HealthGoals").
		Where("products.id <> ? AND products.deleted = ?", excludeID, false).
		Order("products.created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ListCategories returns every category, alphabetically.
func (repo *productRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// ListHealthGoals returns every health goal, alphabetically.
func (repo *productRepository) ListHealthGoals(ctx context.Context) ([]*entity.HealthGoal, error) {
	var healthGoalModels []*model.HealthGoalModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&healthGoalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list health goals")
	}

	healthGoals := make([]*entity.HealthGoal, 0, len(healthGoalModels))
	for _, healthGoalM := range healthGoalModels {
		healthGoals = append(healthGoals, toHealthGoalDomain(healthGoalM))
	}

	return healthGoals, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		BasePrice:     data.BasePrice,
		Currency:      data.Currency,
		StockQuantity: data.StockQuantity,
		IsActive:      data.IsActive,
		Attributes:    unmarshalJSONB(data.Attributes),
		Deleted:       data.Deleted,
		DeletedAt:     data.DeletedAt,
	}

	for _, categoryM := range data.Categories {
		product.Categories = append(product.Categories, toCategoryDomain(categoryM))
	}
	for _, healthGoalM := range data.HealthGoals {
		product.HealthGoals = append(product.HealthGoals, toHealthGoalDomain(healthGoalM))
	}
	for _, variantM := range data.Variants {
		product.Variants = append(product.Variants, toVariantDomain(variantM))
	}
	for _, imageM := range data.Images {
		product.Images = append(product.Images, &entity.ProductImage{
			ID:           imageM.ID,
			ProductID:    imageM.ProductID,
			URL:          imageM.URL,
			AltText:      imageM.AltText,
			DisplayOrder: imageM.DisplayOrder,
		})
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// Associations are persisted separately, never through GORM auto-save.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		BasePrice:     data.BasePrice,
		Currency:      data.Currency,
		StockQuantity: data.StockQuantity,
		IsActive:      data.IsActive,
		Attributes:    marshalJSONB(data.Attributes),
		Deleted:       data.Deleted,
		DeletedAt:     data.DeletedAt,
	}
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:       data.ID,
		Name:     data.Name,
		ParentID: data.ParentID,
	}
}

// toHealthGoalDomain converts a GORM HealthGoalModel to a domain HealthGoal entity.
func toHealthGoalDomain(data *model.HealthGoalModel) *entity.HealthGoal {
	if data == nil {
		return nil
	}

	return &entity.HealthGoal{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

// toVariantDomain converts a GORM VariantModel to a domain Variant entity.
func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:              data.ID,
		ProductID:       data.ProductID,
		SKU:             data.SKU,
		Name:            data.Name,
		PriceAdjustment: data.PriceAdjustment,
		StockQuantity:   data.StockQuantity,
		Attributes:      unmarshalJSONB(data.Attributes),
	}
}
