package postgres

import (
	"context"
	"time"

	"vitacart/internal/domain/entity"
	"vitacart/internal/domain/repository"
	"vitacart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// statsRepository implements the read-only repository.StatsRepository
// interface backing the admin dashboard.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// RevenueBetween sums order totals created in [from, to).
func (repo *statsRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return revenue, nil
}

// OrderCountBetween counts orders created in [from, to).
func (repo *statsRepository) OrderCountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// NewUserCountBetween counts non-deleted users created in [from, to).
func (repo *statsRepository) NewUserCountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("created_at >= ? AND created_at < ? AND deleted = ?", from, to, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count new users")
	}

	return count, nil
}

// LowStockCount counts non-deleted products with stock below threshold.
func (repo *statsRepository) LowStockCount(ctx context.Context, threshold int) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("stock_quantity < ? AND deleted = ?", threshold, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low stock products")
	}

	return count, nil
}

// RecentOrders returns the latest orders with resolved customer names.
// Guest orders carry no user id and surface as "Guest".
func (repo *statsRepository) RecentOrders(ctx context.Context, limit int) ([]*repository.RecentOrder, error) {
	type orderRow struct {
		model.OrderModel
		CustomerFullName string
		CustomerEmail    string
	}

	var rows []*orderRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.*, users.full_name AS customer_full_name, users.email AS customer_email").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	recent := make([]*repository.RecentOrder, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, &repository.RecentOrder{
			Order:        toOrderDomain(&row.OrderModel),
			CustomerName: customerName(row.CustomerFullName, row.CustomerEmail),
		})
	}

	return recent, nil
}

// LowStockProducts returns non-deleted products with stock below
// threshold, scarcest first, capped at limit.
func (repo *statsRepository) LowStockProducts(ctx context.Context, threshold, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("stock_quantity < ? AND deleted = ?", threshold, false).
		Order("stock_quantity ASC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// customerName prefers the buyer's full name, falls back to email, and
// labels anonymous checkouts as Guest.
func customerName(fullName, email string) string {
	if fullName != "" {
		return fullName
	}
	if email != "" {
		return email
	}

	return "Guest"
}
