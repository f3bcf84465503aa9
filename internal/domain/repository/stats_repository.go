package repository

import (
	"context"
	"time"

	"vitacart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RecentOrder is a dashboard row joining an order with its customer name.
type RecentOrder struct {
	Order        *entity.Order
	CustomerName string // Full name or email of the buyer, "Guest" when anonymous.
}

// StatsRepository defines the aggregate queries behind the admin
// dashboard. It is read-only.
type StatsRepository interface {
	// RevenueBetween sums order totals created in [from, to).
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// OrderCountBetween counts orders created in [from, to).
	OrderCountBetween(ctx context.Context, from, to time.Time) (int64, error)

	// NewUserCountBetween counts users created in [from, to).
	NewUserCountBetween(ctx context.Context, from, to time.Time) (int64, error)

	// LowStockCount counts non-deleted products with stock below threshold.
	LowStockCount(ctx context.Context, threshold int) (int64, error)

	// RecentOrders returns the latest orders with resolved customer names.
	RecentOrders(ctx context.Context, limit int) ([]*RecentOrder, error)

	// LowStockProducts returns non-deleted products with stock below
	// threshold, capped at limit.
	LowStockProducts(ctx context.Context, threshold, limit int) ([]*entity.Product, error)
}
