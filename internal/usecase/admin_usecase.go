package usecase

import (
	"context"

	"vitacart/internal/domain/entity"
	"vitacart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardStats is the admin landing-page payload: today's headline
// numbers, their growth against yesterday, plus the attention lists.
// Growth is a percentage rounded to one decimal; 100 when yesterday was
// zero and today is not, 0 when both are zero.
type DashboardStats struct {
	RevenueToday     decimal.Decimal
	RevenueGrowth    float64
	OrdersToday      int64
	OrdersGrowth     float64
	NewUsersToday    int64
	NewUsersGrowth   float64
	LowStockCount    int64
	RecentOrders     []*repository.RecentOrder
	LowStockProducts []*entity.Product
}

// AdminUsecase defines the interface for back-office operations.
type AdminUsecase interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	// UpdateOrderStatus moves an order along its lifecycle. Transitions
	// are forward-only; delivered and cancelled are terminal.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
