package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
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

const (
	recentOrderLimit    = 5
	lowStockListLimit   = 5
	defaultLowStockMark = 10
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	statsRepo         repository.StatsRepository
	orderRepo         repository.OrderRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	threshold := defaultLowStockMark
	if params.Config != nil && params.Config.Admin != nil && params.Config.Admin.LowStockThreshold > 0 {
		threshold = params.Config.Admin.LowStockThreshold
	}

	return &adminService{
		statsRepo:         params.StatsRepo,
		orderRepo:         params.OrderRepo,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboardStats assembles today's headline numbers, their growth
// against yesterday, plus the attention lists for the back-office
// landing page.
func (srv *adminService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)
	yesterdayStart := todayStart.Add(-24 * time.Hour)

	revenue, err := srv.statsRepo.RevenueBetween(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue")
	}
	revenueYesterday, err := srv.statsRepo.RevenueBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load yesterday revenue")
	}

	orderCount, err := srv.statsRepo.OrderCountBetween(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order count")
	}
	orderCountYesterday, err := srv.statsRepo.OrderCountBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load yesterday order count")
	}

	newUsers, err := srv.statsRepo.NewUserCountBetween(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load new user count")
	}
	newUsersYesterday, err := srv.statsRepo.NewUserCountBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load yesterday new user count")
	}

	lowStockCount, err := srv.statsRepo.LowStockCount(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load low stock count")
	}

	recent, err := srv.statsRepo.RecentOrders(ctx, recentOrderLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	lowStock, err := srv.statsRepo.LowStockProducts(ctx, srv.lowStockThreshold, lowStockListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load low stock products")
	}

	return &usecase.DashboardStats{
		RevenueToday:     revenue,
		RevenueGrowth:    growthPercent(revenue.InexactFloat64(), revenueYesterday.InexactFloat64()),
		OrdersToday:      orderCount,
		OrdersGrowth:     growthPercent(float64(orderCount), float64(orderCountYesterday)),
		NewUsersToday:    newUsers,
		NewUsersGrowth:   growthPercent(float64(newUsers), float64(newUsersYesterday)),
		LowStockCount:    lowStockCount,
		RecentOrders:     recent,
		LowStockProducts: lowStock,
	}, nil
}

// growthPercent compares today against yesterday as a percentage
// rounded to one decimal. A zero yesterday reads as 100% growth when
// today has any activity, 0% otherwise.
func growthPercent(today, yesterday float64) float64 {
	switch {
	case yesterday > 0:
		return math.Round((today-yesterday)/yesterday*1000) / 10
	case today > 0:
		return 100
	default:
		return 0
	}
}

// UpdateOrderStatus moves an order along its lifecycle, enforcing the
// forward-only transition rule.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown order status %q", status))
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrConflict.WrapMessage(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)))

	order.Status = status

	return order, nil
}
