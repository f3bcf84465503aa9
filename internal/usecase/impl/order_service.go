package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitacart/internal/delivery/context"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/domain/service"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the identified cart into an immutable order. The
// whole operation runs in one transaction: pricing, the order number,
// the order rows and emptying the cart all commit or roll back together.
// Cart lines whose product vanished since being added are skipped rather
// than failing the whole checkout.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	var placed *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		cart, err := findCheckoutCart(ctx, cartRepo, input.Identity)
		if err != nil {
			return err
		}
		if cart.IsEmpty() {
			return domainerrors.ErrCartEmpty
		}

		total := decimal.Zero
		var orderItems []*entity.OrderItem
		for _, line := range cart.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Skipping vanished product at checkout",
					slog.Any("cartID", cart.ID), slog.Any("productID", line.ProductID))

				continue
			}
			if err != nil {
				return errors.Wrap(err, "failed to price cart line")
			}

			lineTotal := product.BasePrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)
			orderItems = append(orderItems, &entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.BasePrice,
				Quantity:    line.Quantity,
			})
		}

		if len(orderItems) == 0 {
			return domainerrors.ErrCartEmpty
		}

		displayNumber, err := orderRepo.NextDisplayNumber(ctx)
		if err != nil {
			return err
		}

		order := &entity.Order{
			DisplayNumber:           displayNumber,
			UserID:                  cart.UserID,
			TotalAmount:             total,
			Status:                  entity.OrderStatusPending,
			ShippingAddressSnapshot: input.ShippingAddress,
			BillingAddressSnapshot:  input.BillingAddress,
			Items:                   orderItems,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		if err := cartRepo.DeleteItemsByCart(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to empty cart after checkout")
		}

		placed = order

		return nil
	})

	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", placed.ID),
		slog.Int64("displayNumber", placed.DisplayNumber),
		slog.String("total", placed.TotalAmount.StringFixed(2)))

	return placed, nil
}

// findCheckoutCart resolves the cart to check out. Unlike the cart
// endpoints it never creates one: nothing to check out is an error.
func findCheckoutCart(ctx context.Context, cartRepo repository.CartRepository, identity usecase.CartIdentity) (*entity.Cart, error) {
	var (
		cart *entity.Cart
		err  error
	)

	switch {
	case identity.UserID != nil:
		cart, err = cartRepo.FindByUser(ctx, *identity.UserID)
	case identity.SessionToken != "":
		cart, err = cartRepo.FindBySessionToken(ctx, identity.SessionToken)
	default:
		return nil, domainerrors.ErrCartEmpty
	}

	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartEmpty
		}

		return nil, errors.Wrap(err, "failed to find cart for checkout")
	}

	return cart, nil
}

// ListOrders returns the user's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves a single order. Non-admin callers only see their
// own; anything else reads as not found so order ids cannot be probed.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID, access usecase.OrderAccess) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	if !access.IsSuperuser {
		if order.UserID == nil || *order.UserID != access.UserID {
			return nil, domainerrors.ErrOrderNotFound
		}
	}

	return order, nil
}

// OrderPickupQR renders the pickup QR code for an order the caller may see.
func (srv *orderService) OrderPickupQR(ctx context.Context, orderID uuid.UUID, access usecase.OrderAccess) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID, access)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateOrderPickupQR(order.DisplayNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup QR code")
	}

	return png, nil
}
