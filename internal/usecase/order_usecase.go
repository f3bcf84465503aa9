package usecase

import (
	"context"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput defines the data required to turn a cart into an order.
// The address payloads are frozen verbatim onto the order as snapshots.
type CheckoutInput struct {
	Identity        CartIdentity
	ShippingAddress map[string]any
	BillingAddress  map[string]any
}

// OrderAccess identifies the caller on order read paths so ownership can
// be enforced. Superusers may read any order.
type OrderAccess struct {
	UserID      uuid.UUID
	IsSuperuser bool
}

// OrderUsecase defines the interface for checkout and order reads.
type OrderUsecase interface {
	// Checkout converts the identified cart into an immutable order
	// inside a single transaction, emptying the cart on success.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID, access OrderAccess) (*entity.Order, error)
	// OrderPickupQR renders a PNG QR code carrying the order's display
	// number, for in-store pickup.
	OrderPickupQR(ctx context.Context, orderID uuid.UUID, access OrderAccess) ([]byte, error)
}
