package repository

import (
	"context"
	"errors"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for immutable orders.
type OrderRepository interface {
	// NextDisplayNumber reserves the next human-readable order number.
	// The sequence starts at 1000. Must be called inside the checkout
	// transaction so concurrent checkouts cannot collide.
	NextDisplayNumber(ctx context.Context) (int64, error)

	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and payments.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first, with items.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus overwrites the order status. The caller is responsible
	// for enforcing the forward-only transition rule.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
