package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Transitions are
// forward-only: an order never moves back to an earlier state, and
// delivered/cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusRank orders the forward progression of the fulfilment states.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPaid:      1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]

	return ok
}

// CanTransitionTo reports whether moving from s to next respects the
// forward-only rule. Cancellation is allowed from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == OrderStatusCancelled || s == OrderStatusDelivered {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return statusRank[next] > statusRank[s]
}

// Order is an immutable snapshot of a cart at checkout time. Nothing on
// it changes after creation except Status.
type Order struct {
	ID                      uuid.UUID
	DisplayNumber           int64      // Human-readable sequential number, starts at 1000, unique.
	UserID                  *uuid.UUID // nil for guest checkouts.
	TotalAmount             decimal.Decimal
	Status                  OrderStatus
	ShippingAddressSnapshot AddressSnapshot // Frozen copy of the address supplied at checkout.
	BillingAddressSnapshot  AddressSnapshot
	Items                   []*OrderItem
	Payments                []*Payment
	CreatedAt               time.Time
}

// OrderItem is a frozen cart line: product name and unit price are
// copied at order-creation time so later product edits never alter
// historical orders.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Payment is a record of an external payment attempt against an order.
// Gateway interaction itself lives outside this system.
type Payment struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Amount        decimal.Decimal
	Provider      string // e.g. "stripe", "paypal".
	TransactionID string
	Status        string
	CreatedAt     time.Time
}
