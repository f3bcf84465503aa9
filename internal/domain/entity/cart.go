package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart holds a shopper's pending line items. Exactly one of UserID or
// SessionToken identifies the cart: authenticated carts carry the user
// id, guest carts carry an opaque token. Cart rows are ephemeral —
// checkout empties them and abandoned ones are simply never read again.
type Cart struct {
	ID           uuid.UUID
	UserID       *uuid.UUID // Owning user, nil for guest carts.
	SessionToken string     // Opaque token for guest carts, empty for user carts.
	Items        []*CartItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartItem is a single cart line. Quantity is always >= 1; an update
// driving it to zero or below deletes the row instead of persisting it.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	VariantID *uuid.UUID // Optional variant reference. Lines are matched by product id alone.
	Quantity  int
}
