package repository

import (
	"context"
	"errors"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart matches the given identity.
var ErrCartNotFound = errors.New("cart not found")

// ErrCartItemNotFound is returned when a cart item id does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines persistence operations for carts and their
// line items. Items are always loaded together with their cart.
type CartRepository interface {
	// FindByUser retrieves the cart owned by the given user, with items.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindBySessionToken retrieves a guest cart by its token, with items.
	FindBySessionToken(ctx context.Context, token string) (*entity.Cart, error)

	// FindByID retrieves a cart by primary key, with items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItemByProduct looks up a cart line by cart and product id.
	// Variant ids are deliberately ignored in the match.
	FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// FindItemByID retrieves a single cart line.
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)

	// CreateItem inserts a new cart line.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity overwrites a line's quantity. Returns
	// ErrCartItemNotFound when the line is absent.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a cart line. Returns ErrCartItemNotFound when
	// the line is absent.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// DeleteItemsByCart removes every line of the cart, leaving the cart
	// row itself in place for reuse.
	DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error
}
