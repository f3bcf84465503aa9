package usecase

import (
	"context"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartIdentity names the cart to operate on. A user id wins over a
// session token; with neither set a fresh guest cart is created.
type CartIdentity struct {
	UserID       *uuid.UUID
	SessionToken string
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a product to a cart.
type AddItemInput struct {
	Identity  CartIdentity
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// UpdateItemInput overwrites a cart line's quantity. Zero or below
// removes the line instead.
type UpdateItemInput struct {
	Identity CartIdentity
	ItemID   uuid.UUID
	Quantity int
}

// CartUsecase defines the interface for shopping-cart business
// operations. Every call returns the cart's current state so the
// delivery layer can refresh the guest session cookie from it.
type CartUsecase interface {
	GetCart(ctx context.Context, identity CartIdentity) (*entity.Cart, error)
	AddItem(ctx context.Context, input *AddItemInput) (*entity.Cart, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Cart, error)
	RemoveItem(ctx context.Context, identity CartIdentity, itemID uuid.UUID) (*entity.Cart, error)
}
