package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vitacart/internal/delivery/http/middleware"
	"vitacart/internal/delivery/http/response"
	"vitacart/internal/domain/entity"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartSessionCookie carries a guest cart's session token between
// requests. Authenticated shoppers don't need it.
const CartSessionCookie = "cart_session"

const cartSessionMaxAge = 30 * 24 * time.Hour

// CartHandler holds dependencies for shopping-cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart returns the caller's cart, creating one when none exists.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), cartIdentity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSessionCookie(c, cart)

	return response.Success(c, http.StatusOK, toCartResponse(cart), "")
}

type addCartItemRequest struct {
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId"`
	Quantity  int        `json:"quantity"`
}

// AddItem puts a product into the cart, merging with an existing line
// for the same product.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), &usecase.AddItemInput{
		Identity:  cartIdentity(c),
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSessionCookie(c, cart)

	return response.Success(c, http.StatusCreated, toCartResponse(cart), "Item added to cart")
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem overwrites a line's quantity; zero or below removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	cart, err := h.uc.UpdateItem(c.Request().Context(), &usecase.UpdateItemInput{
		Identity: cartIdentity(c),
		ItemID:   itemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSessionCookie(c, cart)

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Cart updated")
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), cartIdentity(c), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.refreshSessionCookie(c, cart)

	return response.Success(c, http.StatusOK, toCartResponse(cart), "Item removed from cart")
}

// refreshSessionCookie keeps the guest token cookie in sync with the
// cart the usecase returned; stale tokens get replaced with the fresh
// cart's token.
func (h *CartHandler) refreshSessionCookie(c echo.Context, cart *entity.Cart) {
	if cart.SessionToken == "" {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     CartSessionCookie,
		Value:    cart.SessionToken,
		Path:     "/",
		MaxAge:   int(cartSessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// cartIdentity names the cart to operate on: the logged-in user when
// present, otherwise the guest session token from the query string or
// cookie.
func cartIdentity(c echo.Context) usecase.CartIdentity {
	if user := middleware.CurrentUser(c); user != nil {
		id := user.ID

		return usecase.CartIdentity{UserID: &id}
	}

	token := c.QueryParam("session_token")
	if token == "" {
		if cookie, err := c.Cookie(CartSessionCookie); err == nil {
			token = cookie.Value
		}
	}

	return usecase.CartIdentity{SessionToken: token}
}
