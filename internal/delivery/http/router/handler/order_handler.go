package handler

import (
	"log/slog"
	"net/http"

	"vitacart/internal/delivery/http/middleware"
	"vitacart/internal/delivery/http/response"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type checkoutRequest struct {
	ShippingAddress map[string]any `json:"shippingAddress"`
	BillingAddress  map[string]any `json:"billingAddress"`
}

// Checkout converts the caller's cart into an order. Guests check out
// with their cart session token, same as the cart routes.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	order, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Identity:        cartIdentity(c),
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// ListOrders returns the caller's own orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetOrder returns one order. Non-superusers only see their own.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	access, err := orderAccess(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id, access)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// PickupQR streams a PNG QR code carrying the order's display number
// for in-store pickup.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	access, err := orderAccess(c)
	if err != nil {
		return err
	}

	png, err := h.uc.OrderPickupQR(c.Request().Context(), id, access)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func orderAccess(c echo.Context) (usecase.OrderAccess, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return usecase.OrderAccess{}, domainerrors.ErrUnauthenticated
	}

	return usecase.OrderAccess{UserID: user.ID, IsSuperuser: user.IsSuperuser}, nil
}
