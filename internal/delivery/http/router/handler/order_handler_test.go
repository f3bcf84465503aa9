package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverymiddleware "vitacart/internal/delivery/http/middleware"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:                      uuid.New(),
		DisplayNumber:           1042,
		Status:                  entity.OrderStatusPending,
		TotalAmount:             decimal.RequireFromString("41.48"),
		ShippingAddressSnapshot: entity.AddressSnapshot{"city": "Lisbon"},
		BillingAddressSnapshot:  entity.AddressSnapshot{"city": "Lisbon"},
		Items:                   []*entity.OrderItem{},
	}
}

func TestOrderHandler_Checkout_GuestWithCookie(t *testing.T) {
	mockUC := new(MockOrderUsecase)
	handler := NewOrderHandler(mockUC, newTestLogger())

	mockUC.On("Checkout", mock.Anything, mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
		return input.Identity.SessionToken == "tok-1" &&
			input.ShippingAddress["city"] == "Lisbon"
	})).Return(testOrder(), nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/orders", `{"shippingAddress":{"city":"Lisbon"},"billingAddress":{"city":"Lisbon"}}`)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "1042")
	mockUC.AssertExpectations(t)
}

func TestOrderHandler_ListOrders_RequiresUser(t *testing.T) {
	mockUC := new(MockOrderUsecase)
	handler := NewOrderHandler(mockUC, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListOrders(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	mockUC.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
}

func TestOrderHandler_GetOrder_PassesAccess(t *testing.T) {
	mockUC := new(MockOrderUsecase)
	handler := NewOrderHandler(mockUC, newTestLogger())

	user := testUser(false)
	order := testOrder()
	mockUC.On("GetOrder", mock.Anything, order.ID, usecase.OrderAccess{UserID: user.ID, IsSuperuser: false}).
		Return(order, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	c.Set(deliverymiddleware.ContextKeyUser, user)

	require.NoError(t, handler.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockUC.AssertExpectations(t)
}

func TestOrderHandler_PickupQR_StreamsPNG(t *testing.T) {
	mockUC := new(MockOrderUsecase)
	handler := NewOrderHandler(mockUC, newTestLogger())

	user := testUser(false)
	orderID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	mockUC.On("OrderPickupQR", mock.Anything, orderID, usecase.OrderAccess{UserID: user.ID}).
		Return(png, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String()+"/qrcode", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	c.Set(deliverymiddleware.ContextKeyUser, user)

	require.NoError(t, handler.PickupQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
	mockUC.AssertExpectations(t)
}
