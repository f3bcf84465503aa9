// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitacart/internal/delivery/http/middleware"
	"vitacart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	ContentHandler      *handler.ContentHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	productHandler      *handler.ProductHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	contentHandler      *handler.ContentHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		productHandler:      params.ProductHandler,
		cartHandler:         params.CartHandler,
		orderHandler:        params.OrderHandler,
		contentHandler:      params.ContentHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	e.POST("/login", r.userHandler.Login)
	e.POST("/logout", r.userHandler.Logout)

	// Account routes: signup and password reset are public, the rest
	// require authentication.
	e.POST("/users", r.userHandler.Register)
	e.POST("/users/forgot-password", r.userHandler.ForgotPassword)
	e.POST("/users/reset-password", r.userHandler.ResetPassword)

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireSuperuser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Catalog routes: browsing is public, management is superuser only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/filters", r.productHandler.ListFilters)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/related", r.productHandler.ListRelated)
		productGroup.GET("/:id/reviews", r.productHandler.ListReviews)
		productGroup.POST("/:id/reviews", r.productHandler.AddReview, r.authMiddleware.Authenticate)

		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate, r.authMiddleware.RequireSuperuser)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate, r.authMiddleware.RequireSuperuser)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate, r.authMiddleware.RequireSuperuser)
	}

	// Cart routes work for guests and logged-in shoppers alike.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Checkout accepts guests; order reads require authentication.
	e.POST("/orders", r.orderHandler.Checkout, r.authMiddleware.OptionalAuthenticate)

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qrcode", r.orderHandler.PickupQR)
	}

	// Storefront content
	contentGroup := e.Group("/content")
	{
		contentGroup.GET("/posts", r.contentHandler.ListPosts)
		contentGroup.POST("/newsletter/subscribe", r.contentHandler.Subscribe)
		contentGroup.POST("/newsletter/unsubscribe", r.contentHandler.Unsubscribe)
	}

	// Back-office routes require authentication and the superuser flag.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireSuperuser)
	{
		adminGroup.GET("/dashboard-stats", r.adminHandler.DashboardStats)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
