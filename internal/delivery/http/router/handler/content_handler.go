package handler

import (
	"log/slog"
	"net/http"

	"vitacart/internal/delivery/http/response"
	"vitacart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for storefront content handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPosts returns the published blog posts, newest first.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListBlogPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogPostResponses(posts), "")
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe signs an email up for the newsletter.
func (h *ContentHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSubscriberResponse(subscriber), "Subscribed to newsletter")
}

// Unsubscribe deactivates a newsletter signup.
func (h *ContentHandler) Unsubscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed from newsletter"}, "")
}
