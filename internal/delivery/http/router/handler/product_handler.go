package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitacart/internal/delivery/http/middleware"
	"vitacart/internal/delivery/http/response"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog browse request. All filters are
// optional query parameters and combine with AND.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input, err := parseListProductsQuery(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPageResponse(page), "")
}

// GetProduct returns one product with its associations.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// CreateProduct adds a catalog product. Superuser only.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// UpdateProduct applies partial product updates. Superuser only.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// DeleteProduct soft-deletes a product. Superuser only.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListFilters returns the available facets: every category and health
// goal, for building the storefront filter sidebar.
func (h *ProductHandler) ListFilters(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	goals, err := h.uc.ListHealthGoals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"categories":  toCategoryResponses(categories),
		"healthGoals": toHealthGoalResponses(goals),
	}, "")
}

// ListRelated returns products sharing a category with the given one.
func (h *ProductHandler) ListRelated(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListRelated(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// ListReviews returns a product's reviews, newest first.
func (h *ProductHandler) ListReviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews), "")
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReview attaches a review to a product for the authenticated caller.
func (h *ProductHandler) AddReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.AddReview(c.Request().Context(), &usecase.AddReviewInput{
		ProductID: id,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review added successfully")
}

func parseListProductsQuery(c echo.Context) (*usecase.ListProductsInput, error) {
	input := &usecase.ListProductsInput{
		Category:   c.QueryParam("category"),
		HealthGoal: c.QueryParam("health_goal"),
		Search:     c.QueryParam("search"),
		Sort:       c.QueryParam("sort"),
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid category_id")
		}
		input.CategoryID = &id
	}

	if raw := c.QueryParam("health_goal_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid health_goal_id")
		}
		input.HealthGoalID = &id
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid min_price")
		}
		input.MinPrice = &price
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid max_price")
		}
		input.MaxPrice = &price
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid page")
		}
		input.Page = page
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid page_size")
		}
		input.PageSize = size
	}

	return input, nil
}
