package handler

import (
	"time"

	"vitacart/internal/domain/entity"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response models keep persistence-only fields (password hashes, OTP
// codes, soft-delete bookkeeping) off the wire.

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	FullName    string    `json:"fullName"`
	IsActive    bool      `json:"isActive"`
	IsSuperuser bool      `json:"isSuperuser"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// LoginResponse carries the issued token alongside the account.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

// CategoryResponse is a catalog category.
type CategoryResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

func toCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, &CategoryResponse{
			ID:       category.ID,
			Name:     category.Name,
			ParentID: category.ParentID,
		})
	}

	return out
}

// HealthGoalResponse is a wellness-outcome tag.
type HealthGoalResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func toHealthGoalResponses(goals []*entity.HealthGoal) []*HealthGoalResponse {
	out := make([]*HealthGoalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, &HealthGoalResponse{
			ID:          goal.ID,
			Name:        goal.Name,
			Description: goal.Description,
		})
	}

	return out
}

// VariantResponse is a SKU-level product variant.
type VariantResponse struct {
	ID              uuid.UUID       `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	StockQuantity   int             `json:"stockQuantity"`
	Attributes      map[string]any  `json:"attributes,omitempty"`
}

// ProductImageResponse is an ordered product photo.
type ProductImageResponse struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	AltText      string    `json:"altText"`
	DisplayOrder int       `json:"displayOrder"`
}

// ProductResponse is the public shape of a catalog product.
type ProductResponse struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	BasePrice     decimal.Decimal         `json:"basePrice"`
	Currency      string                  `json:"currency"`
	StockQuantity int                     `json:"stockQuantity"`
	IsActive      bool                    `json:"isActive"`
	Attributes    map[string]any          `json:"attributes,omitempty"`
	Categories    []*CategoryResponse     `json:"categories"`
	HealthGoals   []*HealthGoalResponse   `json:"healthGoals"`
	Variants      []*VariantResponse      `json:"variants"`
	Images        []*ProductImageResponse `json:"images"`
}

func toProductResponse(product *entity.Product) *ProductResponse {
	variants := make([]*VariantResponse, 0, len(product.Variants))
	for _, variant := range product.Variants {
		variants = append(variants, &VariantResponse{
			ID:              variant.ID,
			SKU:             variant.SKU,
			Name:            variant.Name,
			PriceAdjustment: variant.PriceAdjustment,
			StockQuantity:   variant.StockQuantity,
			Attributes:      variant.Attributes,
		})
	}

	images := make([]*ProductImageResponse, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, &ProductImageResponse{
			ID:           image.ID,
			URL:          image.URL,
			AltText:      image.AltText,
			DisplayOrder: image.DisplayOrder,
		})
	}

	return &ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		BasePrice:     product.BasePrice,
		Currency:      product.Currency,
		StockQuantity: product.StockQuantity,
		IsActive:      product.IsActive,
		Attributes:    product.Attributes,
		Categories:    toCategoryResponses(product.Categories),
		HealthGoals:   toHealthGoalResponses(product.HealthGoals),
		Variants:      variants,
		Images:        images,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

// ProductPageResponse is one catalog page plus the pagination envelope.
type ProductPageResponse struct {
	Data      []*ProductResponse `json:"data"`
	Page      int                `json:"page"`
	PageSize  int                `json:"pageSize"`
	TotalItem int64              `json:"totalItem"`
	TotalPage int64              `json:"totalPage"`
}

func toProductPageResponse(page *usecase.ProductPage) *ProductPageResponse {
	return &ProductPageResponse{
		Data:      toProductResponses(page.Data),
		Page:      page.Page,
		PageSize:  page.PageSize,
		TotalItem: page.TotalItem,
		TotalPage: page.TotalPage,
	}
}

// ReviewResponse is a product review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

// CartItemResponse is a single cart line.
type CartItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int        `json:"quantity"`
}

// CartResponse is the cart's current state. SessionToken is only set on
// guest carts; clients persist it to find the cart again.
type CartResponse struct {
	ID           uuid.UUID           `json:"id"`
	SessionToken string              `json:"sessionToken,omitempty"`
	Items        []*CartItemResponse `json:"items"`
}

func toCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]*CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return &CartResponse{
		ID:           cart.ID,
		SessionToken: cart.SessionToken,
		Items:        items,
	}
}

// OrderItemResponse is a frozen order line.
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	DisplayNumber   int64                `json:"displayNumber"`
	Status          entity.OrderStatus   `json:"status"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	ShippingAddress map[string]any       `json:"shippingAddress"`
	BillingAddress  map[string]any       `json:"billingAddress"`
	Items           []*OrderItemResponse `json:"items"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &OrderResponse{
		ID:              order.ID,
		DisplayNumber:   order.DisplayNumber,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddressSnapshot,
		BillingAddress:  order.BillingAddressSnapshot,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

// BlogPostResponse is a published storefront article.
type BlogPostResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	CoverImageURL string    `json:"coverImageUrl"`
	AuthorName    string    `json:"authorName"`
	PublishedAt   time.Time `json:"publishedAt"`
}

func toBlogPostResponses(posts []*entity.BlogPost) []*BlogPostResponse {
	out := make([]*BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, &BlogPostResponse{
			ID:            post.ID,
			Title:         post.Title,
			Content:       post.Content,
			Excerpt:       post.Excerpt,
			CoverImageURL: post.CoverImageURL,
			AuthorName:    post.AuthorName,
			PublishedAt:   post.PublishedAt,
		})
	}

	return out
}

// SubscriberResponse is a newsletter signup.
type SubscriberResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	IsActive     bool      `json:"isActive"`
}

func toSubscriberResponse(subscriber *entity.NewsletterSubscriber) *SubscriberResponse {
	return &SubscriberResponse{
		ID:           subscriber.ID,
		Email:        subscriber.Email,
		SubscribedAt: subscriber.SubscribedAt,
		IsActive:     subscriber.IsActive,
	}
}

// RecentOrderResponse is a dashboard order row with the buyer resolved
// to a display name.
type RecentOrderResponse struct {
	Order        *OrderResponse `json:"order"`
	CustomerName string         `json:"customerName"`
}

// DashboardStatsResponse is the admin landing-page payload.
type DashboardStatsResponse struct {
	RevenueToday     decimal.Decimal        `json:"revenueToday"`
	RevenueGrowth    float64                `json:"revenueGrowth"`
	OrdersToday      int64                  `json:"ordersToday"`
	OrdersGrowth     float64                `json:"ordersGrowth"`
	NewUsersToday    int64                  `json:"newUsersToday"`
	NewUsersGrowth   float64                `json:"newUsersGrowth"`
	LowStockCount    int64                  `json:"lowStockCount"`
	RecentOrders     []*RecentOrderResponse `json:"recentOrders"`
	LowStockProducts []*ProductResponse     `json:"lowStockProducts"`
}

func toDashboardStatsResponse(stats *usecase.DashboardStats) *DashboardStatsResponse {
	recent := make([]*RecentOrderResponse, 0, len(stats.RecentOrders))
	for _, row := range stats.RecentOrders {
		recent = append(recent, &RecentOrderResponse{
			Order:        toOrderResponse(row.Order),
			CustomerName: row.CustomerName,
		})
	}

	return &DashboardStatsResponse{
		RevenueToday:     stats.RevenueToday,
		RevenueGrowth:    stats.RevenueGrowth,
		OrdersToday:      stats.OrdersToday,
		OrdersGrowth:     stats.OrdersGrowth,
		NewUsersToday:    stats.NewUsersToday,
		NewUsersGrowth:   stats.NewUsersGrowth,
		LowStockCount:    stats.LowStockCount,
		RecentOrders:     recent,
		LowStockProducts: toProductResponses(stats.LowStockProducts),
	}
}
