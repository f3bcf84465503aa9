package repository

import (
	"context"

	"vitacart/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct returns every review for the product, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
