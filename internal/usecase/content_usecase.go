package usecase

import (
	"context"

	"vitacart/internal/domain/entity"
)

// ContentUsecase defines the interface for storefront content: blog
// posts and newsletter signups.
type ContentUsecase interface {
	ListBlogPosts(ctx context.Context) ([]*entity.BlogPost, error)
	// Subscribe signs an email up for the newsletter, reactivating a
	// previously unsubscribed row instead of duplicating it.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}
