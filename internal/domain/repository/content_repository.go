package repository

import (
	"context"
	"errors"

	"vitacart/internal/domain/entity"
)

// ErrSubscriberNotFound is returned when no newsletter subscriber
// matches the given email.
var ErrSubscriberNotFound = errors.New("newsletter subscriber not found")

// ContentRepository defines persistence operations for storefront
// content: blog posts and newsletter signups.
type ContentRepository interface {
	// ListPublishedPosts returns published posts, newest first.
	ListPublishedPosts(ctx context.Context) ([]*entity.BlogPost, error)

	// FindSubscriberByEmail looks up a newsletter subscriber.
	FindSubscriberByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)

	// CreateSubscriber inserts a new newsletter subscriber.
	CreateSubscriber(ctx context.Context, sub *entity.NewsletterSubscriber) error

	// UpdateSubscriber modifies an existing subscriber (reactivation).
	UpdateSubscriber(ctx context.Context, sub *entity.NewsletterSubscriber) error
}
