package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a published content entry shown on the storefront.
type BlogPost struct {
	ID            uuid.UUID
	Title         string
	Content       string
	Excerpt       string
	CoverImageURL string
	AuthorName    string
	PublishedAt   time.Time
	IsPublished   bool
}

// NewsletterSubscriber is an email signup for the marketing newsletter.
// Unsubscribing flips IsActive rather than deleting the row, so a
// re-subscribe simply reactivates it.
type NewsletterSubscriber struct {
	ID           uuid.UUID
	Email        string
	SubscribedAt time.Time
	IsActive     bool
}
