package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Content       string    `gorm:"type:text;not null"`
	Excerpt       string    `gorm:"type:text"`
	CoverImageURL string    `gorm:"type:varchar(512)"`
	AuthorName    string    `gorm:"type:varchar(100)"`
	PublishedAt   time.Time `gorm:"index"`
	IsPublished   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// NewsletterSubscriberModel mirrors the 'newsletter_subscribers' table.
// Unsubscribing flips IsActive; rows are never deleted so a re-subscribe
// reactivates the existing one.
type NewsletterSubscriberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	SubscribedAt time.Time
	IsActive     bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
