package postgres

import (
	"context"

	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// ListPublishedPosts returns published blog posts, newest first.
func (repo *contentRepository) ListPublishedPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	var postModels []*model.BlogPostModel

	if err := repo.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	posts := make([]*entity.BlogPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toBlogPostDomain(postM))
	}

	return posts, nil
}

// FindSubscriberByEmail looks up a newsletter subscriber, active or not.
func (repo *contentRepository) FindSubscriberByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	var subM model.NewsletterSubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by email")
	}

	return toSubscriberDomain(&subM), nil
}

// CreateSubscriber inserts a new newsletter subscriber.
func (repo *contentRepository) CreateSubscriber(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	subM := fromSubscriberDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConstraintError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	sub.ID = subM.ID

	return nil
}

// UpdateSubscriber overwrites an existing subscriber, used to flip the
// active flag on unsubscribe or re-subscribe.
func (repo *contentRepository) UpdateSubscriber(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NewsletterSubscriberModel{}).
		Where("id = ?", sub.ID).
		Updates(map[string]any{
			"is_active":     sub.IsActive,
			"subscribed_at": sub.SubscribedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscriber")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBlogPostDomain converts a GORM BlogPostModel to a domain BlogPost entity.
func toBlogPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	if data == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:            data.ID,
		Title:         data.Title,
		Content:       data.Content,
		Excerpt:       data.Excerpt,
		CoverImageURL: data.CoverImageURL,
		AuthorName:    data.AuthorName,
		PublishedAt:   data.PublishedAt,
		IsPublished:   data.IsPublished,
	}
}

// toSubscriberDomain converts a GORM NewsletterSubscriberModel to a domain entity.
func toSubscriberDomain(data *model.NewsletterSubscriberModel) *entity.NewsletterSubscriber {
	if data == nil {
		return nil
	}

	return &entity.NewsletterSubscriber{
		ID:           data.ID,
		Email:        data.Email,
		SubscribedAt: data.SubscribedAt,
		IsActive:     data.IsActive,
	}
}

// fromSubscriberDomain converts a domain entity to a GORM NewsletterSubscriberModel.
func fromSubscriberDomain(data *entity.NewsletterSubscriber) *model.NewsletterSubscriberModel {
	if data == nil {
		return nil
	}

	return &model.NewsletterSubscriberModel{
		ID:           data.ID,
		Email:        data.Email,
		SubscribedAt: data.SubscribedAt,
		IsActive:     data.IsActive,
	}
}
