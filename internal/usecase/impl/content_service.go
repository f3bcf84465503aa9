package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vitacart/internal/delivery/context"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBlogPosts returns published posts, newest first.
func (srv *contentService) ListBlogPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := srv.contentRepo.ListPublishedPosts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return posts, nil
}

// Subscribe signs an email up for the newsletter. A row that already
// exists is reactivated in place; subscribing twice is not an error.
func (srv *contentService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	existing, err := srv.contentRepo.FindSubscriberByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrSubscriberNotFound) {
		return nil, errors.Wrap(err, "failed to look up subscriber")
	}

	if existing != nil {
		if existing.IsActive {
			return existing, nil
		}

		existing.IsActive = true
		existing.SubscribedAt = time.Now()
		if err := srv.contentRepo.UpdateSubscriber(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate subscriber")
		}
		srv.log(ctx).Info("Newsletter subscriber reactivated", slog.Any("subscriberID", existing.ID))

		return existing, nil
	}

	sub := &entity.NewsletterSubscriber{
		Email:        email,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	if err := srv.contentRepo.CreateSubscriber(ctx, sub); err != nil {
		return nil, errors.Wrap(err, "failed to create subscriber")
	}
	srv.log(ctx).Info("Newsletter subscriber added", slog.Any("subscriberID", sub.ID))

	return sub, nil
}

// Unsubscribe flips the subscriber inactive; the row stays so a later
// re-subscribe reuses it.
func (srv *contentService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := srv.contentRepo.FindSubscriberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("Subscriber not found")
		}

		return errors.Wrap(err, "failed to look up subscriber")
	}

	if !sub.IsActive {
		return nil
	}

	sub.IsActive = false
	if err := srv.contentRepo.UpdateSubscriber(ctx, sub); err != nil {
		return errors.Wrap(err, "failed to deactivate subscriber")
	}

	return nil
}
