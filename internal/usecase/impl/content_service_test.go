package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContentService(t *testing.T) (usecase.ContentUsecase, *MockContentRepository) {
	t.Helper()

	contentRepo := new(MockContentRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewContentService(ContentServiceParams{
		ContentRepo: contentRepo,
		Logger:      logger,
	})

	return service, contentRepo
}

func TestContentService_ListBlogPosts(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	posts := []*entity.BlogPost{
		{ID: uuid.New(), Title: "Five Signs You Need More Magnesium", IsPublished: true},
	}
	contentRepo.On("ListPublishedPosts", ctx).Return(posts, nil)

	result, err := service.ListBlogPosts(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestContentService_Subscribe_NewEmail(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.On("FindSubscriberByEmail", ctx, "new@example.com").
		Return(nil, repository.ErrSubscriberNotFound)
	contentRepo.On("CreateSubscriber", ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.NewsletterSubscriber).ID = uuid.New()
		}).
		Return(nil)

	sub, err := service.Subscribe(ctx, "new@example.com")

	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "new@example.com", sub.Email)
}

func TestContentService_Subscribe_AlreadyActiveIsIdempotent(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	existing := &entity.NewsletterSubscriber{
		ID:       uuid.New(),
		Email:    "loyal@example.com",
		IsActive: true,
	}
	contentRepo.On("FindSubscriberByEmail", ctx, "loyal@example.com").Return(existing, nil)

	sub, err := service.Subscribe(ctx, "loyal@example.com")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, sub.ID)
	contentRepo.AssertNotCalled(t, "CreateSubscriber", mock.Anything, mock.Anything)
	contentRepo.AssertNotCalled(t, "UpdateSubscriber", mock.Anything, mock.Anything)
}

func TestContentService_Subscribe_ReactivatesUnsubscribed(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	existing := &entity.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        "back@example.com",
		SubscribedAt: time.Now().Add(-48 * time.Hour),
		IsActive:     false,
	}
	contentRepo.On("FindSubscriberByEmail", ctx, "back@example.com").Return(existing, nil)
	contentRepo.On("UpdateSubscriber", ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).Return(nil)

	sub, err := service.Subscribe(ctx, "back@example.com")

	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	contentRepo.AssertNotCalled(t, "CreateSubscriber", mock.Anything, mock.Anything)
}

func TestContentService_Unsubscribe(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	existing := &entity.NewsletterSubscriber{
		ID:       uuid.New(),
		Email:    "done@example.com",
		IsActive: true,
	}
	contentRepo.On("FindSubscriberByEmail", ctx, "done@example.com").Return(existing, nil)
	contentRepo.On("UpdateSubscriber", ctx, mock.MatchedBy(func(sub *entity.NewsletterSubscriber) bool {
		return !sub.IsActive
	})).Return(nil)

	err := service.Unsubscribe(ctx, "done@example.com")

	require.NoError(t, err)
}

func TestContentService_Unsubscribe_UnknownEmail(t *testing.T) {
	service, contentRepo := createTestContentService(t)
	ctx := context.Background()

	contentRepo.On("FindSubscriberByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrSubscriberNotFound)

	err := service.Unsubscribe(ctx, "nobody@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
