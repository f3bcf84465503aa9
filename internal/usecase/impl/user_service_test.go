package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *MockUserRepository
	hasher       *MockPasswordHasher
	tokenService *MockTokenService
	mailer       *MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	mailer := new(MockMailer)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func activeUser(email string) *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Email:          email,
		PhoneNumber:    "+15550001111",
		FullName:       "Test User",
		HashedPassword: "hashed-password",
		IsActive:       true,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("FindByPhone", ctx, "+15550002222").
		Return(nil, repository.ErrUserNotFound)
	fixtures.hasher.On("Hash", "Password123!").Return("hashed", nil)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)

	user, err := fixtures.service.Register(ctx, &usecase.RegisterUserInput{
		Email:       "new@example.com",
		PhoneNumber: "+15550002222",
		FullName:    "New User",
		Password:    "Password123!",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed", user.HashedPassword)
	assert.True(t, user.IsActive)
	fixtures.userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(activeUser("taken@example.com"), nil)

	_, err := fixtures.service.Register(ctx, &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	fixtures.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicatePhone(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("FindByPhone", ctx, "+15550001111").
		Return(activeUser("other@example.com"), nil)

	_, err := fixtures.service.Register(ctx, &usecase.RegisterUserInput{
		Email:       "new@example.com",
		PhoneNumber: "+15550001111",
		Password:    "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPhoneTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	user := activeUser("user@example.com")

	fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.On("Check", "Password123!", "hashed-password").Return(true)
	fixtures.tokenService.On("GenerateAccessToken", "user@example.com", false).
		Return("signed-token", nil)
	fixtures.tokenService.On("AccessTokenDuration").Return(30 * time.Minute)

	out, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, int64(1800), out.ExpiresIn)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").
		Return(activeUser("user@example.com"), nil)
	fixtures.hasher.On("Check", "wrong", "hashed-password").Return(false)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SoftDeletedUserLooksLikeBadPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	deletedAt := time.Now()
	user := activeUser("gone@example.com")
	user.Deleted = true
	user.DeletedAt = &deletedAt

	fixtures.userRepo.On("FindByEmail", ctx, "gone@example.com").Return(user, nil)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "gone@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fixtures.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := activeUser("user@example.com")
	user.IsActive = false

	fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.On("Check", "Password123!", "hashed-password").Return(true)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	user := activeUser("user@example.com")

	fixtures.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fixtures.hasher.On("Hash", "NewPassword1!").Return("new-hash", nil)
	fixtures.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	newPassword := "NewPassword1!"
	updated, err := fixtures.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.HashedPassword)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fixtures.userRepo.On("SoftDelete", ctx, id, mock.AnythingOfType("time.Time")).
		Return(repository.ErrUserNotFound)

	err := fixtures.service.DeleteUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fixtures.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: "nobody@example.com",
	})

	require.NoError(t, err)
	fixtures.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ForgotPassword_StoresCodeAndSendsMail(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	user := activeUser("user@example.com")

	var stored *entity.User
	fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fixtures.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.User)
		}).
		Return(nil)
	fixtures.mailer.On("Send", ctx, "user@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := fixtures.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email: "user@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), stored.OTPCode)
	require.NotNil(t, stored.OTPExpiresAt)
	assert.True(t, stored.OTPExpiresAt.After(time.Now()))
	fixtures.mailer.AssertExpectations(t)
}

func TestUserService_ResetPassword(t *testing.T) {
	expiresSoon := time.Now().Add(5 * time.Minute)
	expired := time.Now().Add(-time.Minute)

	tests := []struct {
		name        string
		user        func() *entity.User
		code        string
		expectedErr error
	}{
		{
			name: "wrong code",
			user: func() *entity.User {
				u := activeUser("user@example.com")
				u.OTPCode = "123456"
				u.OTPExpiresAt = &expiresSoon

				return u
			},
			code:        "654321",
			expectedErr: domainerrors.ErrOTPInvalid,
		},
		{
			name: "expired code",
			user: func() *entity.User {
				u := activeUser("user@example.com")
				u.OTPCode = "123456"
				u.OTPExpiresAt = &expired

				return u
			},
			code:        "123456",
			expectedErr: domainerrors.ErrOTPExpired,
		},
		{
			name:        "no reset requested",
			user:        func() *entity.User { return activeUser("user@example.com") },
			code:        "123456",
			expectedErr: domainerrors.ErrOTPNotRequested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestUserService(t)
			ctx := context.Background()

			fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").Return(tt.user(), nil)

			err := fixtures.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
				Email:       "user@example.com",
				OTPCode:     tt.code,
				NewPassword: "NewPassword1!",
			})

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	expiresSoon := time.Now().Add(5 * time.Minute)
	user := activeUser("user@example.com")
	user.OTPCode = "123456"
	user.OTPExpiresAt = &expiresSoon

	var stored *entity.User
	fixtures.userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fixtures.hasher.On("Hash", "NewPassword1!").Return("new-hash", nil)
	fixtures.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.User)
		}).
		Return(nil)

	err := fixtures.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "user@example.com",
		OTPCode:     "123456",
		NewPassword: "NewPassword1!",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "new-hash", stored.HashedPassword)
	assert.Empty(t, stored.OTPCode)
	assert.Nil(t, stored.OTPExpiresAt)
}
