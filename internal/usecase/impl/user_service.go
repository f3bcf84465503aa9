// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"vitacart/config"
	deliverycontext "vitacart/internal/delivery/context"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/domain/service"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	otpTTL       time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpTTL := 10 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking both unique identifiers.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if existing != nil && !existing.IsDeleted() {
		return nil, domainerrors.ErrEmailTaken
	}

	if input.PhoneNumber != "" {
		_, err = srv.userRepo.FindByPhone(ctx, input.PhoneNumber)
		if err == nil {
			return nil, domainerrors.ErrPhoneTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check phone availability")
		}
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		FullName:       input.FullName,
		HashedPassword: hashed,
		IsActive:       true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Races with a concurrent signup land here via the unique index.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, domainerrors.ErrPhoneTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies credentials and issues an access token. Every failure
// mode returns the same error so callers cannot probe for accounts.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if user.IsDeleted() || !srv.hasher.Check(input.Password, user.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("Inactive user")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.Email, user.IsSuperuser)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// GetUser retrieves a single non-deleted account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetUserByEmail resolves the account behind a token subject.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user by email")
	}

	if user.IsDeleted() {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}

// ListUsers returns every non-deleted account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial account update.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed
		}
		user.HashedPassword = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, domainerrors.ErrPhoneTaken
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser soft-deletes an account; the row stays for order history.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User soft-deleted", slog.Any("userID", id))

	return nil
}

// ForgotPassword starts the OTP reset flow. The response is identical
// whether or not the account exists, so the endpoint cannot be used to
// enumerate emails.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}
	if user.IsDeleted() {
		return nil
	}

	code, err := generateOTPCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	expiresAt := time.Now().Add(srv.otpTTL)
	user.OTPCode = code
	user.OTPExpiresAt = &expiresAt

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.",
		code, int(srv.otpTTL.Minutes()))
	if err := srv.mailer.Send(ctx, user.Email, "Password reset code", body); err != nil {
		// The code is stored; keep the response generic either way.
		srv.log(ctx).Error("Failed to send reset email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// ResetPassword completes the OTP reset flow and clears the pending code.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrOTPInvalid
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}
	if user.IsDeleted() {
		return domainerrors.ErrOTPInvalid
	}

	if user.OTPCode == "" || user.OTPExpiresAt == nil {
		return domainerrors.ErrOTPNotRequested
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return domainerrors.ErrOTPExpired
	}
	if user.OTPCode != input.OTPCode {
		return domainerrors.ErrOTPInvalid
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	user.HashedPassword = hashed
	user.OTPCode = ""
	user.OTPExpiresAt = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// generateOTPCode produces a 6-digit numeric reset code from a
// cryptographic source.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
