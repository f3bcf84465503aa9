package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/service"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(email string, superuser bool) (string, error) {
	args := m.Called(email, superuser)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockUserUsecase struct {
	mock.Mock
	usecase.UserUsecase
}

func (m *mockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func activeUser(email string) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    email,
		IsActive: true,
	}
}

func runMiddleware(mw echo.MiddlewareFunc, req *http.Request) (*entity.User, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	err := mw(func(c echo.Context) error {
		seen = CurrentUser(c)

		return nil
	})(c)

	return seen, err
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userUC := new(mockUserUsecase)
	mw := NewAuthMiddleware(tokenSvc, userUC)

	user := activeUser("jo@example.com")
	tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{Email: user.Email}, nil)
	userUC.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	seen, err := runMiddleware(mw.Authenticate, req)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, user.Email, seen.Email)
}

func TestAuthenticate_CookieFallback(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userUC := new(mockUserUsecase)
	mw := NewAuthMiddleware(tokenSvc, userUC)

	user := activeUser("jo@example.com")
	tokenSvc.On("ValidateToken", "cookie-token").Return(&service.Claims{Email: user.Email}, nil)
	userUC.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	seen, err := runMiddleware(mw.Authenticate, req)
	require.NoError(t, err)
	require.NotNil(t, seen)
}

func TestAuthenticate_GenericFailures(t *testing.T) {
	user := activeUser("jo@example.com")

	tests := []struct {
		name  string
		setup func(req *http.Request, tokenSvc *mockTokenService, userUC *mockUserUsecase)
	}{
		{
			name:  "missing token",
			setup: func(req *http.Request, tokenSvc *mockTokenService, userUC *mockUserUsecase) {},
		},
		{
			name: "malformed header",
			setup: func(req *http.Request, tokenSvc *mockTokenService, userUC *mockUserUsecase) {
				req.Header.Set("Authorization", "Token abc")
			},
		},
		{
			name: "invalid token",
			setup: func(req *http.Request, tokenSvc *mockTokenService, userUC *mockUserUsecase) {
				req.Header.Set("Authorization", "Bearer bad")
				tokenSvc.On("ValidateToken", "bad").Return(nil, domainerrors.ErrUnauthenticated)
			},
		},
		{
			name: "unknown account",
			setup: func(req *http.Request, tokenSvc *mockTokenService, userUC *mockUserUsecase) {
				req.Header.Set("Authorization", "Bearer orphan")
				tokenSvc.On("ValidateToken", "orphan").Return(&service.Claims{Email: user.Email}, nil)
				userUC.On("GetUserByEmail", mock.Anything, user.Email).Return(nil, domainerrors.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := new(mockTokenService)
			userUC := new(mockUserUsecase)
			mw := NewAuthMiddleware(tokenSvc, userUC)

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			tt.setup(req, tokenSvc, userUC)

			_, err := runMiddleware(mw.Authenticate, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userUC := new(mockUserUsecase)
	mw := NewAuthMiddleware(tokenSvc, userUC)

	user := activeUser("jo@example.com")
	user.IsActive = false
	tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{Email: user.Email}, nil)
	userUC.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	_, err := runMiddleware(mw.Authenticate, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOptionalAuthenticate_GuestPassesThrough(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userUC := new(mockUserUsecase)
	mw := NewAuthMiddleware(tokenSvc, userUC)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)

	seen, err := runMiddleware(mw.OptionalAuthenticate, req)
	require.NoError(t, err)
	assert.Nil(t, seen)
}

func TestOptionalAuthenticate_BadTokenStillGuest(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userUC := new(mockUserUsecase)
	mw := NewAuthMiddleware(tokenSvc, userUC)

	tokenSvc.On("ValidateToken", "bad").Return(nil, domainerrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer bad")

	seen, err := runMiddleware(mw.OptionalAuthenticate, req)
	require.NoError(t, err)
	assert.Nil(t, seen)
}

func TestRequireSuperuser(t *testing.T) {
	mw := NewAuthMiddleware(new(mockTokenService), new(mockUserUsecase))

	e := echo.New()

	t.Run("superuser passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-stats", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		admin := activeUser("admin@example.com")
		admin.IsSuperuser = true
		c.Set(ContextKeyUser, admin)

		err := mw.RequireSuperuser(func(c echo.Context) error { return nil })(c)
		require.NoError(t, err)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-stats", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(ContextKeyUser, activeUser("jo@example.com"))

		err := mw.RequireSuperuser(func(c echo.Context) error { return nil })(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("no user unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-stats", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := mw.RequireSuperuser(func(c echo.Context) error { return nil })(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
