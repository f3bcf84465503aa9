package middleware

import (
	"strings"

	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/service"
	"vitacart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie is the HTTP-only cookie set at login. The
	// Authorization header wins when both are present.
	AccessTokenCookie = "access_token"

	// ContextKeyUser is where Authenticate stores the resolved
	// *entity.User for downstream handlers.
	ContextKeyUser = "currentUser"
)

// AuthMiddleware validates access tokens and resolves the caller's
// account. Every failure mode answers with the same generic 401 so the
// response never reveals whether an account exists.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userUC: userUC}
}

// Authenticate requires a valid access token, via the Authorization
// header or the access_token cookie, and loads the account it names.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.userUC.GetUserByEmail(c.Request().Context(), claims.Email)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}
		if !user.IsActive {
			return domainerrors.ErrForbidden.WrapMessage("Inactive user")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller when a valid token is
// present and lets the request through as a guest otherwise. Cart and
// checkout routes use it so anonymous shoppers keep working.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return next(c)
		}

		user, err := m.userUC.GetUserByEmail(c.Request().Context(), claims.Email)
		if err != nil || !user.IsActive {
			return next(c)
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireSuperuser gates the admin surface. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireSuperuser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}
		if !user.IsSuperuser {
			return domainerrors.ErrForbidden.WrapMessage("The user doesn't have enough privileges")
		}

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}

		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	return cookie.Value
}
