package service

import "time"

// Claims is the validated content of an access token. The subject is the
// user's email address.
type Claims struct {
	Email       string
	IsSuperuser bool
	ExpiresAt   time.Time
}

// TokenService defines the interface for issuing and validating the
// signed, time-limited access tokens used by login and the auth
// middleware.
type TokenService interface {
	// GenerateAccessToken creates a signed token whose subject is the
	// user's email.
	GenerateAccessToken(email string, superuser bool) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime, used to
	// size the session cookie.
	AccessTokenDuration() time.Duration
}
