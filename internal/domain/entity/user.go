// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Credentials are stored as a bcrypt
// hash; the OTP fields back the password-reset flow and are cleared once
// a reset completes.
type User struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email          string     // Unique login identifier.
	PhoneNumber    string     // Unique contact number, validated at signup.
	FullName       string     // Optional display name.
	HashedPassword string     // bcrypt hash of the user's password. Never exposed over HTTP.
	IsActive       bool       // Whether the account may log in.
	IsSuperuser    bool       // Grants access to the admin surface.
	OTPCode        string     // One-time password-reset code, empty when no reset is pending.
	OTPExpiresAt   *time.Time // Expiry of OTPCode.
	Deleted        bool       // Soft-delete flag; deleted users are hidden from every read path.
	DeletedAt      *time.Time // When the soft delete happened.
	CreatedAt      time.Time  // Timestamp of account creation.
}

// IsDeleted reports whether the user has been soft-deleted. Every query
// path must branch on this explicitly rather than relying on a default
// ORM scope.
func (u *User) IsDeleted() bool {
	return u.Deleted
}

// OTPValid reports whether the supplied reset code matches the pending
// one and has not expired.
func (u *User) OTPValid(code string, now time.Time) bool {
	if u.OTPCode == "" || u.OTPExpiresAt == nil {
		return false
	}

	return u.OTPCode == code && now.Before(*u.OTPExpiresAt)
}
