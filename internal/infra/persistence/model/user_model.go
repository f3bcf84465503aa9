// Package model contains the GORM-specific structs that mirror the
// database schema. Mapping to and from domain entities happens in the
// repository implementations, never here.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Soft deletion is an explicit pair of columns checked by every query,
// not a GORM default scope.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PhoneNumber    string    `gorm:"type:varchar(32);unique;not null"`
	FullName       string    `gorm:"type:varchar(100)"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsSuperuser    bool      `gorm:"not null;default:false"`
	OTPCode        string    `gorm:"type:varchar(12)"`
	OTPExpiresAt   *time.Time
	Deleted        bool       `gorm:"not null;default:false"`
	DeletedAt      *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Addresses []*AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
