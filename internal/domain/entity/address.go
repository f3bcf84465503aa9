// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Address is a user-owned shipping or billing location. Orders never
// reference Address rows directly; checkout copies the payload into a
// frozen snapshot instead.
type Address struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID       uuid.UUID // The owning user.
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	ZipCode      string
	IsDefault    bool // Marks the user's preferred address.
}

// AddressSnapshot is a frozen copy of an address as supplied at checkout
// time. It is persisted verbatim on the order so later edits to the
// source never alter historical records.
type AddressSnapshot map[string]any
