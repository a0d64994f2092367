// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package models

// Role is a coarse authorization label attached to a user account.
//
// The set is open on purpose: unknown role values parse fine but never pass a
// role check, so a future role can be added without a schema change while old
// binaries keep failing closed.
type Role string

const (
	// RoleAdmin grants access to the full administrative surface.
	RoleAdmin Role = "admin"

	// RoleStaff grants access to the staff dashboard only.
	RoleStaff Role = "staff"
)

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	// StatusActive marks an account that may authenticate.
	StatusActive UserStatus = "active"

	// StatusInactive marks a disabled account. For authentication purposes an
	// inactive account is indistinguishable from a nonexistent one.
	StatusInactive UserStatus = "inactive"
)

// User represents a back-office account used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user, immutable once assigned.
	ID int64 `json:"id"`

	// Username is the unique login identifier, case-sensitive as stored.
	Username string `json:"username"`

	// PasswordHash is the self-describing credential token produced by the
	// password hasher (algorithm id, iteration count, salt and derived key).
	// Never the plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role gates access to administrative operations.
	Role Role `json:"role"`

	// Status controls whether the account may authenticate.
	Status UserStatus `json:"status"`
}

// IsActive reports whether the account may authenticate.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
