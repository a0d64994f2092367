package models

// UserUpdate describes a partial update of a user account. Nil fields are
// left untouched; the dynamic UPDATE only touches columns that are set.
//
// Password carries the plaintext from the admin API; the service hashes it
// into PasswordHash before the update reaches the store.
type UserUpdate struct {
	ID           int64       `json:"id"`
	Username     *string     `json:"username,omitempty"`
	Password     *string     `json:"password,omitempty"`
	PasswordHash *string     `json:"-"`
	Role         *Role       `json:"role,omitempty"`
	Status       *UserStatus `json:"status,omitempty"`
}

// SuiteUpdate describes a partial update of a suite. Nil fields are left
// untouched. AmenityIDs, when non-nil, replaces the full amenity link set.
type SuiteUpdate struct {
	ID             int64        `json:"id"`
	Title          *string      `json:"title,omitempty"`
	Slug           *string      `json:"slug,omitempty"`
	TypeID         *int64       `json:"type_id,omitempty"`
	Description    *string      `json:"description,omitempty"`
	HourlyPrice    *string      `json:"hourly_price,omitempty"`
	OvernightPrice *string      `json:"overnight_price,omitempty"`
	Featured       *bool        `json:"featured,omitempty"`
	Position       *int         `json:"position,omitempty"`
	Status         *SuiteStatus `json:"status,omitempty"`
	AmenityIDs     []int64      `json:"amenity_ids,omitempty"`
}

// SuiteFilter narrows a suite listing. Zero values mean "no constraint".
type SuiteFilter struct {
	// Status limits the listing to suites in the given publication state.
	Status SuiteStatus `json:"status,omitempty"`

	// TypeID limits the listing to suites of a single suite type.
	TypeID int64 `json:"type_id,omitempty"`

	// FeaturedOnly limits the listing to featured suites.
	FeaturedOnly bool `json:"featured_only,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the admin-facing payload for creating an account: the plaintext
// password is hashed by the service before it ever reaches the store.
type NewUser struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     Role       `json:"role"`
	Status   UserStatus `json:"status,omitempty"`
}
