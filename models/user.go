package models

import "time"

// User roles. Role gates admin-only operations such as category creation
// and blog management.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for identity resolution and
// authorization. Identity is delegated to an external provider; the only
// stable external handle is OpenID.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the store.
	ID int64 `json:"id"`

	// OpenID is the unique external identity handle. Every request resolves
	// to a user through this value.
	OpenID string `json:"openId"`

	// Name is the display name of the user. May be empty.
	Name string `json:"name"`

	// Email is the user's contact address. May be empty.
	Email string `json:"email"`

	// LoginMethod records which external provider authenticated the user.
	LoginMethod string `json:"loginMethod,omitempty"`

	// Role is either RoleUser or RoleAdmin. Defaults to RoleUser on creation.
	Role string `json:"role"`

	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpsertUser is the payload for creating or refreshing a user record keyed
// by OpenID. Zero-valued optional fields are left untouched on update.
type UpsertUser struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	LoginMethod string `json:"loginMethod,omitempty"`
	Role        string `json:"role,omitempty"`
}
