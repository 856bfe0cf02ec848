package models

import "time"

// User represents a hub account used for authentication and authorization.
// The account password is unrelated to the vault master password: losing the
// account password is recoverable, losing the master password is not.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the account password on register/login requests only.
	// It is hashed with a server-side HMAC key before storage or comparison
	// and is never persisted in plain text.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored HMAC-SHA256 of the account password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
