// Package utils holds small helpers shared across the server and client:
// context keys, HMAC hashing, JWT issuing and validation, JSON response
// writing and id generation.
package utils

import "context"

// contextKey is a private type for context keys so values stored by this
// package cannot collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the authentication middleware
// stores the authenticated user's id.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored by the authentication
// middleware. ok is false when the value is missing or has the wrong type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
