// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/dkurbatov/lifehub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the resolved caller identity in the
// context. Used together with GetCallerFromContext for type-safe retrieval
// of the caller from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, user)
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the resolved caller from the context.
//
// Returns the caller of type models.User and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	caller, ok := utils.GetCallerFromContext(ctx)
//	if !ok {
//	    // handle unresolved identity
//	}
func GetCallerFromContext(ctx context.Context) (models.User, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.User)
	return caller, ok
}

// WithCaller returns a copy of ctx carrying the resolved caller identity.
func WithCaller(ctx context.Context, caller models.User) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}
