package service

import (
	"context"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

// callerFromContext returns the resolved caller stored by the identity
// middleware, or ErrAuthenticationRequired when the context carries none.
func callerFromContext(ctx context.Context) (models.User, error) {
	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		return models.User{}, ErrAuthenticationRequired
	}
	return caller, nil
}

// ownerOrAdmin passes when the caller owns the record or carries the admin
// role.
func ownerOrAdmin(caller models.User, ownerID int64) error {
	if caller.ID == ownerID || caller.IsAdmin() {
		return nil
	}
	return ErrAccessDenied
}

// adminOnly passes only for admin callers.
func adminOnly(caller models.User) error {
	if caller.IsAdmin() {
		return nil
	}
	return ErrAccessDenied
}

// validationError wraps a field-level complaint in ErrValidation.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
