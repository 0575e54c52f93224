package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps a JWT carrying a resolved identity handle.
//
// It embeds [jwt.Token] for low-level operations and
// [jwt.RegisteredClaims] for standard claim access. The "sub" claim holds
// the caller's OpenID, mirroring the external identity provider's handle.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready for the Authorization header.
type SessionToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set (RFC 7519).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OpenID is the identity handle extracted from the "sub" claim.
	OpenID string `json:"-"`
}

// GetOpenID extracts the identity handle from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *SessionToken) GetOpenID() (string, error) {
	openID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting OpenID from token: %w", err)
	}
	if openID == "" {
		return "", fmt.Errorf("empty subject in session token")
	}

	return openID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
