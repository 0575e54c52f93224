package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkurbatov/lifehub/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT carrying the
// caller's OpenID in the "sub" claim.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the caller's OpenID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer, openID string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || openID == "" || tokenDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   openID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{Token: token, SignedString: tokenString, OpenID: openID}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence (the caller's OpenID)
//
// Returns the parsed token with OpenID populated, or an error if validation
// fails or the subject is missing.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionToken{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	openID, err := token.Claims.GetSubject()
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if openID == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	return models.SessionToken{Token: token, OpenID: openID}, nil
}

// ParseBearerToken extracts the raw token from an "Authorization: Bearer ..."
// header value. Returns an error when the header does not follow the
// two-part scheme/token format or the token part is empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header format")
	}
	if parts[1] == "" {
		return "", errors.New("empty bearer token")
	}

	return parts[1], nil
}
