package jwtx

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetimes used when configuration leaves them unset.
const (
	// DefaultAccessTokenTTL is the lifetime of a signed access token.
	DefaultAccessTokenTTL = 60 * time.Minute

	// DefaultRefreshTokenTTL is how long a stored refresh token stays usable
	// after sign-in. Refreshing does not extend it.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims are the access-token claims issued by the API.
type Claims struct {
	jwt.RegisteredClaims

	// UniqueName mirrors the subject for clients that read the
	// "unique_name" claim to display the signed in user.
	UniqueName string `json:"unique_name,omitempty"`
}

// NewClaims builds the identity part of an access token: the subject and a
// fresh token id. Issuer, audience and lifetime are stamped by the signer.
func NewClaims(username string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: username,
			ID:      NewJTI(),
		},
		UniqueName: username,
	}
}

// Username returns the authenticated username carried by the token.
func (c *Claims) Username() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.UniqueName
}

// NewJTI returns a dashless UUIDv4 for the "jti" claim.
func NewJTI() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiryWithLeeway checks exp and nbf against now, allowing leeway
// either side for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
