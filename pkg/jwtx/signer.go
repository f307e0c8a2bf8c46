package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/restbook/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// HMACConfig configures an HS256 signer.
type HMACConfig struct {
	// Secret is the shared symmetric key. Required.
	Secret []byte

	// Issuer stamped into and expected on every token. Empty disables the check.
	Issuer string

	// Audience stamped into and expected on every token. Empty disables the check.
	Audience []string

	// Leeway tolerated on exp/nbf by Verify.
	Leeway time.Duration

	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// HMACSigner issues and verifies HS256 access tokens and mints opaque
// refresh tokens. The algorithm is pinned: tokens carrying any other "alg"
// header are rejected before the signature is even looked at.
type HMACSigner struct {
	secret   []byte
	issuer   string
	audience []string
	leeway   time.Duration
	now      func() time.Time
}

// NewHMACSigner validates the configuration and returns a signer. An empty
// secret is a configuration error and is reported as ErrMissingSecret.
func NewHMACSigner(cfg HMACConfig) (*HMACSigner, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &HMACSigner{
		secret:   cfg.Secret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		leeway:   cfg.Leeway,
		now:      now,
	}, nil
}

func (s *HMACSigner) Alg() string { return jwt.SigningMethodHS256.Alg() }

// IssueAccessToken stamps issuer, audience, iat and exp onto the claims and
// signs them with HS256.
func (s *HMACSigner) IssueAccessToken(claims Claims, ttl time.Duration) (string, error) {
	if s == nil || len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	now := s.now().UTC()
	claims.Issuer = s.issuer
	claims.Audience = jwt.ClaimStrings(s.audience)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.NotBefore = nil
	if claims.ID == "" {
		claims.ID = NewJTI()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken returns a fresh opaque refresh token. It carries no
// expiry; the caller tracks that alongside the stored value.
func (s *HMACSigner) IssueRefreshToken() (string, error) {
	return cryptox.GenerateRefreshToken()
}

// ParseExpiredToken checks signature, algorithm, issuer and audience but
// deliberately skips exp/nbf, so a refresh flow can recover the subject of
// a token that has already lapsed. Never use it to authenticate a request.
func (s *HMACSigner) ParseExpiredToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr)
}

// Verify fully validates the token, including its lifetime.
func (s *HMACSigner) Verify(tokenStr string) (*Claims, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}

	if err := claims.ValidateExpiryWithLeeway(s.now().UTC(), s.leeway); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

func (s *HMACSigner) parse(tokenStr string) (*Claims, error) {
	if s == nil || len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, classifyParseError(token, err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidClaim)
	}

	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if err := claims.ValidateAudience(s.audience); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Username() == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidClaim)
	}

	return claims, nil
}

// classifyParseError maps golang-jwt failures onto our own sentinels.
func classifyParseError(token *jwt.Token, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case token != nil && (token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg()):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
