package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/cryptox"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrRefreshRejected is the ordinary negative outcome of a refresh: the
	// user is gone, the refresh token was rotated or revoked, or it expired.
	ErrRefreshRejected = errors.New("refresh_rejected")
)

// TokenSigner mints and reads tokens for the auth flow.
type TokenSigner interface {
	IssueAccessToken(claims jwtx.Claims, ttl time.Duration) (string, error)
	IssueRefreshToken() (string, error)
	ParseExpiredToken(token string) (*jwtx.Claims, error)
}

type AuthService struct {
	Store      store.Store
	Signer     TokenSigner
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is overridable for tests.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SignIn verifies the password and issues a fresh token pair. Any refresh
// token previously held by the user is overwritten.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	now := s.now()
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	// 1. Lookup and verify credentials
	u, err := s.Store.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("sign-in for unknown user", slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Warn("sign-in password mismatch", slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Mint tokens
	pair, refreshOpaque, err := s.issuePair(jwtx.NewClaims(u.Username), now)
	if err != nil {
		return nil, err
	}

	// 3. Persist the refresh token fingerprint with a fresh expiry
	expiresAt := now.Add(s.RefreshTTL)
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().PersistRefreshToken(ctx, u.Username, cryptox.FingerprintToken(refreshOpaque), expiresAt)
		return err
	}); err != nil {
		return nil, err
	}

	l.Info("user signed in", slog.String("username", u.Username))
	return pair, nil
}

// Refresh exchanges a (possibly expired) access token and the current
// refresh token for a new pair. The refresh token is rotated but its expiry
// is carried over, so a session cannot be extended past the original sign-in
// window.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*domain.TokenPair, error) {
	now := s.now()
	l := slogx.FromContext(ctx)

	// 1. Recover the subject, ignoring expiry
	claims, err := s.Signer.ParseExpiredToken(accessToken)
	if err != nil {
		l.Warn("refresh with invalid access token", slog.Any("error", err))
		return nil, err
	}
	username := claims.Username()

	var pair *domain.TokenPair

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. The presented refresh token must be the stored one and still live
		u, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRefreshRejected
			}
			return err
		}
		if !u.HasLiveRefreshToken(now) || !cryptox.TokenMatchesFingerprint(refreshToken, u.RefreshTokenHash) {
			return ErrRefreshRejected
		}

		// 3. Re-issue with the original subject and token id
		next := jwtx.Claims{UniqueName: u.Username}
		next.Subject = u.Username
		next.ID = claims.ID

		var refreshOpaque string
		pair, refreshOpaque, err = s.issuePair(next, now)
		if err != nil {
			return err
		}

		// 4. Rotate, keeping the existing expiry
		_, err = tx.Users().PersistRefreshToken(ctx, u.Username,
			cryptox.FingerprintToken(refreshOpaque), *u.RefreshTokenExpiresAt)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrRefreshRejected) {
			l.Warn("refresh rejected", slog.String("username", username))
		}
		return nil, err
	}

	l.Info("token refreshed", slog.String("username", username))
	return pair, nil
}

// Revoke clears the stored refresh token. Access tokens already issued stay
// valid until they expire. Reports false when the user does not exist.
func (s *AuthService) Revoke(ctx context.Context, username string) (bool, error) {
	var ok bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		ok, err = tx.Users().ClearRefreshToken(ctx, username)
		return err
	})
	if err != nil {
		return false, err
	}

	if ok {
		slogx.FromContext(ctx).Info("refresh token revoked", slog.String("username", username))
	}
	return ok, nil
}

func (s *AuthService) issuePair(claims jwtx.Claims, now time.Time) (*domain.TokenPair, string, error) {
	accessToken, err := s.Signer.IssueAccessToken(claims, s.AccessTTL)
	if err != nil {
		return nil, "", err
	}
	refreshOpaque, err := s.Signer.IssueRefreshToken()
	if err != nil {
		return nil, "", err
	}

	return &domain.TokenPair{
		Authenticated: true,
		Created:       now.Format(domain.TimestampLayout),
		Expiration:    now.Add(s.AccessTTL).Format(domain.TimestampLayout),
		AccessToken:   accessToken,
		RefreshToken:  refreshOpaque,
	}, refreshOpaque, nil
}
