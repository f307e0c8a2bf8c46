package domain

import "time"

// User is a credential record. RefreshTokenHash holds the fingerprint of
// the single live refresh token; issuing a new one overwrites it.
type User struct {
	ID                    int64
	Username              string
	FullName              string
	PasswordHash          string     // argon2id PHC string
	RefreshTokenHash      string     // empty when signed out or revoked
	RefreshTokenExpiresAt *time.Time // nil when signed out or revoked
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasLiveRefreshToken reports whether a refresh token is stored and has not
// yet reached its expiry at now.
func (u User) HasLiveRefreshToken(now time.Time) bool {
	return u.RefreshTokenHash != "" &&
		u.RefreshTokenExpiresAt != nil &&
		now.Before(*u.RefreshTokenExpiresAt)
}
