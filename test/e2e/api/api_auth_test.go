package api_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/restbook/pkg/apiclient"
	"github.com/stretchr/testify/require"
)

// TestSignInRefreshRevoke walks the token lifecycle: sign in, rotate the
// refresh token, reject the rotated-out one, then revoke.
func TestSignInRefreshRevoke(t *testing.T) {
	client := apiclient.New(setupAPIContainer(t, nil))
	ctx := t.Context()

	_, err := client.SignIn(ctx, adminUsername, "wrong")
	require.ErrorIs(t, err, apiclient.ErrInvalidCredentials)

	first, err := client.SignIn(ctx, adminUsername, adminPassword)
	require.NoError(t, err)
	require.True(t, first.Authenticated)

	second, err := client.Refresh(ctx, first.AccessToken, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = client.Refresh(ctx, first.AccessToken, first.RefreshToken)
	require.ErrorIs(t, err, apiclient.ErrInvalidClientRequest)

	session := client.NewSessionFromTokens(second.AccessToken, second.RefreshToken)
	require.NoError(t, session.Revoke(ctx))

	_, err = client.Refresh(ctx, second.AccessToken, second.RefreshToken)
	require.ErrorIs(t, err, apiclient.ErrInvalidClientRequest)
}

// TestTamperedAccessToken checks that a token signed with another secret is
// refused by protected endpoints and by refresh.
func TestTamperedAccessToken(t *testing.T) {
	client := apiclient.New(setupAPIContainer(t, nil))
	ctx := t.Context()

	pair, err := client.SignIn(ctx, adminUsername, adminPassword)
	require.NoError(t, err)

	parts := strings.Split(pair.AccessToken, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + ".Zm9yZ2VkLXNpZ25hdHVyZQ"
	session := client.NewSessionFromTokens(forged, "")

	_, err = session.ListBooks(ctx)
	require.ErrorIs(t, err, apiclient.ErrNoRefreshToken)

	_, err = client.Refresh(ctx, forged, pair.RefreshToken)
	require.ErrorIs(t, err, apiclient.ErrInvalidClientRequest)
}

// TestSignInRateLimited runs with the production limits: the strict profile
// allows a burst of 10 sign-in attempts per address.
func TestSignInRateLimited(t *testing.T) {
	client := apiclient.New(setupAPIContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "",
		"RATELIMIT_STRICT_WINDOW_SEC": "",
		"RATELIMIT_STRICT_BURST":      "",
	}))
	ctx := t.Context()

	var limited bool
	for range 20 {
		_, err := client.SignIn(ctx, adminUsername, "wrong")
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.Code == apiclient.ErrorCodeRateLimitExceeded {
			limited = true
			break
		}
	}
	require.True(t, limited, "sign-in should be rate limited")
}
