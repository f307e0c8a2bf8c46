package apiclient

import (
	"context"
	"net/http"
)

// SignIn exchanges credentials for a token pair.
func (c *Client) SignIn(ctx context.Context, username, password string) (*TokenPair, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/v1/signin", SignInRequest{
		UserName: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := decodeJSON(resp, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh trades the last issued pair for a new one. The access token may
// already be expired.
func (c *Client) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/v1/refresh", TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := decodeJSON(resp, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}
