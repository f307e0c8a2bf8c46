package apiclient

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the restbook API. Person endpoints and health checks are
// public; everything else goes through a Session obtained from SignIn.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Authenticate signs in and returns a session that refreshes its tokens on
// demand.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	pair, err := c.SignIn(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(pair.AccessToken, pair.RefreshToken), nil
}

// NewSessionFromTokens resumes a session from a previously issued pair.
func (c *Client) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}
