package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// ErrNoRefreshToken is returned when a session needs to refresh but holds
// no refresh token.
var ErrNoRefreshToken = errors.New("apiclient: no refresh token available")

// Session is an authenticated view of the API. A request answered with 401
// triggers a single refresh and retry.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh rotates the token pair now. Concurrent callers that saw the same
// stale token share one refresh.
func (s *Session) Refresh(ctx context.Context) error {
	return s.refresh(ctx, s.AccessToken())
}

func (s *Session) refresh(ctx context.Context, stale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine already rotated the pair.
	if s.accessToken != stale {
		return nil
	}
	if s.refreshToken == "" {
		return ErrNoRefreshToken
	}

	pair, err := s.client.Refresh(ctx, s.accessToken, s.refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	return nil
}

// Revoke clears the refresh token server side. The access token keeps
// working until it expires, but the session can no longer refresh.
func (s *Session) Revoke(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/auth/v1/revoke", nil, nil)
	if err != nil {
		return err
	}
	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.refreshToken = ""
	s.mu.Unlock()
	return nil
}

// doAuthRequest sends a bearer authenticated request. The body is kept as
// bytes so it can be replayed after a refresh.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body []byte,
	headers map[string]string,
) (*http.Response, error) {
	token := s.AccessToken()

	resp, err := s.send(ctx, token, method, path, body, headers)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	_ = resp.Body.Close()

	if err := s.refresh(ctx, token); err != nil {
		return nil, err
	}
	return s.send(ctx, s.AccessToken(), method, path, body, headers)
}

func (s *Session) send(
	ctx context.Context,
	token, method, path string,
	body []byte,
	headers map[string]string,
) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), rd)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// doAuthJSON sends v as a JSON body, or no body when v is nil.
func (s *Session) doAuthJSON(ctx context.Context, method, path string, v any) (*http.Response, error) {
	rd, headers, err := jsonBody(v)
	if err != nil {
		return nil, err
	}

	var body []byte
	if rd != nil {
		body, _ = io.ReadAll(rd)
	}
	return s.doAuthRequest(ctx, method, path, body, headers)
}
