package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"civic_backend/internal/guard"
	"civic_backend/internal/model"
)

// Client - API client that attaches the access token to outbound calls and
// retries exactly once through a refresh on a 401. A second authorization
// failure clears the session so the caller can route to login. Concurrent
// calls may each trigger a refresh; refresh is idempotent server-side, so
// duplicates are tolerated rather than coordinated.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// SetSession - installs a token pair, typically after login or register.
func (c *Client) SetSession(accessToken string, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

// ClearSession - drops both tokens; subsequent calls go out unauthenticated.
func (c *Client) ClearSession() {
	c.SetSession("", "")
}

// HasSession - both tokens present. A partial pair counts as no session.
func (c *Client) HasSession() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != "" && c.refreshToken != ""
}

// Do - one API call. body is JSON-encoded when non-nil; a 2xx response is
// decoded into out when non-nil.
func (c *Client) Do(ctx context.Context, method string, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = encoded
	}

	res, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized {
		drain(res)

		if err := c.refresh(ctx); err != nil {
			c.ClearSession()
			return err
		}

		res, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
		if res.StatusCode == http.StatusUnauthorized {
			drain(res)
			c.ClearSession()
			return model.ErrExpiredOrInvalidRefreshToken
		}
	}
	defer drain(res)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("api call %s %s: unexpected status %d", method, path, res.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, method string, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	accessToken := c.accessToken
	c.mu.RUnlock()
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	return c.httpClient.Do(req)
}

// refresh - one attempt against the refresh endpoint using the refresh
// token. Failure means the session is over.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.RLock()
	refreshToken := c.refreshToken
	c.mu.RUnlock()
	if refreshToken == "" {
		return model.ErrExpiredOrInvalidRefreshToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/auth/refresh", nil)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: guard.CookieRefreshToken, Value: refreshToken})

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer drain(res)

	if res.StatusCode != http.StatusOK {
		return model.ErrExpiredOrInvalidRefreshToken
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil || parsed.AccessToken == "" {
		return model.ErrExpiredOrInvalidRefreshToken
	}

	c.mu.Lock()
	c.accessToken = parsed.AccessToken
	c.mu.Unlock()

	return nil
}

func drain(res *http.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
