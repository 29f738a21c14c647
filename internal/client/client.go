// Package client is a typed wrapper over the REST API used by the dashboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

const contentTypeJSON = "application/json"

// Client talks to one API base URL and keeps the session tokens of the last
// successful login. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.RWMutex
	tokens auth.Tokens

	// refreshMu serialises token refreshes so parallel requests that all hit
	// an expired access token rotate the refresh token only once.
	refreshMu sync.Mutex
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Authenticated reports whether the client holds an access token.
func (c *Client) Authenticated() bool {
	return c.accessToken() != ""
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	var tokens auth.Tokens

	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &tokens); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	c.setTokens(tokens)

	return nil
}

// Refresh exchanges the stored refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.tokens.RefreshToken
	c.mu.RUnlock()

	if refresh == "" {
		return apperr.ErrUnauthorized
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/refresh", "", nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+refresh)

	var tokens auth.Tokens
	if err := c.exec(req, &tokens); err != nil {
		return fmt.Errorf("refreshing session: %w", err)
	}

	c.setTokens(tokens)

	return nil
}

// Logout revokes the session server-side and forgets the local tokens.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)

	c.setTokens(auth.Tokens{})

	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// ImportRoster uploads a roster file. When the server rejects it with
// per-row conflicts, the decoded result is returned alongside the error.
func (c *Client) ImportRoster(ctx context.Context, filename string, r io.Reader) (*roster.Result, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	var result roster.Result

	err = c.call(ctx, http.MethodPost, "/apartments/import", mw.FormDataContentType(), buf.Bytes(), &result)
	if err == nil {
		return &result, nil
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Code == apperr.CodeValidation {
		if conflicts, ok := decodeData[roster.Result](appErr.Data); ok && len(conflicts.Conflicts) > 0 {
			return &conflicts, err
		}
	}

	return nil, fmt.Errorf("importing roster: %w", err)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if body == nil {
		return c.call(ctx, method, path, "", nil, out)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	return c.call(ctx, method, path, contentTypeJSON, payload, out)
}

// call sends one request and retries it once after refreshing the session
// when the access token has expired.
func (c *Client) call(ctx context.Context, method, path, contentType string, payload []byte, out any) error {
	used := c.accessToken()

	err := c.send(ctx, method, path, contentType, payload, out)
	if !errors.Is(err, apperr.ErrUnauthorized) || used == "" || strings.HasPrefix(path, "/auth/") {
		return err
	}

	if rerr := c.refreshAfter(ctx, used); rerr != nil {
		return err
	}

	return c.send(ctx, method, path, contentType, payload, out)
}

// refreshAfter refreshes unless another caller already replaced stale.
func (c *Client) refreshAfter(ctx context.Context, stale string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.accessToken() != stale {
		return nil
	}

	return c.Refresh(ctx)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}

	return c.exec(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", contentTypeJSON)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

type envelope struct {
	Code apperr.Code     `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) exec(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	if env.Code != apperr.CodeSuccess {
		var data any
		if len(env.Data) > 0 {
			// The decoder has already validated the raw message.
			_ = json.Unmarshal(env.Data, &data)
		}

		return apperr.Envelope{Code: env.Code, Msg: env.Msg, Data: data}.Err()
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}

	return nil
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tokens.AccessToken
}

func (c *Client) setTokens(t auth.Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
}

// decodeData converts loosely typed envelope data into T.
func decodeData[T any](data any) (T, bool) {
	var out T

	raw, err := json.Marshal(data)
	if err != nil {
		return out, false
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}

	return out, true
}
