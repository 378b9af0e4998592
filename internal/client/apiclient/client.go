// Package apiclient is the CLI's HTTP wrapper around the REST backend. It
// attaches the session's bearer token to every call and reports rejected
// sessions on an event bus before handing the error back.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/events"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/netx"
)

// TokenSource yields the current bearer token, or "" when anonymous.
type TokenSource interface {
	Token() string
}

type Publisher interface {
	Publish(events.Event)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	bus        Publisher

	mu     sync.RWMutex
	tokens TokenSource
}

func New(baseURL string, timeout time.Duration, bus Publisher) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		bus:        bus,
	}
}

// SetTokenSource binds the session. It is called once by the composition
// root, after the session that consumes this client has been built.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// credentialCall reports requests whose 401 means "bad credentials" rather
// than "stale session".
func credentialCall(method, path string) bool {
	return method == http.MethodPost && (path == "/auth/login" || path == "/auth/register")
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var er dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil {
			apiErr.Message = er.Message
			apiErr.Errors = er.Errors
		}

		if apiErr.Unwrap() != nil && !credentialCall(method, path) && c.bus != nil {
			c.bus.Publish(events.Event{
				Kind:   events.KindUnauthorized,
				Status: resp.StatusCode,
				Method: method,
				Path:   path,
			})
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// UploadToPresignedURL sends photo bytes straight to object storage.
func (c *Client) UploadToPresignedURL(ctx context.Context, url, contentType string, data []byte) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return netx.UploadToPresignedURL(ctx, c.httpClient, url, contentType, data)
}
