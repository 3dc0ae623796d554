// Package backend holds thin clients for the external MediCare REST
// backend. Each client performs one HTTP call and reshapes the backend's
// JSON envelope; no durable state lives on this side of the wire.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"medicare-gateway/internal/domain"
)

// Client is the shared HTTP plumbing for the per-resource clients.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

// NewClient builds a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// do issues the request and decodes the response envelope into out (when out
// is non-nil). A cookie string, when given, is forwarded verbatim so the
// backend sees the caller's auth session.
func (c *Client) do(ctx context.Context, method, path, cookie string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackend, method, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case res.StatusCode >= 400:
		var env envelope
		if err := json.NewDecoder(res.Body).Decode(&env); err == nil && env.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrBackend, env.Message)
		}
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrBackend, method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrBackend, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", domain.ErrBackend, err)
	}
	return nil
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/category", nil)
	if err != nil {
		return err
	}
	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	res.Body.Close()
	if res.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", domain.ErrBackend, res.StatusCode)
	}
	return nil
}

// toCents converts the backend's decimal price to integer cents, rounding
// half away from zero the way the display layer does.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
