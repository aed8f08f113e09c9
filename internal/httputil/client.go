// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the rate-limited HTTP GET helper shared by the
// E-utilities calls.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// DefaultMaxBody bounds how much of a response body is read. It covers an
// efetch of types.MaxResultsLimit full records.
const DefaultMaxBody = 256 << 20

// ErrBodyTooLarge is wrapped by the TransportError returned when a response
// body exceeds the client limit.
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// maxErrorBody bounds the body excerpt carried by a TransportError.
const maxErrorBody = 512

// Client issues single GET requests. It never retries: any failure is
// returned to the caller as a *types.TransportError.
type Client struct {
	HTTP      *http.Client
	Limiter   *rate.Limiter
	UserAgent string

	// MaxBody caps the body size in bytes; <= 0 uses DefaultMaxBody.
	MaxBody int64
}

// NewClient builds a Client from cfg. ratePerSecond <= 0 disables limiting.
func NewClient(cfg types.HTTPConfig, ratePerSecond float64) *Client {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Inf, burst)
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		Limiter:   limiter,
		UserAgent: cfg.UserAgent,
		MaxBody:   DefaultMaxBody,
	}
}

// Get fetches rawURL and returns the body. endpoint names the call in
// errors. A non-2xx status yields a TransportError with the status code and
// a body excerpt.
func (c *Client) Get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, &types.TransportError{Endpoint: endpoint, Err: fmt.Errorf("rate limiter wait: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &types.TransportError{Endpoint: endpoint, Err: fmt.Errorf("creating request: %w", err)}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &types.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &types.TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(excerpt)),
		}
	}

	limit := c.MaxBody
	if limit <= 0 {
		limit = DefaultMaxBody
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &types.TransportError{Endpoint: endpoint, Err: fmt.Errorf("reading response: %w", err)}
	}
	if int64(len(body)) > limit {
		return nil, &types.TransportError{Endpoint: endpoint, Err: fmt.Errorf("%w of %d bytes", ErrBodyTooLarge, limit)}
	}
	return body, nil
}
