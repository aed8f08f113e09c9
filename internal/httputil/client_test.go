// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	c := NewClient(types.HTTPConfig{UserAgent: "test/0.1"}, 0)
	body, err := c.Get(context.Background(), "esearch", ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGet_NonSuccessStatus(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"API rate limit exceeded"}`))
	}))
	defer ts.Close()

	c := NewClient(types.HTTPConfig{}, 0)
	_, err := c.Get(context.Background(), "efetch", ts.URL)
	require.Error(t, err)

	var te *types.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusTooManyRequests, te.StatusCode)
	assert.Equal(t, "efetch", te.Endpoint)
	assert.Contains(t, te.Body, "rate limit")
	assert.ErrorIs(t, err, types.ErrTransport)
	// No retry on 429.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ServerErrorNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(types.HTTPConfig{}, 0)
	_, err := c.Get(context.Background(), "esearch", ts.URL)
	assert.ErrorIs(t, err, types.ErrTransport)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := NewClient(types.HTTPConfig{}, 0)
	_, err := c.Get(context.Background(), "esearch", url)
	require.Error(t, err)

	var te *types.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 0, te.StatusCode)
	assert.ErrorIs(t, err, types.ErrTransport)
}

func TestGet_ContextCancelledWhileLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := &Client{
		HTTP:    ts.Client(),
		Limiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	}
	// First call consumes the only token.
	_, err := c.Get(context.Background(), "esearch", ts.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Get(ctx, "efetch", ts.URL)
	assert.ErrorIs(t, err, types.ErrTransport)
}

func TestNewClient_RateLimit(t *testing.T) {
	c := NewClient(types.HTTPConfig{Timeout: 5 * time.Second, Burst: 2}, 3)
	assert.Equal(t, rate.Limit(3), c.Limiter.Limit())
	assert.Equal(t, 2, c.Limiter.Burst())
	assert.Equal(t, 5*time.Second, c.HTTP.Timeout)

	unlimited := NewClient(types.HTTPConfig{}, 0)
	assert.Equal(t, rate.Inf, unlimited.Limiter.Limit())
}

func TestGet_BodyLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 16) + r.URL.Query().Get("extra")))
	}))
	defer ts.Close()

	c := NewClient(types.HTTPConfig{}, 0)
	c.MaxBody = 16

	body, err := c.Get(context.Background(), "efetch", ts.URL)
	require.NoError(t, err)
	assert.Len(t, body, 16)

	_, err = c.Get(context.Background(), "efetch", ts.URL+"?extra=y")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTransport)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.NotErrorIs(t, err, types.ErrParse)
	assert.Contains(t, err.Error(), "exceeds limit of 16 bytes")
}

func TestNewClient_DefaultBodyLimit(t *testing.T) {
	assert.Equal(t, int64(DefaultMaxBody), NewClient(types.HTTPConfig{}, 0).MaxBody)
}
