// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities for PubMed articles and turns
// the fetched documents into classified ArticleRecords.
//
// Two endpoints are used, strictly in sequence: esearch.fcgi returns the
// PMIDs matching a term, efetch.fcgi returns the article documents for a
// batch of PMIDs.
package pubmed

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-fetcher/internal/affiliation"
	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const (
	database     = "pubmed"
	esearchPath  = "esearch.fcgi"
	efetchPath   = "efetch.fcgi"
	esearchLabel = "esearch"
	efetchLabel  = "efetch"
)

// Client talks to the E-utilities endpoints.
type Client struct {
	cfg        types.EUtilsConfig
	maxResults int
	http       *httputil.Client
	classifier affiliation.Classifier
	log        zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithClassifier replaces the affiliation rules.
func WithClassifier(cl affiliation.Classifier) Option {
	return func(c *Client) { c.classifier = cl }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a Client from cfg. The classifier keywords come from
// cfg.Classifier unless overridden by an option.
func NewClient(cfg types.Config, opts ...Option) *Client {
	eutils := cfg.EUtils
	if eutils.BaseURL == "" {
		eutils.BaseURL = types.DefaultBaseURL
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	c := &Client{
		cfg:        eutils,
		maxResults: maxResults,
		http:       httputil.NewClient(cfg.HTTP, cfg.EffectiveRateLimit()),
		classifier: affiliation.New(cfg.Classifier.Keywords),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// endpointURL resolves path against the base URL and attaches params plus
// the optional NCBI identification parameters.
func (c *Client) endpointURL(path string, params url.Values) string {
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	if c.cfg.Tool != "" {
		params.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + path + "?" + params.Encode()
}
