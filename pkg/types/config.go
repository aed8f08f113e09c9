// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for the E-utilities endpoints and the pipeline.
const (
	DefaultBaseURL    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	DefaultMaxResults = 10
	// MaxResultsLimit is the largest retmax esearch accepts.
	MaxResultsLimit = 10000
	DefaultUserAgent  = "pubmed-fetcher/0.1"
	DefaultTool       = "pubmed-fetcher"

	// DefaultRateLimit is the NCBI limit without an API key (requests/second).
	DefaultRateLimit = 3.0
	// KeyedRateLimit is the NCBI limit when an API key is sent.
	KeyedRateLimit = 10.0
)

// HTTPConfig holds shared HTTP settings used by the E-utilities client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the net/http default
	// (no timeout).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RateLimit caps requests per second. Zero selects DefaultRateLimit, or
	// KeyedRateLimit when an API key is configured.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit" validate:"min=0"`

	// Burst is the token bucket size (default 1).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst" validate:"min=0"`
}

// EUtilsConfig identifies the endpoint and the caller to NCBI.
type EUtilsConfig struct {
	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// APIKey is the optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Tool and Email are the optional NCBI caller identification parameters.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
}

// ClassifierConfig overrides the non-academic keyword set.
type ClassifierConfig struct {
	// Keywords replaces the built-in keyword set when non-empty.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords" validate:"dive,required"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error"`

	// Format is console (human-readable) or json.
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=console json"`
}

// Config groups all settings for one pipeline run.
type Config struct {
	// MaxResults caps the number of identifiers returned by search.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"min=1,max=10000"`

	// Format selects the stdout output format when no file is given.
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=text table json yaml csv"`

	EUtils     EUtilsConfig     `json:"eutils" yaml:"eutils" mapstructure:"eutils"`
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Log        LoggingConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		MaxResults: DefaultMaxResults,
		Format:     "text",
		EUtils: EUtilsConfig{
			BaseURL: DefaultBaseURL,
			Tool:    DefaultTool,
		},
		HTTP: HTTPConfig{
			UserAgent: DefaultUserAgent,
			Burst:     1,
		},
		Log: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// EffectiveRateLimit returns the configured rate, falling back to the NCBI
// limit that applies with or without an API key.
func (c Config) EffectiveRateLimit() float64 {
	if c.HTTP.RateLimit > 0 {
		return c.HTTP.RateLimit
	}
	if c.EUtils.APIKey != "" {
		return KeyedRateLimit
	}
	return DefaultRateLimit
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
