// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "zero max results", mutate: func(c *Config) { c.MaxResults = 0 }, wantErr: "MaxResults"},
		{name: "max results above esearch limit", mutate: func(c *Config) { c.MaxResults = MaxResultsLimit + 1 }, wantErr: "MaxResults"},
		{name: "max results at limit", mutate: func(c *Config) { c.MaxResults = MaxResultsLimit }},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: "Format"},
		{name: "empty base url", mutate: func(c *Config) { c.EUtils.BaseURL = "" }, wantErr: "BaseURL"},
		{name: "relative base url", mutate: func(c *Config) { c.EUtils.BaseURL = "eutils" }, wantErr: "BaseURL"},
		{name: "bad email", mutate: func(c *Config) { c.EUtils.Email = "not-an-email" }, wantErr: "Email"},
		{name: "negative rate", mutate: func(c *Config) { c.HTTP.RateLimit = -1 }, wantErr: "RateLimit"},
		{name: "empty keyword", mutate: func(c *Config) { c.Classifier.Keywords = []string{"Inc", ""} }, wantErr: "Keywords[1]"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "Level"},
		{name: "email set", mutate: func(c *Config) { c.EUtils.Email = "me@example.org" }},
		{name: "custom keywords", mutate: func(c *Config) { c.Classifier.Keywords = []string{"Therapeutics"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_EffectiveRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultRateLimit, cfg.EffectiveRateLimit())

	cfg.EUtils.APIKey = "key"
	assert.Equal(t, KeyedRateLimit, cfg.EffectiveRateLimit())

	cfg.HTTP.RateLimit = 1.5
	assert.Equal(t, 1.5, cfg.EffectiveRateLimit())
}
