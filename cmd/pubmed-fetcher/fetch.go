// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/logging"
	"github.com/pdiddy/pubmed-fetcher/internal/pipeline"
	"github.com/pdiddy/pubmed-fetcher/internal/pubmed"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func runFetch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cfg.EUtils.APIKey = secretDefault(secrets.KeyAPIKey, cfg.EUtils.APIKey)
	cfg.EUtils.Email = secretDefault(secrets.KeyEmail, cfg.EUtils.Email)

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.Log, cmd.ErrOrStderr())
	client := pubmed.NewClient(cfg, pubmed.WithLogger(log))

	outFile, _ := cmd.Flags().GetString("file")
	_, err = pipeline.Run(cmd.Context(), client, args[0], pipeline.Options{
		MaxResults: cfg.MaxResults,
		OutputFile: outFile,
		Format:     cfg.Format,
		Stdout:     cmd.OutOrStdout(),
		Logger:     log,
	})
	return err
}

// loadConfig layers flags, environment and the config file over
// types.DefaultConfig. Every key gets a default so AutomaticEnv can see it
// during Unmarshal.
func loadConfig(v *viper.Viper) (types.Config, error) {
	def := types.DefaultConfig()
	defaults := map[string]any{
		"max_results":         def.MaxResults,
		"format":              def.Format,
		"eutils.base_url":     def.EUtils.BaseURL,
		"eutils.api_key":      def.EUtils.APIKey,
		"eutils.tool":         def.EUtils.Tool,
		"eutils.email":        def.EUtils.Email,
		"http.timeout":        def.HTTP.Timeout,
		"http.user_agent":     def.HTTP.UserAgent,
		"http.rate_limit":     def.HTTP.RateLimit,
		"http.burst":          def.HTTP.Burst,
		"classifier.keywords": []string{},
		"log.level":           def.Log.Level,
		"log.format":          def.Log.Format,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}
