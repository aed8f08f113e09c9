// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI. It searches
// PubMed, flags papers with industry-affiliated authors, and writes the
// results as CSV or to the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/export"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds NCBI credentials loaded from .secrets/ and .env at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loadedSecrets[key]
}

// rootCmd is the only command: pubmed-fetcher QUERY.
var rootCmd = &cobra.Command{
	Use:   "pubmed-fetcher QUERY",
	Short: "Find PubMed papers with pharmaceutical or biotech authors",
	Long: `pubmed-fetcher searches PubMed for QUERY, fetches the matching articles, and
reports the authors whose affiliation names a company (Inc, Ltd, Pharma,
Biotech, GmbH and similar) together with the corresponding author contact.

Results go to the CSV file given by --file, or to stdout in the --format
chosen. Full PubMed query syntax is supported, e.g.
  pubmed-fetcher "cancer therapy AND 2023[dp]" -f results.csv`,
	Args:    cobra.ExactArgs(1),
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", ".env", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if debug, _ := cmd.Flags().GetBool("debug"); debug && len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/pubmed-fetcher.yaml)")

	rootCmd.Flags().BoolP("debug", "d", false, "print debug information during execution")
	rootCmd.Flags().StringP("file", "f", "", "CSV file to save results to (default: print to stdout)")
	rootCmd.Flags().String("format", "text", "stdout format: "+strings.Join(export.Formats, ", "))
	rootCmd.Flags().IntP("max-results", "n", 10, "maximum number of papers to fetch")

	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("max_results", rootCmd.Flags().Lookup("max-results"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-fetcher"))
		}
	}

	viper.SetEnvPrefix("PUBMED_FETCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if debug, _ := rootCmd.Flags().GetBool("debug"); debug {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
