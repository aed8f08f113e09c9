// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one search-fetch-classify-export pass.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-fetcher/internal/export"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Source is the PubMed side of the pipeline. *pubmed.Client implements it.
type Source interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
	FetchDetails(ctx context.Context, ids []string) ([]types.ArticleRecord, error)
}

// Options controls one run.
type Options struct {
	// MaxResults caps the search; <= 0 uses the source default.
	MaxResults int

	// OutputFile, when set, receives the CSV output.
	OutputFile string

	// Format selects the console format used when OutputFile is empty.
	Format string

	// Stdout receives console output and the saved-file confirmation.
	Stdout io.Writer

	Logger zerolog.Logger
}

// Result holds what one run produced.
type Result struct {
	IDs     []string
	Records []types.ArticleRecord
}

// Run searches for query, fetches and classifies the matches, and writes
// them either to opts.OutputFile as CSV or to opts.Stdout. The fetch step is
// skipped when the search finds nothing. Any failure aborts before output.
func Run(ctx context.Context, src Source, query string, opts Options) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, fmt.Errorf("query is empty: provide a search term")
	}
	if opts.OutputFile == "" {
		if err := export.CheckFormat(opts.Format); err != nil {
			return Result{}, err
		}
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	log := opts.Logger

	log.Debug().Str("query", query).Msg("Fetching papers")

	ids, err := src.Search(ctx, query, opts.MaxResults)
	if err != nil {
		return Result{}, fmt.Errorf("searching PubMed: %w", err)
	}
	log.Debug().Int("count", len(ids)).Msgf("Found %d papers", len(ids))

	records := []types.ArticleRecord{}
	if len(ids) > 0 {
		records, err = src.FetchDetails(ctx, ids)
		if err != nil {
			return Result{}, fmt.Errorf("fetching details: %w", err)
		}
	}

	industry := 0
	for _, r := range records {
		if r.HasIndustryAuthors() {
			industry++
		}
	}
	log.Debug().Int("records", len(records)).Int("with_industry_authors", industry).Msg("Classified papers")

	res := Result{IDs: ids, Records: records}

	if opts.OutputFile != "" {
		if err := export.WriteCSVFile(records, opts.OutputFile); err != nil {
			return res, fmt.Errorf("saving results: %w", err)
		}
		fmt.Fprintf(opts.Stdout, "Results saved to %s\n", opts.OutputFile)
		return res, nil
	}

	if err := export.Format(records, opts.Format, opts.Stdout); err != nil {
		return res, fmt.Errorf("printing results: %w", err)
	}
	return res, nil
}
