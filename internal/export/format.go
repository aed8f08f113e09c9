// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Console output formats accepted by Format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
)

// Formats lists the accepted console formats.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML, FormatCSV}

// CheckFormat reports an error for a name Format does not accept.
func CheckFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q: use one of %s", format, strings.Join(Formats, ", "))
}

// Format writes records to w in the named format.
func Format(records []types.ArticleRecord, format string, w io.Writer) error {
	switch format {
	case FormatText, "":
		return FormatTextBlocks(records, w)
	case FormatTable:
		FormatTableView(records, w)
		return nil
	case FormatJSON:
		return FormatJSONArray(records, w)
	case FormatYAML:
		return FormatYAMLList(records, w)
	case FormatCSV:
		return WriteCSV(records, w)
	default:
		return CheckFormat(format)
	}
}

// FormatTextBlocks writes one "column: value" block per record, separated by
// blank lines.
func FormatTextBlocks(records []types.ArticleRecord, w io.Writer) error {
	for i, r := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for j, v := range Row(r) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", Header[j], v); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatTableView writes records as a fixed-width table. The header is bold
// when w is a color-capable terminal.
func FormatTableView(records []types.ArticleRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	bold := color.New(color.Bold).SprintfFunc()
	fmt.Fprintln(w, bold("%-10s  %-50s  %-12s  %-24s  %s",
		"PMID", "Title", "Date", "Industry Authors", "Contact"))
	fmt.Fprintln(w, strings.Repeat("-", 120))

	industry := 0
	for _, r := range records {
		if r.HasIndustryAuthors() {
			industry++
		}
		fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-24s  %s\n",
			r.PubmedID,
			truncate(r.Title, 50),
			truncate(r.PublicationDate, 12),
			truncate(strings.Join(r.NonAcademicAuthors, listSep), 24),
			truncate(r.CorrespondingAuthorEmail, 40))
	}

	fmt.Fprintf(w, "\n%d articles, %d with non-academic authors\n", len(records), industry)
}

// FormatJSONArray writes records as an indented JSON array.
func FormatJSONArray(records []types.ArticleRecord, w io.Writer) error {
	if records == nil {
		records = []types.ArticleRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatYAMLList writes records as a YAML sequence.
func FormatYAMLList(records []types.ArticleRecord, w io.Writer) error {
	if records == nil {
		records = []types.ArticleRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(records)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
