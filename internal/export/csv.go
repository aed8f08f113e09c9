// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes classified ArticleRecords: CSV files for the
// tabular output, and text, table, JSON, YAML or CSV on a writer for
// console output.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Column names, in output order.
const (
	ColPubmedID    = "PubmedID"
	ColTitle       = "Title"
	ColPubDate     = "Publication Date"
	ColAuthors     = "Non-academic Author(s)"
	ColCompanies   = "Company Affiliation(s)"
	ColCorresponds = "Corresponding Author Email"
)

// Header is the fixed column order of the tabular output.
var Header = []string{ColPubmedID, ColTitle, ColPubDate, ColAuthors, ColCompanies, ColCorresponds}

// listSep joins multi-valued fields in a single cell.
const listSep = ", "

// Row flattens r into the Header column order.
func Row(r types.ArticleRecord) []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		strings.Join(r.NonAcademicAuthors, listSep),
		strings.Join(r.CompanyAffiliations, listSep),
		r.CorrespondingAuthorEmail,
	}
}

// WriteCSV writes the header and one row per record to w.
func WriteCSV(records []types.ArticleRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("writing record %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to path, replacing any existing file. The data
// is written to a temporary file in the same directory and renamed into
// place, so a failure never leaves a partial file at path.
func WriteCSVFile(records []types.ArticleRecord, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &types.IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := WriteCSV(records, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// ReadCSV reads a document produced by WriteCSV and returns the data rows.
// The header must match Header exactly.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: empty document")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range Header {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i, header[i], name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}
