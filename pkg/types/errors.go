// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline failure classes. Every typed error below
// matches exactly one of these through errors.Is.
var (
	// ErrTransport indicates a network failure or a non-2xx HTTP status.
	ErrTransport = errors.New("transport error")

	// ErrParse indicates a malformed response body.
	ErrParse = errors.New("parse error")

	// ErrMissingField indicates a required field absent from a fetched document.
	ErrMissingField = errors.New("missing required field")

	// ErrIO indicates the output could not be written.
	ErrIO = errors.New("output error")
)

// TransportError describes a failed HTTP exchange with an E-utilities endpoint.
type TransportError struct {
	// Endpoint names the endpoint (e.g. "esearch", "efetch").
	Endpoint string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Body is a truncated copy of the response body for diagnostics.
	Body string
	Err  error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		msg := fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ParseError describes a response body that could not be decoded.
type ParseError struct {
	// Format is the expected body format ("json" or "xml").
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingFieldError describes an article lacking a required element.
type MissingFieldError struct {
	Field string
	// Index is the zero-based position of the article in the document.
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("article %d: required field %s is missing", e.Index, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// IOError describes a failed write of the output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
