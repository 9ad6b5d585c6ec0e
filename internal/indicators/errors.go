package indicators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrMalformedYear  = errors.New("malformed year")
	ErrDataQuality    = errors.New("data quality error")
)

// SchemaError lists every header that does not line up with the fixed schema.
type SchemaError struct {
	Missing    []string
	Unexpected []string
	Duplicate  []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns %q", e.Missing))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected columns %q", e.Unexpected))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate columns %q", e.Duplicate))
	}
	return fmt.Sprintf("%s: %s", ErrSchemaMismatch, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }

// YearError reports a year token whose last four characters are not a year.
type YearError struct {
	Line  int
	Token string
}

func (e *YearError) Error() string {
	return fmt.Sprintf("%s on line %d: %q", ErrMalformedYear, e.Line, e.Token)
}

func (e *YearError) Unwrap() error { return ErrMalformedYear }

// ValueError reports a cell that cannot be represented in its target type.
type ValueError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s on line %d: %v", ErrDataQuality, e.Line, e.Err)
	}
	return fmt.Sprintf("%s on line %d, column %q: cannot parse %q: %v", ErrDataQuality, e.Line, e.Column, e.Value, e.Err)
}

func (e *ValueError) Unwrap() []error { return []error{ErrDataQuality, e.Err} }
