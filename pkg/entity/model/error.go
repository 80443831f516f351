package model

import "fmt"

// SchemaError reports a missing or malformed required field in a raw record.
// Source names the input (file or logical table), Index the offending record.
type SchemaError struct {
	Source string
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: record %d: field %q: %s", e.Source, e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: record %d: missing required field %q", e.Source, e.Index, e.Field)
}

// ParseError reports an unparseable value or a malformed JSON container.
// Index is -1 when the container itself failed to decode.
type ParseError struct {
	Source string
	Index  int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: record %d: %s: %v", e.Source, e.Index, e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
