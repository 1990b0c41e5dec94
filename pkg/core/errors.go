// Package core holds the configuration and typed error surface shared by
// the rest of odoo-sort-go, the way github.com/aiseeq/glint/pkg/core holds
// Config and Violation for glint.
package core

import "fmt"

// UnknownEncodingError is raised when a source file declares an encoding
// that the decoder doesn't recognize.
type UnknownEncodingError struct {
	Message  string
	Encoding string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown encoding, %q: %s", e.Encoding, e.Message)
}

// DecodingError is raised when the file's bytes don't decode under the
// chosen (or detected) encoding.
type DecodingError struct {
	Message string
}

func (e *DecodingError) Error() string {
	return e.Message
}

// ParseError is raised when the source is not syntactically valid.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// ResolutionError is raised when a reference cannot be bound to any
// statement in its scope.
type ResolutionError struct {
	Message string
	Name    string
	Line    int
	Column  int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved dependency %q: %s (line %d, column %d)", e.Name, e.Message, e.Line, e.Column)
}

// WildcardImportError is raised when a `from m import *` prevents sound
// analysis.
type WildcardImportError struct {
	Line   int
	Column int
}

func (e *WildcardImportError) Error() string {
	return fmt.Sprintf("can't reliably determine dependencies on * import (line %d, column %d)", e.Line, e.Column)
}
