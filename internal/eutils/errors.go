// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"errors"
	"fmt"
)

// ErrParse matches any *ParseError with errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports a malformed E-utilities response or a missing field.
type ParseError struct {
	// Op is the utility whose response failed to parse ("esearch", "esummary").
	Op string

	// Field names the missing or invalid element, if any.
	Field string

	// ID is the DocSum Id the field belongs to, if any.
	ID string

	// Msg carries server-reported error text or extra detail.
	Msg string

	Err error
}

func (e *ParseError) Error() string {
	s := e.Op + ": "
	switch {
	case e.Field != "" && e.ID != "":
		s += fmt.Sprintf("document %s: missing %s", e.ID, e.Field)
	case e.Field != "":
		s += "missing " + e.Field
	default:
		s += "malformed response"
	}
	if e.Msg != "" {
		s += " (" + e.Msg + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
