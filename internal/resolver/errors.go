// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-build-config/internal/schema"
)

// ErrNilSchema is returned when Resolve is called without a schema.
var ErrNilSchema = errors.New("option schema is required")

// Code classifies a resolution failure.
type Code string

const (
	CodeMissingRequiredOption Code = "MissingRequiredOption"
	CodeTypeMismatch          Code = "TypeMismatch"
	CodeValidationFailed      Code = "ValidationFailed"
	CodeDuplicateAllowedHost  Code = "DuplicateAllowedHost"
	CodeUnknownOption         Code = "UnknownOption"
)

// Sentinel returns the schema error that errors.Is matches for c.
func (c Code) Sentinel() error {
	switch c {
	case CodeMissingRequiredOption:
		return schema.ErrMissingRequiredOption
	case CodeTypeMismatch:
		return schema.ErrTypeMismatch
	case CodeValidationFailed:
		return schema.ErrValidationFailed
	case CodeDuplicateAllowedHost:
		return schema.ErrDuplicateAllowedHost
	case CodeUnknownOption:
		return schema.ErrUnknownOption
	}
	return nil
}

// OptionError is a single resolution failure attributed to one option, or
// to one element of a list option.
type OptionError struct {
	// Code classifies the failure.
	Code Code
	// Option is the top-level option name.
	Option string
	// Path locates the offending value, e.g. "imageAllowedHosts[2]".
	Path string
	// Value is the offending value as authored, when one exists.
	Value any
	// Err is the underlying cause.
	Err error
}

func (e *OptionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Code, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// Is matches the taxonomy sentinel of e.Code.
func (e *OptionError) Is(target error) bool {
	sentinel := e.Code.Sentinel()
	return sentinel != nil && target == sentinel
}

// Errors is the batch of failures produced by one Resolve call.
type Errors struct {
	Errors []*OptionError
}

func (e *Errors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no configuration errors"
	case 1:
		return e.Errors[0].Error()
	}

	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d configuration errors:\n  - %s", len(e.Errors), strings.Join(msgs, "\n  - "))
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (e *Errors) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		out[i] = err
	}
	return out
}

// Len returns the number of entries.
func (e *Errors) Len() int {
	return len(e.Errors)
}

// ByCode returns the entries classified as code.
func (e *Errors) ByCode(code Code) []*OptionError {
	var out []*OptionError
	for _, err := range e.Errors {
		if err.Code == code {
			out = append(out, err)
		}
	}
	return out
}

// ForOption returns the entries attributed to option.
func (e *Errors) ForOption(option string) []*OptionError {
	var out []*OptionError
	for _, err := range e.Errors {
		if err.Option == option {
			out = append(out, err)
		}
	}
	return out
}

func (e *Errors) add(err *OptionError) {
	e.Errors = append(e.Errors, err)
}

// AsErrors extracts the resolution batch from err, if any.
func AsErrors(err error) (*Errors, bool) {
	var errs *Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
