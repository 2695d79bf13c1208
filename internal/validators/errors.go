// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyValue         = errors.New("value must not be empty")
	ErrNotAllowed         = errors.New("value is not one of the allowed literals")
	ErrInvalidPackageName = errors.New("invalid package name")

	ErrHostScheme    = errors.New("hostname must not carry a scheme")
	ErrHostPath      = errors.New("hostname must not carry a path")
	ErrHostPort      = errors.New("hostname must not carry a port")
	ErrInvalidHost   = errors.New("malformed hostname")
	ErrDuplicateHost = errors.New("duplicate allowed host")
)

// ElementError attributes a validation failure to one element of a list
// value.
type ElementError struct {
	Index int
	Err   error
}

// AtIndex wraps err with the index of the offending list element.
func AtIndex(index int, err error) error {
	return &ElementError{Index: index, Err: err}
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("[%d]: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
