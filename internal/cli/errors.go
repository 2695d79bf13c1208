// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

// ErrReported marks a failure whose report was already written to stderr.
var ErrReported = errors.New("failure already reported")

// Process exit codes.
const (
	ExitOK       = 0
	ExitRejected = 1
	ExitUsage    = 2
)

// rejectedError wraps a resolution failure after its report was printed.
type rejectedError struct {
	err error
}

func (e *rejectedError) Error() string {
	return e.err.Error()
}

func (e *rejectedError) Unwrap() []error {
	return []error{ErrReported, e.err}
}
