// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"

	"github.com/MKhiriev/go-build-config/internal/validators"
)

// Resolution error taxonomy. Every failure reported by the resolver matches
// exactly one of these with errors.Is.
var (
	// ErrMissingRequiredOption reports a required option absent from raw input.
	ErrMissingRequiredOption = errors.New("missing required option")

	// ErrTypeMismatch reports a value whose runtime type disagrees with the
	// descriptor kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed reports a well-typed value rejected by the
	// descriptor validator.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDuplicateAllowedHost reports a hostname repeated (case-insensitively)
	// in an allow-list.
	ErrDuplicateAllowedHost = validators.ErrDuplicateHost

	// ErrUnknownOption reports a raw key absent from the schema in strict mode.
	ErrUnknownOption = errors.New("unknown option")
)

// Schema construction errors.
var (
	ErrEmptyOptionName = errors.New("option name must not be empty")
	ErrInvalidKind     = errors.New("invalid option kind")
	ErrRequiredDefault = errors.New("required option must not declare a default")
	ErrInvalidDefault  = errors.New("default value does not satisfy its descriptor")
)
