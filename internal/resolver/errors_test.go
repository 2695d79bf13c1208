// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Sentinel(t *testing.T) {
	tests := map[Code]error{
		CodeMissingRequiredOption: schema.ErrMissingRequiredOption,
		CodeTypeMismatch:          schema.ErrTypeMismatch,
		CodeValidationFailed:      schema.ErrValidationFailed,
		CodeDuplicateAllowedHost:  schema.ErrDuplicateAllowedHost,
		CodeUnknownOption:         schema.ErrUnknownOption,
	}
	for code, want := range tests {
		assert.Same(t, want, code.Sentinel(), string(code))
	}
	assert.Nil(t, Code("Other").Sentinel())
}

func TestOptionError(t *testing.T) {
	cause := errors.New("boom")
	e := &OptionError{Code: CodeValidationFailed, Option: "outputMode", Path: "outputMode", Err: cause}

	assert.Equal(t, "outputMode: ValidationFailed: boom", e.Error())
	assert.ErrorIs(t, e, cause)
	assert.ErrorIs(t, e, schema.ErrValidationFailed)
	assert.NotErrorIs(t, e, schema.ErrTypeMismatch)

	bare := &OptionError{Code: CodeUnknownOption, Path: "foo"}
	assert.Equal(t, "foo: UnknownOption", bare.Error())
}

func TestErrors(t *testing.T) {
	errs := &Errors{}
	assert.Equal(t, "no configuration errors", errs.Error())

	errs.add(&OptionError{Code: CodeUnknownOption, Option: "foo", Path: "foo", Err: errors.New("x")})
	assert.Equal(t, "foo: UnknownOption: x", errs.Error())

	errs.add(&OptionError{Code: CodeTypeMismatch, Option: "bar", Path: "bar[0]", Err: errors.New("y")})
	assert.Equal(t, "2 configuration errors:\n  - foo: UnknownOption: x\n  - bar[0]: TypeMismatch: y", errs.Error())

	assert.Equal(t, 2, errs.Len())
	assert.Len(t, errs.ByCode(CodeTypeMismatch), 1)
	assert.Len(t, errs.ForOption("foo"), 1)
	assert.Empty(t, errs.ForOption("baz"))

	assert.ErrorIs(t, errs, schema.ErrUnknownOption)
	assert.ErrorIs(t, errs, schema.ErrTypeMismatch)
	assert.NotErrorIs(t, errs, schema.ErrValidationFailed)

	var target *OptionError
	require.ErrorAs(t, errs, &target)
	assert.Equal(t, "foo", target.Option)
}

func TestAsErrors(t *testing.T) {
	errs := &Errors{}
	errs.add(&OptionError{Code: CodeUnknownOption, Option: "foo", Path: "foo"})

	got, ok := AsErrors(fmt.Errorf("resolve: %w", errs))
	require.True(t, ok)
	assert.Same(t, errs, got)

	_, ok = AsErrors(errors.New("plain"))
	assert.False(t, ok)
}
