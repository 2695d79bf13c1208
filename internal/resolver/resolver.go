// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a raw configuration into a resolved one by
// checking it against an option schema.
//
// Resolution is a pure function: it performs no I/O, reads no process
// state and never mutates its inputs, so it may run concurrently from any
// number of goroutines against a shared schema. Either every option
// resolves and a complete [models.ResolvedConfig] is returned, or an
// [*Errors] batch lists every problem and the result is the zero value.
package resolver

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/internal/validators"
	"github.com/MKhiriev/go-build-config/models"
)

// Resolver binds a schema and a strictness mode.
type Resolver struct {
	schema *schema.OptionSchema
	strict bool
}

// New returns a Resolver for s. In strict mode unknown raw keys fail
// resolution; otherwise they are passed through unchanged.
func New(s *schema.OptionSchema, strict bool) *Resolver {
	return &Resolver{schema: s, strict: strict}
}

// Resolve resolves raw against the bound schema.
func (r *Resolver) Resolve(raw models.RawConfig) (models.ResolvedConfig, error) {
	return Resolve(raw, r.schema, r.strict)
}

// Schema returns the bound schema.
func (r *Resolver) Schema() *schema.OptionSchema {
	return r.schema
}

// Strict reports whether unknown keys are rejected.
func (r *Resolver) Strict() bool {
	return r.strict
}

// Resolve validates raw against s, substitutes defaults for absent optional
// options and returns the resolved configuration.
//
// Every failure is collected; the returned error is an [*Errors] whose
// entries match the schema taxonomy sentinels with errors.Is.
func Resolve(raw models.RawConfig, s *schema.OptionSchema, strict bool) (models.ResolvedConfig, error) {
	if s == nil {
		return models.ResolvedConfig{}, ErrNilSchema
	}

	values := make(map[string]any, s.Len()+len(raw))
	errs := &Errors{}

	for _, name := range s.Names() {
		d, _ := s.Lookup(name)

		value, supplied := raw[name]
		if !supplied {
			if d.Required {
				errs.add(&OptionError{
					Code:   CodeMissingRequiredOption,
					Option: name,
					Path:   name,
					Err:    fmt.Errorf("%s option %q is not set", d.Kind, name),
				})
				continue
			}
			values[name], _ = s.DefaultValue(name)
			continue
		}

		resolved, optErrs := resolveOption(name, d, value)
		if len(optErrs) > 0 {
			for _, e := range optErrs {
				errs.add(e)
			}
			continue
		}
		values[name] = resolved
	}

	var passthrough []string
	for _, key := range raw.Keys() {
		if s.Has(key) {
			continue
		}
		if strict {
			errs.add(&OptionError{
				Code:   CodeUnknownOption,
				Option: key,
				Path:   key,
				Value:  raw[key],
				Err:    fmt.Errorf("%q is not a recognized option", key),
			})
			continue
		}
		values[key] = raw[key]
		passthrough = append(passthrough, key)
	}

	if errs.Len() > 0 {
		return models.ResolvedConfig{}, errs
	}
	return models.NewResolvedConfig(values, passthrough), nil
}

// ToRaw re-expresses a resolved configuration as raw input. For any
// successfully resolved cfg, Resolve(ToRaw(cfg), s, strict) equals cfg.
func ToRaw(cfg models.ResolvedConfig) models.RawConfig {
	return cfg.Raw()
}

func resolveOption(name string, d schema.Descriptor, value any) (any, []*OptionError) {
	coerced, err := d.Kind.Coerce(value)
	if err != nil {
		return nil, classify(name, value, err, CodeTypeMismatch)
	}

	if d.Validator != nil {
		if err := d.Validator(coerced); err != nil {
			return nil, classify(name, coerced, err, CodeValidationFailed)
		}
	}

	return d.Kind.Normalize(coerced), nil
}

// classify splits err into one OptionError per underlying failure.
// Element failures are located by index; duplicate hosts keep their own
// code, everything else gets fallback.
func classify(name string, value any, err error, fallback Code) []*OptionError {
	var leaves []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		leaves = joined.Unwrap()
	} else {
		leaves = []error{err}
	}

	out := make([]*OptionError, 0, len(leaves))
	for _, leaf := range leaves {
		optErr := &OptionError{
			Code:   fallback,
			Option: name,
			Path:   name,
			Value:  value,
			Err:    leaf,
		}

		var elemErr *validators.ElementError
		if errors.As(leaf, &elemErr) {
			optErr.Path = fmt.Sprintf("%s[%d]", name, elemErr.Index)
			optErr.Value = elementAt(value, elemErr.Index)
			optErr.Err = elemErr.Err
		}
		if errors.Is(leaf, schema.ErrDuplicateAllowedHost) {
			optErr.Code = CodeDuplicateAllowedHost
		}
		out = append(out, optErr)
	}
	return out
}

func elementAt(value any, index int) any {
	switch items := value.(type) {
	case []any:
		if index >= 0 && index < len(items) {
			return items[index]
		}
	case []string:
		if index >= 0 && index < len(items) {
			return items[index]
		}
	}
	return nil
}
