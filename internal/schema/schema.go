// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema defines the option schema a raw configuration is resolved
// against: which options exist, the kind of value each accepts, whether it
// is required, its default, and the semantic validator it must pass.
//
// An [OptionSchema] is immutable once built and safe for concurrent use.
// [Default] returns the schema for the build pipeline options; [New] builds
// any other option set from the same primitives.
package schema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-build-config/internal/validators"
)

// Validator is a semantic predicate over a value that already passed its
// kind check. It returns nil when the value is acceptable. List validators
// may return several errors joined with errors.Join, each wrapped in a
// [validators.ElementError].
type Validator = validators.Func

// Descriptor declares one option.
type Descriptor struct {
	// Kind is the runtime type the value must have.
	Kind Kind

	// Required options have no default; omitting them fails resolution.
	Required bool

	// Default is substituted when an optional option is absent. A nil
	// Default resolves to the zero value of Kind.
	Default any

	// Validator is run on every supplied value and on Default at schema
	// construction. Nil means any well-typed value is accepted.
	Validator Validator

	// Description is a one-line human summary shown by tooling.
	Description string
}

// Option pairs a descriptor with its name.
type Option struct {
	Name string
	Descriptor
}

// OptionSchema maps option names to descriptors.
type OptionSchema struct {
	options  map[string]Descriptor
	defaults map[string]any
	names    []string
}

// New validates the given options and builds an immutable schema. Every
// problem found is reported, joined into one error.
func New(options ...Option) (*OptionSchema, error) {
	s := &OptionSchema{
		options:  make(map[string]Descriptor, len(options)),
		defaults: make(map[string]any, len(options)),
		names:    make([]string, 0, len(options)),
	}

	var errs []error
	for _, opt := range options {
		def, err := checkOption(opt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := s.options[opt.Name]; dup {
			errs = append(errs, fmt.Errorf("option %q: declared twice", opt.Name))
			continue
		}
		s.options[opt.Name] = opt.Descriptor
		s.defaults[opt.Name] = def
		s.names = append(s.names, opt.Name)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("error building option schema: %w", errors.Join(errs...))
	}

	sort.Strings(s.names)
	return s, nil
}

// MustNew is like [New] but panics on error. It is meant for schemas
// declared as package-level values.
func MustNew(options ...Option) *OptionSchema {
	s, err := New(options...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkOption validates a declaration and returns its resolved default.
func checkOption(opt Option) (any, error) {
	if opt.Name == "" {
		return nil, ErrEmptyOptionName
	}
	if !opt.Kind.Valid() {
		return nil, fmt.Errorf("option %q: %w: %v", opt.Name, ErrInvalidKind, opt.Kind)
	}
	if opt.Required {
		if opt.Default != nil {
			return nil, fmt.Errorf("option %q: %w", opt.Name, ErrRequiredDefault)
		}
		return nil, nil
	}
	if opt.Default == nil {
		return opt.Kind.Zero(), nil
	}

	def, err := opt.Kind.Coerce(opt.Default)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w: %w", opt.Name, ErrInvalidDefault, err)
	}
	if opt.Validator != nil {
		if err := opt.Validator(def); err != nil {
			return nil, fmt.Errorf("option %q: %w: %w", opt.Name, ErrInvalidDefault, err)
		}
	}
	return opt.Kind.Normalize(def), nil
}

// Lookup returns the descriptor registered under name.
func (s *OptionSchema) Lookup(name string) (Descriptor, bool) {
	d, ok := s.options[name]
	return d, ok
}

// Has reports whether name is a recognized option.
func (s *OptionSchema) Has(name string) bool {
	_, ok := s.options[name]
	return ok
}

// Names returns every option name in lexical order.
func (s *OptionSchema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of options in the schema.
func (s *OptionSchema) Len() int {
	return len(s.names)
}

// DefaultValue returns a fresh copy of the resolved default for name.
// The second result is false for unknown or required options.
func (s *OptionSchema) DefaultValue(name string) (any, bool) {
	d, ok := s.options[name]
	if !ok || d.Required {
		return nil, false
	}
	v, _ := d.Kind.Coerce(s.defaults[name])
	return v, true
}
