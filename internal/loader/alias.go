// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-build-config/models"
)

// Alias maps a framework-style option location onto a canonical option.
type Alias struct {
	// Path is the nested key path of the alias, outermost first.
	Path []string
	// Option is the canonical option name.
	Option string
}

func (a Alias) String() string {
	return strings.Join(a.Path, ".")
}

// Aliases returns the built-in aliases.
func Aliases() []Alias {
	return []Alias{
		{Path: []string{"experimental", "serverComponentsExternalPackages"}, Option: models.OptionExternalPackages},
		{Path: []string{"images", "domains"}, Option: models.OptionImageAllowedHosts},
		{Path: []string{"output"}, Option: models.OptionOutputMode},
	}
}

// Canonicalize returns a copy of raw with every built-in alias moved to
// its canonical option name. Sibling keys of a nested alias stay in
// place; a parent object left empty by the move is removed. Setting both
// an alias and its canonical option is an error.
func Canonicalize(raw models.RawConfig) (models.RawConfig, error) {
	return CanonicalizeWith(raw, Aliases())
}

// CanonicalizeWith is Canonicalize over an explicit alias table.
func CanonicalizeWith(raw models.RawConfig, aliases []Alias) (models.RawConfig, error) {
	out := raw.Clone()
	if out == nil {
		out = models.RawConfig{}
	}

	var errs []error
	for _, a := range aliases {
		value, ok := lookupPath(out, a.Path)
		if !ok {
			continue
		}
		if _, clash := out[a.Option]; clash {
			errs = append(errs, fmt.Errorf("%w: %s and %s", ErrConflictingAlias, a, a.Option))
			continue
		}
		deletePath(out, a.Path)
		out[a.Option] = value
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func lookupPath(m map[string]any, path []string) (any, bool) {
	for i, key := range path {
		v, ok := m[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := asMap(v)
		if !ok {
			return nil, false
		}
		m = next
	}
	return nil, false
}

// deletePath removes the leaf of path and prunes parents it leaves empty.
func deletePath(m map[string]any, path []string) {
	if len(path) == 1 {
		delete(m, path[0])
		return
	}
	child, ok := asMap(m[path[0]])
	if !ok {
		return
	}
	deletePath(child, path[1:])
	if len(child) == 0 {
		delete(m, path[0])
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case models.RawConfig:
		return t, true
	}
	return nil, false
}
