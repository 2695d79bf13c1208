// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/MKhiriev/go-build-config/internal/validators"
	"github.com/MKhiriev/go-build-config/models"
)

// Kind is the runtime type an option value must have.
type Kind int

const (
	kindInvalid Kind = iota

	// KindAny accepts any value, copied as-is.
	KindAny
	// KindString accepts a string.
	KindString
	// KindBool accepts a boolean.
	KindBool
	// KindInt accepts any integer, or a float with no fractional part;
	// the resolved value is an int64.
	KindInt
	// KindStringList accepts an ordered sequence of strings.
	KindStringList
	// KindStringSet accepts a sequence of strings; the resolved value is
	// sorted with duplicates collapsed.
	KindStringSet
	// KindMap accepts an object with string keys.
	KindMap
)

var kindNames = map[Kind]string{
	KindAny:        "any",
	KindString:     "string",
	KindBool:       "bool",
	KindInt:        "int",
	KindStringList: "list<string>",
	KindStringSet:  "set<string>",
	KindMap:        "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Coerce checks that value has kind k and converts it to the canonical Go
// representation of that kind: []string for lists and sets, int64 for
// integers, map[string]any for maps. Sequence order is preserved so that
// validators can point at authored positions; see [Kind.Normalize].
//
// The returned value never aliases value. A failing element of a sequence
// is reported as a [validators.ElementError] wrapping [ErrTypeMismatch].
func (k Kind) Coerce(value any) (any, error) {
	switch k {
	case KindAny:
		return models.CloneValue(value), nil

	case KindString:
		if s, ok := asString(value); ok {
			return s, nil
		}

	case KindBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}

	case KindInt:
		if n, ok := toInt64(value); ok {
			return n, nil
		}

	case KindStringList, KindStringSet:
		return coerceStrings(value)

	case KindMap:
		switch m := value.(type) {
		case map[string]any:
			return models.CloneValue(m), nil
		case models.RawConfig:
			return map[string]any(m.Clone()), nil
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, k)
	}

	return nil, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, k, describe(value))
}

// Zero returns the value an optional option of kind k resolves to when its
// descriptor declares no default.
func (k Kind) Zero() any {
	switch k {
	case KindString:
		return ""
	case KindBool:
		return false
	case KindInt:
		return int64(0)
	case KindStringList, KindStringSet:
		return []string{}
	case KindMap:
		return map[string]any{}
	default:
		return nil
	}
}

// Normalize turns a coerced value into its resolved form. Sets are sorted
// and de-duplicated; every other kind is returned unchanged.
func (k Kind) Normalize(value any) any {
	if k != KindStringSet {
		return value
	}
	items, _ := value.([]string)
	set := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		set = append(set, item)
	}
	sort.Strings(set)
	return set
}

func coerceStrings(value any) (any, error) {
	switch items := value.(type) {
	case []string:
		out := make([]string, len(items))
		copy(out, items)
		return out, nil
	case []any:
		out := make([]string, len(items))
		var errs []error
		for i, item := range items {
			s, ok := asString(item)
			if !ok {
				errs = append(errs, validators.AtIndex(i, fmt.Errorf("%w: expected string, got %s", ErrTypeMismatch, describe(item))))
				continue
			}
			out[i] = s
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return out, nil
	}

	// Named slice types such as []models.OutputMode.
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.String {
		out := make([]string, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).String()
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: expected sequence of strings, got %s", ErrTypeMismatch, describe(value))
}

// asString accepts string and any named type whose underlying type is
// string, such as models.OutputMode.
func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return int64(n), true
		}
	case float32:
		f := float64(n)
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
	}
	return 0, false
}

// describe names the dynamic type of v the way a config author would.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case []any, []string:
		return "sequence"
	case map[string]any, models.RawConfig:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
