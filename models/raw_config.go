// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// RawConfig is a user-authored, unvalidated option set as decoded from a
// configuration file, the environment or a Go caller. It may be incomplete
// and may carry keys no schema knows about.
type RawConfig map[string]any

// Clone returns a deep copy of c. Nested maps and slices produced by the
// JSON, YAML and TOML decoders are copied; other values are shared.
func (c RawConfig) Clone() RawConfig {
	if c == nil {
		return nil
	}

	out := make(RawConfig, len(c))
	for k, v := range c {
		out[k] = CloneValue(v)
	}
	return out
}

// Keys returns the top-level keys of c in lexical order.
func (c RawConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CloneValue deep-copies the container types that configuration decoders
// produce: map[string]any, RawConfig, []any, []string and map[string]string.
// Scalars and unknown types are returned unchanged.
func CloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, elem := range value {
			out[k] = CloneValue(elem)
		}
		return out
	case RawConfig:
		return value.Clone()
	case []any:
		out := make([]any, len(value))
		for i, elem := range value {
			out[i] = CloneValue(elem)
		}
		return out
	case []string:
		out := make([]string, len(value))
		copy(out, value)
		return out
	case map[string]string:
		out := make(map[string]string, len(value))
		for k, elem := range value {
			out[k] = elem
		}
		return out
	default:
		return v
	}
}
