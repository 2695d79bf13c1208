// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// ResolvedConfig is a fully validated and defaulted option set.
//
// It is a value object: every accessor hands out copies, so a ResolvedConfig
// can be shared between goroutines and collaborators without coordination.
// The zero value represents "no configuration" and is what a failed
// resolution returns.
type ResolvedConfig struct {
	values      map[string]any
	passthrough map[string]struct{}
}

// NewResolvedConfig snapshots values into a ResolvedConfig. Keys listed in
// passthrough are marked as carried verbatim from raw input rather than
// produced by a schema descriptor.
func NewResolvedConfig(values map[string]any, passthrough []string) ResolvedConfig {
	cfg := ResolvedConfig{
		values:      make(map[string]any, len(values)),
		passthrough: make(map[string]struct{}, len(passthrough)),
	}
	for k, v := range values {
		cfg.values[k] = CloneValue(v)
	}
	for _, k := range passthrough {
		cfg.passthrough[k] = struct{}{}
	}
	return cfg
}

// IsZero reports whether cfg holds no configuration at all.
func (cfg ResolvedConfig) IsZero() bool {
	return cfg.values == nil
}

// Len returns the number of options held, passthrough keys included.
func (cfg ResolvedConfig) Len() int {
	return len(cfg.values)
}

// Get returns a copy of the value stored under name.
func (cfg ResolvedConfig) Get(name string) (any, bool) {
	v, ok := cfg.values[name]
	if !ok {
		return nil, false
	}
	return CloneValue(v), true
}

// Names returns every option name in lexical order.
func (cfg ResolvedConfig) Names() []string {
	names := make([]string, 0, len(cfg.values))
	for k := range cfg.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsPassthrough reports whether name was copied through from raw input
// without schema validation.
func (cfg ResolvedConfig) IsPassthrough(name string) bool {
	_, ok := cfg.passthrough[name]
	return ok
}

// Passthrough returns the passthrough keys in lexical order.
func (cfg ResolvedConfig) Passthrough() []string {
	keys := make([]string, 0, len(cfg.passthrough))
	for k := range cfg.passthrough {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExternalPackages returns the externalized dependency set in lexical order.
func (cfg ResolvedConfig) ExternalPackages() []string {
	return cfg.strings(OptionExternalPackages)
}

// ImageAllowedHosts returns the image host allow-list in authored order.
func (cfg ResolvedConfig) ImageAllowedHosts() []string {
	return cfg.strings(OptionImageAllowedHosts)
}

// OutputMode returns the selected packaging strategy, or an empty mode when
// the option is absent (only possible with a custom schema).
func (cfg ResolvedConfig) OutputMode() OutputMode {
	s, _ := cfg.values[OptionOutputMode].(string)
	return OutputMode(s)
}

// Raw re-expresses cfg as raw input. Resolving the result against the same
// schema yields a config equal to cfg.
func (cfg ResolvedConfig) Raw() RawConfig {
	if cfg.values == nil {
		return RawConfig{}
	}
	raw := make(RawConfig, len(cfg.values))
	for k, v := range cfg.values {
		raw[k] = CloneValue(v)
	}
	return raw
}

// MarshalJSON encodes the option values as a JSON object with sorted keys.
func (cfg ResolvedConfig) MarshalJSON() ([]byte, error) {
	if cfg.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(cfg.values)
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the canonical JSON
// encoding of cfg. Equal configurations always share a fingerprint, which
// makes it usable as a build cache key.
func (cfg ResolvedConfig) Fingerprint() (string, error) {
	data, err := cfg.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("error encoding resolved config: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (cfg ResolvedConfig) strings(name string) []string {
	values, _ := cfg.values[name].([]string)
	out := make([]string, len(values))
	copy(out, values)
	return out
}
