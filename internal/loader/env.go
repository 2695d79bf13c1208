// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/models"
)

// DefaultEnvPrefix is prepended to option variable names when no other
// prefix is configured.
const DefaultEnvPrefix = "BUILD_"

// EnvSource overlays schema options from environment variables. Option
// "imageAllowedHosts" is read from PREFIX_IMAGE_ALLOWED_HOSTS, list values
// are comma separated. Only variables that are set produce keys, so an
// overlay never replaces a file value with an empty default.
type EnvSource struct {
	prefix  string
	schema  *schema.OptionSchema
	environ func() []string
}

// NewEnvSource returns an overlay for the options of s read from the
// process environment.
func NewEnvSource(prefix string, s *schema.OptionSchema) *EnvSource {
	return &EnvSource{prefix: prefix, schema: s, environ: os.Environ}
}

// WithEnviron replaces the environment the source reads, in os.Environ
// form.
func (s *EnvSource) WithEnviron(environ []string) *EnvSource {
	s.environ = func() []string { return environ }
	return s
}

func (s *EnvSource) Name() string {
	return "env:" + s.prefix + "*"
}

func (s *EnvSource) Load(ctx context.Context) (models.RawConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars := env.ToMap(s.environ())
	raw := models.RawConfig{}
	for _, name := range s.schema.Names() {
		value, ok := vars[EnvKey(s.prefix, name)]
		if !ok {
			continue
		}
		d, _ := s.schema.Lookup(name)
		raw[name] = parseEnvValue(d.Kind, value)
	}
	return raw, nil
}

// EnvKey returns the variable an option is read from: prefix followed by
// the option name in upper snake case.
func EnvKey(prefix, option string) string {
	var b strings.Builder
	b.WriteString(prefix)

	runes := []rune(option)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		if r == '-' || r == '.' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// parseEnvValue converts a variable to the shape kind expects. Values
// that do not parse stay strings so resolution reports a type mismatch.
func parseEnvValue(kind schema.Kind, value string) any {
	switch kind {
	case schema.KindStringList, schema.KindStringSet:
		if strings.TrimSpace(value) == "" {
			return []any{}
		}
		parts := strings.Split(value, ",")
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	case schema.KindBool:
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	case schema.KindInt:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case schema.KindMap:
		var m map[string]any
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
	}
	return value
}
