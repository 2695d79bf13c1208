// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/models"
)

// ErrTOMLNull is returned when a value to be written as TOML holds null,
// which TOML cannot represent.
var ErrTOMLNull = errors.New("toml cannot represent null values")

// Encode writes v to w in format f. Map keys are emitted in sorted order
// by every encoder, so equal values always produce identical output.
func Encode(w io.Writer, f loader.Format, v any) error {
	switch f {
	case loader.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case loader.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case loader.FormatTOML:
		if path, ok := findNull(v, ""); ok {
			return fmt.Errorf("%w: %s", ErrTOMLNull, path)
		}
		return toml.NewEncoder(w).SetIndentTables(true).Encode(v)
	}
	return fmt.Errorf("%w: %q", loader.ErrUnsupportedFormat, f)
}

// WriteConfig writes the option values of cfg in format f.
func WriteConfig(w io.Writer, f loader.Format, cfg models.ResolvedConfig) error {
	if err := Encode(w, f, map[string]any(cfg.Raw())); err != nil {
		return fmt.Errorf("error writing resolved config: %w", err)
	}
	return nil
}

// findNull returns the dotted path of the first null inside a decoded
// document, visiting map keys in sorted order.
func findNull(v any, path string) (string, bool) {
	switch value := v.(type) {
	case nil:
		return path, path != ""
	case map[string]any:
		for _, k := range models.RawConfig(value).Keys() {
			if p, ok := findNull(value[k], joinPath(path, k)); ok {
				return p, true
			}
		}
	case []any:
		for i, elem := range value {
			if p, ok := findNull(elem, path+"["+strconv.Itoa(i)+"]"); ok {
				return p, true
			}
		}
	}
	return "", false
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
