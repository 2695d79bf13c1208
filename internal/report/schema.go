// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/schema"
)

// OptionInfo describes one schema option for machine-readable output.
type OptionInfo struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Kind        string `json:"kind" yaml:"kind" toml:"kind"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// DescribeSchema lists the options of s in name order.
func DescribeSchema(s *schema.OptionSchema) []OptionInfo {
	names := s.Names()
	out := make([]OptionInfo, 0, len(names))
	for _, name := range names {
		d, _ := s.Lookup(name)
		info := OptionInfo{
			Name:        name,
			Kind:        d.Kind.String(),
			Required:    d.Required,
			Description: d.Description,
		}
		if def, ok := s.DefaultValue(name); ok {
			info.Default = def
		}
		out = append(out, info)
	}
	return out
}

// WriteSchema renders s as a table.
func WriteSchema(w io.Writer, s *schema.OptionSchema, color bool) error {
	st := newStyles(w, color)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.detail).
		Headers("OPTION", "KIND", "REQUIRED", "DEFAULT", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.path.Padding(0, 1)
			}
			return st.cell
		})

	for _, info := range DescribeSchema(s) {
		def := "-"
		if !info.Required {
			def = formatDefault(info.Default)
		}
		t.Row(info.Name, info.Kind, fmt.Sprint(info.Required), def, info.Description)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// WriteSchemaAs writes the schema description in format f.
func WriteSchemaAs(w io.Writer, f loader.Format, s *schema.OptionSchema) error {
	return Encode(w, f, map[string][]OptionInfo{"options": DescribeSchema(s)})
}

func formatDefault(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
