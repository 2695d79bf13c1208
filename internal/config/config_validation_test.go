// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Input:  Input{Files: []string{"build.json"}, StdinFormat: "json", EnvPrefix: "BUILD_"},
		Output: Output{Format: "json"},
		Log:    Log{Level: "warn", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "env only", mutate: func(cfg *StructuredConfig) { cfg.Input.Files = nil }},
		{
			name:   "no input at all",
			mutate: func(cfg *StructuredConfig) { cfg.Input.Files = nil; cfg.Input.DisableEnv = true },
			want:   ErrInvalidInputConfigs,
		},
		{name: "blank file", mutate: func(cfg *StructuredConfig) { cfg.Input.Files = []string{" "} }, want: ErrInvalidInputConfigs},
		{name: "stdin format", mutate: func(cfg *StructuredConfig) { cfg.Input.StdinFormat = "ini" }, want: ErrInvalidInputConfigs},
		{name: "output format", mutate: func(cfg *StructuredConfig) { cfg.Output.Format = "xml" }, want: ErrInvalidOutputConfigs},
		{name: "yml alias", mutate: func(cfg *StructuredConfig) { cfg.Output.Format = "yml" }},
		{name: "log level", mutate: func(cfg *StructuredConfig) { cfg.Log.Level = "loud" }, want: ErrInvalidLogConfigs},
		{name: "log format", mutate: func(cfg *StructuredConfig) { cfg.Log.Format = "xml" }, want: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_ReportsEveryGroup(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Format = "xml"
	cfg.Log.Level = "loud"

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidOutputConfigs)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}
