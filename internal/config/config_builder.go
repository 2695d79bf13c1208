// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/logger"
)

// configBuilder collects configuration layers. Defaults sit at the bottom,
// a JSON file layer is slotted directly above them, every other layer
// stacks in the order it was added. explicit records, per layer, the bool
// settings it set so that an explicit false still overrides lower layers.
type configBuilder struct {
	defaults *StructuredConfig
	configs  []*StructuredConfig
	explicit map[*StructuredConfig]explicitBools
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*StructuredConfig, 0, 4),
		explicit: make(map[*StructuredConfig]explicitBools),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	layers := b.configs
	if b.defaults != nil {
		layers = append([]*StructuredConfig{b.defaults}, layers...)
	}
	for _, cfg := range layers {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		b.explicit[cfg].apply(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		Input: Input{
			StdinFormat: string(loader.FormatJSON),
			EnvPrefix:   loader.DefaultEnvPrefix,
		},
		Output: Output{
			Format: string(loader.FormatJSON),
		},
		Log: Log{
			Level:  "warn",
			Format: logger.FormatConsole,
		},
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	b.explicit[envCfg] = envBools(envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagCfg, bools, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	b.explicit[flagCfg] = bools
	return b
}

func (b *configBuilder) withFiles(files []string) *configBuilder {
	if len(files) == 0 {
		return b
	}

	b.configs = append(b.configs, &StructuredConfig{
		Input: Input{Files: append([]string(nil), files...)},
	})
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, bools, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append([]*StructuredConfig{jsonCfg}, b.configs...)
	b.explicit[jsonCfg] = bools
	return b
}
