// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"io"

	"github.com/MKhiriev/go-build-config/internal/config"
	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/schema"
)

// NewSources builds the source list described by cfg: input files in
// order, then the environment overlay unless it is disabled. The input
// name "-" reads stdin.
func NewSources(cfg config.Input, s *schema.OptionSchema, stdin io.Reader) ([]loader.Source, error) {
	sources := make([]loader.Source, 0, len(cfg.Files)+1)

	for _, path := range cfg.Files {
		if path == config.StdinPath {
			format, err := loader.ParseFormat(cfg.StdinFormat)
			if err != nil {
				return nil, err
			}
			sources = append(sources, loader.NewReaderSource("stdin", format, stdin))
			continue
		}

		src, err := loader.NewFileSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	if !cfg.DisableEnv {
		prefix := cfg.EnvPrefix
		if prefix == "" {
			prefix = loader.DefaultEnvPrefix
		}
		sources = append(sources, loader.NewEnvSource(prefix, s))
	}
	return sources, nil
}
