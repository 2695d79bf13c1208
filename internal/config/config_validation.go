// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/logger"
)

// validate checks that the final merged [StructuredConfig] is usable.
// All failing groups are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if len(cfg.Input.Files) == 0 && cfg.Input.DisableEnv {
		errs = append(errs, fmt.Errorf("%w: no input files and env overlay disabled", ErrInvalidInputConfigs))
	}
	for _, f := range cfg.Input.Files {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, fmt.Errorf("%w: empty input file name", ErrInvalidInputConfigs))
			break
		}
	}
	if _, err := loader.ParseFormat(cfg.Input.StdinFormat); err != nil {
		errs = append(errs, fmt.Errorf("%w: stdin format: %w", ErrInvalidInputConfigs, err))
	}

	if _, err := loader.ParseFormat(cfg.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err))
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", logger.FormatJSON, logger.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format))
	}

	return errors.Join(errs...)
}
