// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/logger"
	"github.com/MKhiriev/go-build-config/internal/resolver"
	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/models"
)

type resolveService struct {
	resolver *resolver.Resolver

	logger *logger.Logger
}

func NewResolveService(r *resolver.Resolver, logger *logger.Logger) ResolveService {
	return &resolveService{
		resolver: r,
		logger:   logger,
	}
}

func (s *resolveService) Schema() *schema.OptionSchema {
	return s.resolver.Schema()
}

func (s *resolveService) Load(ctx context.Context, sources ...loader.Source) (models.RawConfig, error) {
	layers := make([]models.RawConfig, 0, len(sources))
	var errs []error

	for _, src := range sources {
		raw, err := src.Load(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", src.Name(), err))
			continue
		}

		raw, err = loader.Canonicalize(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", src.Name(), err))
			continue
		}

		s.logger.Debug().
			Str("source", src.Name()).
			Strs("keys", raw.Keys()).
			Msg("config source loaded")
		layers = append(layers, raw)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, errors.Join(errs...))
	}

	merged, err := loader.Merge(layers...)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *resolveService) Resolve(ctx context.Context, sources ...loader.Source) (models.ResolvedConfig, error) {
	raw, err := s.Load(ctx, sources...)
	if err != nil {
		s.logger.Err(err).Msg("config sources could not be loaded")
		return models.ResolvedConfig{}, err
	}

	cfg, err := s.resolver.Resolve(raw)
	if err != nil {
		event := s.logger.Warn().Bool("strict", s.resolver.Strict())
		if errs, ok := resolver.AsErrors(err); ok {
			event = event.Int("errors", errs.Len())
		}
		event.Msg("config resolution failed")
		return models.ResolvedConfig{}, err
	}

	fingerprint, err := cfg.Fingerprint()
	if err != nil {
		return models.ResolvedConfig{}, err
	}

	s.logger.Info().
		Int("sources", len(sources)).
		Strs("passthrough", cfg.Passthrough()).
		Str("output_mode", string(cfg.OutputMode())).
		Str("fingerprint", fingerprint).
		Msg("config resolved")
	return cfg, nil
}
