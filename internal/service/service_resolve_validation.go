// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/models"
)

// ResolveValidationService rejects malformed source lists before they
// reach the wrapped service.
type ResolveValidationService struct {
	inner ResolveService
}

func NewResolveValidationService() ResolveServiceWrapper {
	return &ResolveValidationService{}
}

func (v *ResolveValidationService) Wrap(inner ResolveService) ResolveService {
	v.inner = inner
	return v
}

func (v *ResolveValidationService) Schema() *schema.OptionSchema {
	return v.inner.Schema()
}

func (v *ResolveValidationService) Load(ctx context.Context, sources ...loader.Source) (models.RawConfig, error) {
	if err := validateSources(sources); err != nil {
		return nil, fmt.Errorf("error during source validation before loading: %w", err)
	}
	return v.inner.Load(ctx, sources...)
}

func (v *ResolveValidationService) Resolve(ctx context.Context, sources ...loader.Source) (models.ResolvedConfig, error) {
	if err := validateSources(sources); err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("error during source validation before resolving: %w", err)
	}
	return v.inner.Resolve(ctx, sources...)
}

func validateSources(sources []loader.Source) error {
	if len(sources) == 0 {
		return ErrNoSources
	}
	for i, src := range sources {
		if src == nil {
			return fmt.Errorf("%w: position %d", ErrNilSource, i)
		}
	}
	return nil
}
