// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResolveService turns config sources into a resolved configuration.
type ResolveService interface {
	// Load reads every source, rewrites aliases and merges the layers in
	// order, later sources winning.
	Load(ctx context.Context, sources ...loader.Source) (models.RawConfig, error)
	// Resolve loads the sources and resolves the merged raw config.
	Resolve(ctx context.Context, sources ...loader.Source) (models.ResolvedConfig, error)
	// Schema returns the schema values are resolved against.
	Schema() *schema.OptionSchema
}

// ResolveServiceWrapper defines middleware composition for ResolveService.
// Implementations wrap an existing ResolveService to add behavior such as
// validating.
type ResolveServiceWrapper interface {
	Wrap(ResolveService) ResolveService // returns a decorated ResolveService applying additional behavior
}
