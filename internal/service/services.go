// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-build-config/internal/config"
	"github.com/MKhiriev/go-build-config/internal/logger"
	"github.com/MKhiriev/go-build-config/internal/resolver"
	"github.com/MKhiriev/go-build-config/internal/schema"
)

type Services struct {
	ResolveService ResolveService
}

func NewServices(cfg config.StructuredConfig, s *schema.OptionSchema, logger *logger.Logger) *Services {
	core := NewResolveService(resolver.New(s, cfg.Resolver.Strict()), logger)

	return &Services{
		ResolveService: NewResolveValidationService().Wrap(core),
	}
}
