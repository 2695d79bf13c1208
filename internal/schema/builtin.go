// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"github.com/MKhiriev/go-build-config/internal/validators"
	"github.com/MKhiriev/go-build-config/models"
)

// BuildOptions returns the declarations of the build pipeline options.
// Callers may extend the slice and pass it to [New] to build a larger
// schema.
func BuildOptions() []Option {
	modes := models.OutputModes()
	literals := make([]string, len(modes))
	for i, m := range modes {
		literals[i] = m.String()
	}

	return []Option{
		{
			Name: models.OptionExternalPackages,
			Descriptor: Descriptor{
				Kind:        KindStringSet,
				Default:     []string{},
				Validator:   validators.PackageSet,
				Description: "native/runtime dependencies the bundler must not inline",
			},
		},
		{
			Name: models.OptionImageAllowedHosts,
			Descriptor: Descriptor{
				Kind:        KindStringList,
				Default:     []string{},
				Validator:   validators.HostList,
				Description: "remote hostnames the image optimizer may fetch from",
			},
		},
		{
			Name: models.OptionOutputMode,
			Descriptor: Descriptor{
				Kind:        KindString,
				Default:     models.OutputModeDefault.String(),
				Validator:   validators.OneOf(literals...),
				Description: "packaging strategy: default, standalone or export",
			},
		},
	}
}

var defaultSchema = MustNew(BuildOptions()...)

// Default returns the process-wide build pipeline schema. The returned
// schema is immutable and shared.
func Default() *OptionSchema {
	return defaultSchema
}
