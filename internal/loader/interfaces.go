// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"

	"github.com/MKhiriev/go-build-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source produces one layer of raw configuration.
type Source interface {
	// Load reads the layer. The returned map is owned by the caller.
	Load(ctx context.Context) (models.RawConfig, error)
	// Name identifies the source in logs and error messages.
	Name() string
}
