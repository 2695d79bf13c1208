// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-build-config/models"
)

// Merge folds layers into one config, later layers overriding earlier
// ones. Nested objects merge key by key and lists are replaced whole.
// Inputs are not modified.
func Merge(layers ...models.RawConfig) (models.RawConfig, error) {
	merged := models.RawConfig{}
	for i, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		// mergo stores nested source maps by reference, so merge a copy.
		if err := mergo.Merge(&merged, layer.Clone(), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging config layer %d: %w", i, err)
		}
	}
	return merged, nil
}
