// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrNotAnObject       = errors.New("config document must be an object")
	ErrConflictingAlias  = errors.New("option is set under both its alias and its canonical name")
	ErrNoSources         = errors.New("at least one config source is required")
)
