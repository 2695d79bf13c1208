// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader reads raw build configuration from its sources.
//
// A [Source] yields one [models.RawConfig] layer: a JSON/JSONC, YAML or
// TOML file, an in-memory reader, or an environment overlay. Layers are
// combined with [Merge] (later layers win, lists are replaced, nested
// objects are merged) and framework-style option names are rewritten to
// canonical ones by [Canonicalize] before the result is handed to the
// resolver.
//
// Loaders never validate option values. A value of the wrong shape is
// carried as authored so the resolver can report it with its path.
package loader
