// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the buildcfg tool itself. It does not describe the user's build
// options; those are read by package loader.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (comments allowed)
//  3. Environment variables prefixed with BUILDCFG_
//  4. Command-line flags that were explicitly set
//
// The main entry point is [GetStructuredConfig].
package config
