// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// buildcfg commands.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of an operation. Keeping them in one
// place keeps wording consistent between commands.
package app

// Name is the binary name used in logs and usage text.
const Name = "buildcfg"

const (
	// MsgToolConfigInvalid is logged when the tool's own settings cannot
	// be loaded or fail validation.
	MsgToolConfigInvalid = "invalid buildcfg settings"

	// MsgSourcesInvalid is logged when an input file cannot be turned into
	// a config source (e.g. unknown extension).
	MsgSourcesInvalid = "invalid config sources"

	// MsgResolutionFailed is logged when the build options could not be
	// resolved.
	MsgResolutionFailed = "build options rejected"

	// MsgOutputFailed is logged when the result cannot be written.
	MsgOutputFailed = "error writing output"
)
