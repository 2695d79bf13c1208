// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Canonical names of the options recognized by the built-in schema.
const (
	// OptionExternalPackages lists native/runtime dependencies the bundler
	// must leave external instead of inlining them into the output bundle.
	OptionExternalPackages = "externalPackages"

	// OptionImageAllowedHosts is the ordered allow-list of remote hostnames
	// the image optimizer may fetch from.
	OptionImageAllowedHosts = "imageAllowedHosts"

	// OptionOutputMode selects the packaging strategy of the build output.
	OptionOutputMode = "outputMode"
)

// OutputMode selects the packaging strategy handed to the packager.
type OutputMode string

const (
	// OutputModeDefault leaves packaging to the build tool defaults.
	OutputModeDefault OutputMode = "default"

	// OutputModeStandalone asks the packager for a self-contained server
	// bundle suitable for container images.
	OutputModeStandalone OutputMode = "standalone"

	// OutputModeExport produces a static export with no server runtime.
	OutputModeExport OutputMode = "export"
)

// OutputModes returns every recognized output mode in declaration order.
func OutputModes() []OutputMode {
	return []OutputMode{OutputModeDefault, OutputModeStandalone, OutputModeExport}
}

// Valid reports whether m is exactly one of the recognized literals.
// Matching is case-sensitive.
func (m OutputMode) Valid() bool {
	switch m {
	case OutputModeDefault, OutputModeStandalone, OutputModeExport:
		return true
	}
	return false
}

func (m OutputMode) String() string {
	return string(m)
}
