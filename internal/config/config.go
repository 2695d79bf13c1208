// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable read into
// [StructuredConfig].
const EnvPrefix = "BUILDCFG_"

// StdinPath is the input file name that selects standard input.
const StdinPath = "-"

// StructuredConfig is the top-level configuration of the buildcfg tool.
// It is populated by merging built-in defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key in the JSON config file.
type StructuredConfig struct {
	// Input selects where raw build options are read from.
	Input Input `envPrefix:"INPUT_" json:"input"`

	// Resolver holds resolution settings.
	Resolver Resolver `envPrefix:"RESOLVER_" json:"resolver"`

	// Output controls how the resolved config is written.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Log controls diagnostic logging on stderr.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file for
	// the tool. Populated via BUILDCFG_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Input selects the raw option sources.
type Input struct {
	// Files are raw option documents merged in order, later files win.
	// "-" reads standard input.
	// Env: BUILDCFG_INPUT_FILES (comma separated)
	Files []string `env:"FILES" envSeparator:"," json:"files"`

	// StdinFormat is the encoding of standard input (json, yaml, toml).
	// Env: BUILDCFG_INPUT_STDIN_FORMAT
	StdinFormat string `env:"STDIN_FORMAT" json:"stdin_format"`

	// EnvPrefix is the prefix of the environment overlay for build
	// options, e.g. BUILD_OUTPUT_MODE.
	// Env: BUILDCFG_INPUT_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX" json:"env_prefix"`

	// DisableEnv turns the environment overlay off.
	// Env: BUILDCFG_INPUT_DISABLE_ENV
	DisableEnv bool `env:"DISABLE_ENV" json:"disable_env"`
}

// Resolver holds resolution settings.
type Resolver struct {
	// AllowUnknown passes unrecognized options through instead of
	// rejecting them.
	// Env: BUILDCFG_RESOLVER_ALLOW_UNKNOWN
	AllowUnknown bool `env:"ALLOW_UNKNOWN" json:"allow_unknown"`
}

// Strict reports whether unknown options are rejected.
func (r Resolver) Strict() bool {
	return !r.AllowUnknown
}

// Output controls how the resolved config is written.
type Output struct {
	// Format is json, yaml or toml.
	// Env: BUILDCFG_OUTPUT_FORMAT
	Format string `env:"FORMAT" json:"format"`

	// Path is the destination file; empty means stdout.
	// Env: BUILDCFG_OUTPUT_PATH
	Path string `env:"PATH" json:"path"`

	// NoColor disables styling of the error report.
	// Env: BUILDCFG_OUTPUT_NO_COLOR
	NoColor bool `env:"NO_COLOR" json:"no_color"`
}

// Log controls diagnostic logging.
type Log struct {
	// Level is a zerolog level name.
	// Env: BUILDCFG_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// Format is json or console.
	// Env: BUILDCFG_LOG_FORMAT
	Format string `env:"FORMAT" json:"format"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration.
// fs holds the parsed command-line flags registered with [RegisterFlags];
// files are positional input documents, which take precedence over the
// input files of every other source.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet, files []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFiles(files).
		withJSON().
		build()
}
