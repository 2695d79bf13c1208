// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig       = "config"
	FlagAllowUnknown = "allow-unknown"
	FlagEnvPrefix    = "env-prefix"
	FlagNoEnv        = "no-env"
	FlagStdinFormat  = "stdin-format"
	FlagFormat       = "format"
	FlagOutput       = "output"
	FlagNoColor      = "no-color"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
)

// RegisterFlags defines the tool flags on fs.
//
// Flags:
//
//	-c/--config       JSON file with tool settings
//	--allow-unknown   pass unrecognized options through instead of failing
//	--env-prefix      prefix of the build option env overlay
//	--no-env          disable the build option env overlay
//	--stdin-format    encoding of "-" input (json, yaml, toml)
//	-f/--format       output format (json, yaml, toml)
//	-o/--output       output file, stdout when empty
//	--no-color        plain error report
//	--log-level       zerolog level for stderr diagnostics
//	--log-format      json or console
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON file with tool settings")
	fs.Bool(FlagAllowUnknown, false, "pass unrecognized options through instead of failing")
	fs.String(FlagEnvPrefix, "", "prefix of the build option env overlay (default BUILD_)")
	fs.Bool(FlagNoEnv, false, "disable the build option env overlay")
	fs.String(FlagStdinFormat, "", "encoding of standard input: json, yaml or toml")
	fs.StringP(FlagFormat, "f", "", "output format: json, yaml or toml (default json)")
	fs.StringP(FlagOutput, "o", "", "write the resolved config to this file instead of stdout")
	fs.Bool(FlagNoColor, false, "disable styling of the error report")
	fs.String(FlagLogLevel, "", "log level: debug, info, warn, error (default warn)")
	fs.String(FlagLogFormat, "", "log format: json or console")
}

// parseFlags builds a config layer from the flags the user set explicitly.
// Unset flags leave their fields zero so they do not shadow lower layers.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, explicitBools, error) {
	cfg := &StructuredConfig{}

	strs := map[string]*string{
		FlagConfig:      &cfg.JSONFilePath,
		FlagEnvPrefix:   &cfg.Input.EnvPrefix,
		FlagStdinFormat: &cfg.Input.StdinFormat,
		FlagFormat:      &cfg.Output.Format,
		FlagOutput:      &cfg.Output.Path,
		FlagLogLevel:    &cfg.Log.Level,
		FlagLogFormat:   &cfg.Log.Format,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	bools := explicitBools{}
	for _, s := range boolSettings {
		if fs.Lookup(s.flag) == nil || !fs.Changed(s.flag) {
			continue
		}
		v, err := fs.GetBool(s.flag)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading flag --%s: %w", s.flag, err)
		}
		*s.field(cfg) = v
		bools[s.flag] = v
	}

	return cfg, bools, nil
}
