// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildcfg.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, no defaults and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Nil(t, b.defaults)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies the built-in defaults form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "BUILD_", cfg.Input.EnvPrefix)
	assert.Equal(t, "json", cfg.Input.StdinFormat)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Resolver.Strict())
	assert.Empty(t, cfg.Input.Files)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that each layer overrides the
// non-zero fields of the ones below it.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Output: Output{Format: "yaml"}, Log: Log{Level: "debug"}},
		&StructuredConfig{Output: Output{Format: "toml"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "BUILD_", cfg.Input.EnvPrefix)
}

// TestBuild_FilesAreReplaced verifies that input file lists are replaced by
// higher layers rather than appended.
func TestBuild_FilesAreReplaced(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Input: Input{Files: []string{"a.json", "b.json"}}},
	)
	b.withFiles([]string{"c.yaml"})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"c.yaml"}, cfg.Input.Files)
}

// TestBuild_ExplicitBoolsApplyPerLayer verifies that an explicit false is
// applied at its own layer, so a higher layer can still turn it back on.
func TestBuild_ExplicitBoolsApplyPerLayer(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	low := &StructuredConfig{Resolver: Resolver{AllowUnknown: true}}
	mid := &StructuredConfig{}
	high := &StructuredConfig{Output: Output{NoColor: true}}
	b.configs = append(b.configs, low, mid, high)
	b.explicit[mid] = explicitBools{FlagAllowUnknown: false, FlagNoColor: false}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.Resolver.AllowUnknown)
	assert.True(t, cfg.Output.NoColor)
}

// TestBuild_ValidationFails verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationFails(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Output: Output{Format: "xml"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidOutputConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that prefixed environment variables are
// picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("BUILDCFG_OUTPUT_FORMAT", "yaml")
	t.Setenv("BUILDCFG_INPUT_FILES", "base.json,prod.yaml")
	t.Setenv("BUILDCFG_RESOLVER_ALLOW_UNKNOWN", "true")
	t.Setenv("BUILDCFG_LOG_LEVEL", "debug")
	t.Setenv("OUTPUT_FORMAT", "toml")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	env := b.configs[0]
	assert.Equal(t, "yaml", env.Output.Format)
	assert.Equal(t, []string{"base.json", "prod.yaml"}, env.Input.Files)
	assert.True(t, env.Resolver.AllowUnknown)
	assert.False(t, env.Resolver.Strict())
	assert.Equal(t, "debug", env.Log.Level)
}

// TestWithEnv_InvalidBool verifies that an unparsable variable sets b.err.
func TestWithEnv_InvalidBool(t *testing.T) {
	t.Setenv("BUILDCFG_INPUT_DISABLE_ENV", "maybe")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_OnlyChangedFlags verifies that flags left at their defaults
// do not produce values.
func TestWithFlags_OnlyChangedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags(newFlagSet(t, "--format", "toml", "--no-env"))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, &StructuredConfig{
		Input:  Input{DisableEnv: true},
		Output: Output{Format: "toml"},
	}, b.configs[0])
	assert.Equal(t, explicitBools{FlagNoEnv: true}, b.explicit[b.configs[0]])
}

// TestWithFlags_NilFlagSet verifies that a nil flag set adds nothing.
func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// TestWithFlags_UnregisteredFlagsIgnored verifies that a flag set without
// the tool flags yields an empty layer.
func TestWithFlags_UnregisteredFlagsIgnored(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	b := newConfigBuilder().withFlags(fs)

	require.NoError(t, b.err)
	assert.Equal(t, &StructuredConfig{}, b.configs[0])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_SlotsBelowOtherLayers verifies that the JSON layer is placed
// under env and flag layers.
func TestWithJSON_SlotsBelowOtherLayers(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		// tool settings
		"output": {"format": "yaml", "path": "out.yaml"},
		"log": {"level": "info"},
	}`)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path, Output: Output{Format: "toml"}})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "yaml", b.configs[0].Output.Format)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Output.Format)
	assert.Equal(t, "out.yaml", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, `{"log": {"level": "error"}}`)
	last := writeTempJSONConfig(t, `{"log": {"level": "debug"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: last},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "debug", b.configs[0].Log.Level)
}

// TestWithJSON_Errors verifies that missing, malformed and misspelled files
// set b.err.
func TestWithJSON_Errors(t *testing.T) {
	paths := []string{
		"/nonexistent/buildcfg.json",
		writeTempJSONConfig(t, "{not valid json"),
		writeTempJSONConfig(t, `{"output": {"formt": "yaml"}}`),
	}
	for _, path := range paths {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
		b.withJSON()
		assert.Error(t, b.err, path)
	}
}

// ── GetStructuredConfig ──────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies the full layer order:
// defaults < JSON < env < flags < positional files.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"input": {"files": ["from-json.json"], "env_prefix": "JSON_"},
		"output": {"format": "yaml", "path": "json.out"},
		"log": {"level": "info", "format": "json"}
	}`)
	t.Setenv("BUILDCFG_CONFIG", path)
	t.Setenv("BUILDCFG_OUTPUT_FORMAT", "toml")
	t.Setenv("BUILDCFG_LOG_LEVEL", "error")

	fs := newFlagSet(t, "--log-level", "debug", "--allow-unknown")

	cfg, err := GetStructuredConfig(fs, []string{"cli.yaml"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cli.yaml"}, cfg.Input.Files)
	assert.Equal(t, "JSON_", cfg.Input.EnvPrefix)
	assert.Equal(t, "toml", cfg.Output.Format)
	assert.Equal(t, "json.out", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Resolver.Strict())
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetStructuredConfig_ExplicitFalseOverrides verifies that a bool set to
// false on a higher layer undoes a true from a lower one.
func TestGetStructuredConfig_ExplicitFalseOverrides(t *testing.T) {
	t.Setenv("BUILDCFG_RESOLVER_ALLOW_UNKNOWN", "true")
	t.Setenv("BUILDCFG_OUTPUT_NO_COLOR", "true")

	cfg, err := GetStructuredConfig(newFlagSet(t, "--allow-unknown=false", "--no-color=false"), []string{"a.json"})
	require.NoError(t, err)
	assert.True(t, cfg.Resolver.Strict())
	assert.False(t, cfg.Output.NoColor)
}

// TestGetStructuredConfig_EnvFalseOverridesJSON verifies the same rule
// between the JSON file and the environment.
func TestGetStructuredConfig_EnvFalseOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"input": {"disable_env": true},
		"resolver": {"allow_unknown": true},
	}`)
	t.Setenv("BUILDCFG_CONFIG", path)
	t.Setenv("BUILDCFG_RESOLVER_ALLOW_UNKNOWN", "false")

	cfg, err := GetStructuredConfig(newFlagSet(t), []string{"a.json"})
	require.NoError(t, err)
	assert.True(t, cfg.Resolver.Strict())
	assert.True(t, cfg.Input.DisableEnv)
}

// TestGetStructuredConfig_UnsetBoolsKeepLowerLayers verifies that a layer
// which does not mention a bool leaves it alone.
func TestGetStructuredConfig_UnsetBoolsKeepLowerLayers(t *testing.T) {
	t.Setenv("BUILDCFG_RESOLVER_ALLOW_UNKNOWN", "true")

	cfg, err := GetStructuredConfig(newFlagSet(t, "--format", "yaml"), []string{"a.json"})
	require.NoError(t, err)
	assert.False(t, cfg.Resolver.Strict())
}

// TestGetStructuredConfig_ConfigFlag verifies that -c selects the JSON file.
func TestGetStructuredConfig_ConfigFlag(t *testing.T) {
	path := writeTempJSONConfig(t, `{"output": {"format": "toml"}}`)

	cfg, err := GetStructuredConfig(newFlagSet(t, "-c", path), nil)
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Output.Format)
}
