// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// boolSetting describes one bool setting across every source.
type boolSetting struct {
	flag  string
	env   string
	field func(*StructuredConfig) *bool
}

var boolSettings = []boolSetting{
	{
		flag:  FlagAllowUnknown,
		env:   "RESOLVER_ALLOW_UNKNOWN",
		field: func(c *StructuredConfig) *bool { return &c.Resolver.AllowUnknown },
	},
	{
		flag:  FlagNoEnv,
		env:   "INPUT_DISABLE_ENV",
		field: func(c *StructuredConfig) *bool { return &c.Input.DisableEnv },
	},
	{
		flag:  FlagNoColor,
		env:   "OUTPUT_NO_COLOR",
		field: func(c *StructuredConfig) *bool { return &c.Output.NoColor },
	},
}

// explicitBools holds the bool settings a layer set on purpose, keyed by
// flag name. mergo never lets false override true, so the builder applies
// these on top of each merged layer.
type explicitBools map[string]bool

func (e explicitBools) apply(cfg *StructuredConfig) {
	for _, s := range boolSettings {
		if v, ok := e[s.flag]; ok {
			*s.field(cfg) = v
		}
	}
}

// envBools reports the bool settings present in the environment, taking
// the parsed values from cfg.
func envBools(cfg *StructuredConfig) explicitBools {
	set := explicitBools{}
	for _, s := range boolSettings {
		if v, ok := os.LookupEnv(EnvPrefix + s.env); ok && strings.TrimSpace(v) != "" {
			set[s.flag] = *s.field(cfg)
		}
	}
	return set
}

// jsonBools mirrors the bool settings of the JSON file with pointers so
// that an explicit false can be told apart from an absent key.
type jsonBools struct {
	Input struct {
		DisableEnv *bool `json:"disable_env"`
	} `json:"input"`
	Resolver struct {
		AllowUnknown *bool `json:"allow_unknown"`
	} `json:"resolver"`
	Output struct {
		NoColor *bool `json:"no_color"`
	} `json:"output"`
}

func parseJSONBools(data []byte) (explicitBools, error) {
	var b jsonBools
	if err := json.Unmarshal(jsonc.ToJSON(data), &b); err != nil {
		return nil, err
	}

	set := explicitBools{}
	for flag, v := range map[string]*bool{
		FlagAllowUnknown: b.Resolver.AllowUnknown,
		FlagNoEnv:        b.Input.DisableEnv,
		FlagNoColor:      b.Output.NoColor,
	} {
		if v != nil {
			set[flag] = *v
		}
	}
	return set, nil
}
