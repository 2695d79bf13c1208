// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// parseJSON reads the tool config file at jsonFilePath. Comments and
// trailing commas are allowed. Unknown keys are rejected so a misspelled
// setting is not silently ignored.
func parseJSON(jsonFilePath string) (*StructuredConfig, explicitBools, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var cfg StructuredConfig
	if err := decodeStrict(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	bools, err := parseJSONBools(data)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return &cfg, bools, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
