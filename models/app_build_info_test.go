// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "2026-01-02", "deadbeef")
	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
	assert.Equal(t, "buildcfg v1.0.0 (commit deadbeef, built 2026-01-02)", info.String())
}

func TestNewAppBuildInfo_Empty(t *testing.T) {
	info := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
