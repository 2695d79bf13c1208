// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-build-config/models"
)

func resolved(mode string, packages, hosts []string) models.ResolvedConfig {
	return models.NewResolvedConfig(map[string]any{
		models.OptionExternalPackages:  packages,
		models.OptionImageAllowedHosts: hosts,
		models.OptionOutputMode:        mode,
	}, nil)
}

func TestFromResolved(t *testing.T) {
	cfg := resolved("standalone", []string{"@prisma/client", "bcryptjs"}, []string{"localhost", "vercel.app"})

	opts, err := FromResolved(cfg)
	require.NoError(t, err)

	assert.Equal(t, BuildOptions{
		Bundler:  BundlerOptions{ExternalPackages: []string{"@prisma/client", "bcryptjs"}},
		Packager: PackagerOptions{Mode: models.OutputModeStandalone, Standalone: true},
		Images:   ImageOptions{AllowedHosts: []string{"localhost", "vercel.app"}},
	}, opts)

	assert.True(t, opts.Bundler.IsExternal("bcryptjs"))
	assert.False(t, opts.Bundler.IsExternal("react"))
}

func TestFromResolved_Modes(t *testing.T) {
	tests := []struct {
		mode       string
		standalone bool
		export     bool
	}{
		{mode: "default"},
		{mode: "standalone", standalone: true},
		{mode: "export", export: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			opts, err := FromResolved(resolved(tt.mode, []string{}, []string{}))
			require.NoError(t, err)
			assert.Equal(t, models.OutputMode(tt.mode), opts.Packager.Mode)
			assert.Equal(t, tt.standalone, opts.Packager.Standalone)
			assert.Equal(t, tt.export, opts.Packager.StaticExport)
		})
	}
}

func TestFromResolved_ViewsAreCopies(t *testing.T) {
	cfg := resolved("default", []string{"sharp"}, []string{"a.com"})

	opts, err := FromResolved(cfg)
	require.NoError(t, err)
	opts.Images.AllowedHosts[0] = "evil.com"
	opts.Bundler.ExternalPackages[0] = "left-pad"

	assert.Equal(t, []string{"a.com"}, cfg.ImageAllowedHosts())
	assert.Equal(t, []string{"sharp"}, cfg.ExternalPackages())
}

func TestFromResolved_ZeroConfig(t *testing.T) {
	_, err := FromResolved(models.ResolvedConfig{})
	assert.ErrorIs(t, err, ErrUnresolvedConfig)
}

func TestBuildOptions_For(t *testing.T) {
	opts, err := FromResolved(resolved("export", []string{}, []string{"a.com"}))
	require.NoError(t, err)

	for _, name := range Collaborators() {
		view, err := opts.For(name)
		require.NoError(t, err, name)
		assert.NotNil(t, view)
	}

	view, err := opts.For(CollaboratorImages)
	require.NoError(t, err)
	assert.Equal(t, ImageOptions{AllowedHosts: []string{"a.com"}}, view)

	_, err = opts.For("linker")
	assert.ErrorIs(t, err, ErrUnknownCollaborator)
}
