// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-build-config/models"
)

// Collaborator names accepted by [BuildOptions.For].
const (
	CollaboratorBundler  = "bundler"
	CollaboratorPackager = "packager"
	CollaboratorImages   = "images"
)

// Collaborators lists the collaborator names in a stable order.
func Collaborators() []string {
	return []string{CollaboratorBundler, CollaboratorPackager, CollaboratorImages}
}

// BundlerOptions is the bundler's view: packages it must leave external
// to server bundles.
type BundlerOptions struct {
	ExternalPackages []string `json:"externalPackages" yaml:"externalPackages" toml:"externalPackages"`
}

// IsExternal reports whether pkg is in the exclusion set.
func (o BundlerOptions) IsExternal(pkg string) bool {
	_, found := slices.BinarySearch(o.ExternalPackages, pkg)
	return found
}

// PackagerOptions is the output packager's view.
type PackagerOptions struct {
	Mode models.OutputMode `json:"mode" yaml:"mode" toml:"mode"`
	// Standalone asks for a self-contained server bundle.
	Standalone bool `json:"standalone" yaml:"standalone" toml:"standalone"`
	// StaticExport asks for a static site without a server.
	StaticExport bool `json:"staticExport" yaml:"staticExport" toml:"staticExport"`
}

// ImageOptions is the image optimizer's view. Hosts keep their authored
// order; matching remote URLs against them is left to the optimizer.
type ImageOptions struct {
	AllowedHosts []string `json:"allowedHosts" yaml:"allowedHosts" toml:"allowedHosts"`
}

// BuildOptions bundles every collaborator view of one resolved config.
type BuildOptions struct {
	Bundler  BundlerOptions  `json:"bundler" yaml:"bundler" toml:"bundler"`
	Packager PackagerOptions `json:"packager" yaml:"packager" toml:"packager"`
	Images   ImageOptions    `json:"images" yaml:"images" toml:"images"`
}

// FromResolved derives the collaborator views from cfg. The zero config is
// rejected since it stands for a failed resolution.
func FromResolved(cfg models.ResolvedConfig) (BuildOptions, error) {
	if cfg.IsZero() {
		return BuildOptions{}, ErrUnresolvedConfig
	}

	mode := cfg.OutputMode()
	return BuildOptions{
		Bundler: BundlerOptions{
			ExternalPackages: cfg.ExternalPackages(),
		},
		Packager: PackagerOptions{
			Mode:         mode,
			Standalone:   mode == models.OutputModeStandalone,
			StaticExport: mode == models.OutputModeExport,
		},
		Images: ImageOptions{
			AllowedHosts: cfg.ImageAllowedHosts(),
		},
	}, nil
}

// For returns the view of the named collaborator.
func (o BuildOptions) For(collaborator string) (any, error) {
	switch collaborator {
	case CollaboratorBundler:
		return o.Bundler, nil
	case CollaboratorPackager:
		return o.Packager, nil
	case CollaboratorImages:
		return o.Images, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCollaborator, collaborator)
}
