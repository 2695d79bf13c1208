// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-build-config/internal/config"
	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/report"
)

func newSchemaCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Describe the recognized build options",
		Long:  "Schema prints every option with its kind, default and whether it is required. Pass --format for machine-readable output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadToolConfig(cmd.Flags(), nil, opts.Stderr)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed(config.FlagFormat) {
				return report.WriteSchema(opts.Stdout, opts.Schema, !cfg.Output.NoColor)
			}

			format, err := loader.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			return report.WriteSchemaAs(opts.Stdout, format, opts.Schema)
		},
	}
}
