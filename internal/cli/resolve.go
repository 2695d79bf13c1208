// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-build-config/internal/adapter"
	"github.com/MKhiriev/go-build-config/internal/app"
	"github.com/MKhiriev/go-build-config/internal/config"
	"github.com/MKhiriev/go-build-config/internal/loader"
	"github.com/MKhiriev/go-build-config/internal/report"
	"github.com/MKhiriev/go-build-config/internal/service"
	"github.com/MKhiriev/go-build-config/models"
)

type resolveFlags struct {
	collaborator string
	fingerprint  bool
	merged       bool
}

func newResolveCommand(opts Options) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve [files...]",
		Short: "Resolve build options from files and the environment",
		Long: `Resolve merges the given option files in order (later files win), applies
the BUILD_* environment overlay, validates the result and prints it.
Use "-" to read a document from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.collaborator, "for", "", "print only the view of one collaborator: bundler, packager or images")
	cmd.Flags().BoolVar(&flags.fingerprint, "fingerprint", false, "print only the config fingerprint")
	cmd.Flags().BoolVar(&flags.merged, "merged", false, "print the merged raw options without resolving them")
	cmd.MarkFlagsMutuallyExclusive("for", "fingerprint", "merged")
	return cmd
}

func runResolve(cmd *cobra.Command, opts Options, flags resolveFlags, args []string) error {
	cfg, log, err := loadToolConfig(cmd.Flags(), args, opts.Stderr)
	if err != nil {
		return err
	}
	ctx := log.WithContext(cmd.Context())

	format, err := loader.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	sources, err := service.NewSources(cfg.Input, opts.Schema, opts.Stdin)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgSourcesInvalid)
		return err
	}

	svc := opts.NewService(*cfg, opts.Schema, log)

	var out bytes.Buffer
	if flags.merged {
		raw, err := svc.Load(ctx, sources...)
		if err != nil {
			return reject(opts.Stderr, cfg, err)
		}
		if err := report.Encode(&out, format, map[string]any(raw)); err != nil {
			return err
		}
		return writeOutput(opts.Stdout, cfg.Output, out.Bytes())
	}

	resolved, err := svc.Resolve(ctx, sources...)
	if err != nil {
		log.Debug().Err(err).Msg(app.MsgResolutionFailed)
		return reject(opts.Stderr, cfg, err)
	}

	if err := renderResolved(&out, format, flags, resolved); err != nil {
		log.Error().Err(err).Msg(app.MsgOutputFailed)
		return err
	}
	return writeOutput(opts.Stdout, cfg.Output, out.Bytes())
}

func renderResolved(w io.Writer, format loader.Format, flags resolveFlags, resolved models.ResolvedConfig) error {
	switch {
	case flags.fingerprint:
		fp, err := resolved.Fingerprint()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, fp)
		return err
	case flags.collaborator != "":
		opts, err := adapter.FromResolved(resolved)
		if err != nil {
			return err
		}
		view, err := opts.For(flags.collaborator)
		if err != nil {
			return err
		}
		return report.Encode(w, format, view)
	}
	return report.WriteConfig(w, format, resolved)
}

func reject(stderr io.Writer, cfg *config.StructuredConfig, err error) error {
	if werr := report.WriteErrors(stderr, err, !cfg.Output.NoColor); werr != nil {
		return werr
	}
	return &rejectedError{err: err}
}

// writeOutput writes data to the configured file, or to stdout when no
// path is set.
func writeOutput(stdout io.Writer, out config.Output, data []byte) error {
	if out.Path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out.Path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", app.MsgOutputFailed, err)
	}
	return nil
}
