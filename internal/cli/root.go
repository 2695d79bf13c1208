// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-build-config/internal/app"
	"github.com/MKhiriev/go-build-config/internal/config"
	"github.com/MKhiriev/go-build-config/internal/logger"
	"github.com/MKhiriev/go-build-config/internal/schema"
	"github.com/MKhiriev/go-build-config/internal/service"
	"github.com/MKhiriev/go-build-config/models"
)

// ServiceFactory builds the resolve service for a command run.
type ServiceFactory func(cfg config.StructuredConfig, s *schema.OptionSchema, l *logger.Logger) service.ResolveService

// Options wires the command tree to its environment.
type Options struct {
	BuildInfo models.AppBuildInfo

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Schema defaults to schema.Default().
	Schema *schema.OptionSchema
	// NewService defaults to the validated resolve service from
	// service.NewServices.
	NewService ServiceFactory
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Schema == nil {
		o.Schema = schema.Default()
	}
	if o.NewService == nil {
		o.NewService = func(cfg config.StructuredConfig, s *schema.OptionSchema, l *logger.Logger) service.ResolveService {
			return service.NewServices(cfg, s, l).ResolveService
		}
	}
	return o
}

// NewRootCommand builds the buildcfg command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()

	root := &cobra.Command{
		Use:           app.Name,
		Short:         "Resolve and validate web build options",
		Long:          "buildcfg merges build option files and env overrides, validates them against the option schema and prints the resolved configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newResolveCommand(opts),
		newSchemaCommand(opts),
		newVersionCommand(opts),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit
// code. Errors not yet reported are printed to stderr.
func Execute(ctx context.Context, opts Options, args []string) int {
	opts = opts.withDefaults()

	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrReported):
		return ExitRejected
	}

	fmt.Fprintf(opts.Stderr, "%s: %v\n", app.Name, err)
	return ExitUsage
}

// loadToolConfig reads the tool settings and builds the command logger.
func loadToolConfig(fs *pflag.FlagSet, files []string, stderr io.Writer) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(fs, files)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", app.MsgToolConfigInvalid, err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewWithFormat(app.Name, stderr, level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
