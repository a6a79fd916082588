// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package main

import (
	"log/slog"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/exmode/exmode/internal/ex"
	"github.com/exmode/exmode/internal/exconfig"
	"github.com/exmode/exmode/internal/logging"
	"github.com/exmode/exmode/internal/scope"
	"github.com/exmode/exmode/internal/script"
)

// settings are the resolved global options, merged from flags via koanf.
type settings struct {
	Commands  string `koanf:"commands"`
	LogFormat string `koanf:"log-format"`
}

// NewRootCmd creates the root command for the exmode CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exmode",
		Short: "ExMode - an ex-style command-line engine",
		Long: `ExMode resolves abbreviated ex-style command names against a registry
of builtin and user-defined commands, and renders the canonical syntax
hints ("w[rite]") used in editor help text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetDefault("exmode", cmd.Root().Version, s.LogFormat)
			return nil
		},
	}

	// Global flags available to all subcommands.
	cmd.PersistentFlags().String("commands", "", "user command definition file (YAML)")
	cmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewHintCmd())
	cmd.AddCommand(NewListCmd())

	return cmd
}

// loadSettings merges the persistent flag set into a settings value.
func loadSettings(fs *pflag.FlagSet) (*settings, error) {
	k := koanf.New(".")
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD").Wrap(err)
	}

	var s settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, oops.Code("CONFIG_PARSE").Wrap(err)
	}
	return &s, nil
}

// buildRegistry creates a registry with the builtin command set, extended
// with the user command file when one is configured. A partially bad user
// file still contributes its valid entries.
func buildRegistry(fs *pflag.FlagSet) (*ex.Registry, error) {
	s, err := loadSettings(fs)
	if err != nil {
		return nil, err
	}

	reg := ex.NewRegistry(ex.WithScopeMatcher(scope.NewMatcher()))
	if err := ex.RegisterBuiltins(reg); err != nil {
		return nil, err
	}

	if s.Commands != "" {
		f, err := exconfig.Load(s.Commands)
		if err != nil {
			return nil, err
		}
		defined, err := exconfig.Apply(reg, f, script.NewEngine())
		if err != nil {
			slog.Warn("some user commands failed to load",
				"file", s.Commands,
				"defined", defined,
				"error", err)
		}
	}

	return reg, nil
}
