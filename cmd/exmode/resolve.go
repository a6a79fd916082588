// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/exmode/exmode/internal/ex"
)

// NewResolveCmd creates the resolve subcommand.
func NewResolveCmd() *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "resolve TOKEN",
		Short: "Resolve an abbreviated command token to its canonical name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cmd.Flags())
			if err != nil {
				return err
			}

			var m *ex.Mapping
			if scopeName != "" {
				m, err = reg.LookupInScope(args[0], scopeName)
			} else {
				m, err = reg.Lookup(args[0])
			}
			if err != nil {
				cmd.PrintErrln(ex.UserMessage(err))
				return err
			}

			cmd.Println(m.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&scopeName, "scope", "", "restrict lookup to commands applicable in this scope")

	return cmd
}
