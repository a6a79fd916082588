// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/exmode/exmode/internal/ex"
)

// NewHintCmd creates the hint subcommand.
func NewHintCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "hint [NAME]",
		Short: "Print the syntax hint for one command, or for all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cmd.Flags())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				m, err := reg.Lookup(args[0])
				if err != nil {
					cmd.PrintErrln(ex.UserMessage(err))
					return err
				}
				hint, err := reg.SyntaxHintForPrefix(m, prefix)
				if err != nil {
					cmd.PrintErrln(ex.UserMessage(err))
					return err
				}
				cmd.Println(hint)
				return nil
			}

			for _, m := range reg.Mappings() {
				hint, err := reg.SyntaxHintFor(m)
				if err != nil {
					return err
				}
				cmd.Println(hint)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "render the alias selected by this prefix instead of the canonical name")

	return cmd
}
