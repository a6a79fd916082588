// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list subcommand.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered commands with their aliases and scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := buildRegistry(cmd.Flags())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALIASES\tSCOPE\tDESCRIPTION")
			for _, m := range reg.Mappings() {
				aliases := strings.Join(m.Names()[1:], ", ")
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					m.Name(), aliases, m.ScopeSelector(), m.Documentation())
			}
			return w.Flush()
		},
	}
}
