package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikeymoomin/FastGEO/pkg/density"
)

func densityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "density <text-file>",
		Short: "Report the information density (entropy) of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f bits/token\n", density.InformationDensity(string(content)))
			return nil
		},
	}
	return cmd
}
