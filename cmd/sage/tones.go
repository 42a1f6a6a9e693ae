package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sage/internal/domain/tone"
	"github.com/kailas-cloud/sage/internal/version"
)

func newTonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List supported reply tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range tone.All() {
				suffix := ""
				if t == tone.Neutral {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", t, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sage %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}
