package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the sage CLI. Running it without a subcommand serves the API.
func newRootCommand() *cobra.Command {
	var opts serveOptions

	root := &cobra.Command{
		Use:           "sage",
		Short:         "Answer questions with passages from a curated wisdom corpus",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	opts.bind(root)

	root.AddCommand(newServeCommand())
	root.AddCommand(newAskCommand())
	root.AddCommand(newTonesCommand())
	root.AddCommand(newVersionCommand())

	return root
}
