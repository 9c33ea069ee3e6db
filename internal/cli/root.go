// Package cli implements the exhaustgen command.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "exhaustgen",
		Short:        "Generate exhaustive visitor and mapper constructors for string types",
		SilenceUsage: true,
	}
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
