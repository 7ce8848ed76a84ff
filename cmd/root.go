// file:dline/cmd/root.go
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/rskv-p/dline/cmd/cmd_cups"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "dline",
	Short:        "Dense positional line and the cups game built on it",
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cmd_cups.Cmd)
}
