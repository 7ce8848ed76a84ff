// file:dline/cmd/cmd_cups/long.go
package cmd_cups

import (
	"fmt"

	"github.com/spf13/cobra"
)

// longCmd prints the product of the two cups after cup 1
var longCmd = &cobra.Command{
	Use:     "long [labels]",
	Short:   "Play a long game and print the product of the two cups after cup 1",
	Example: "  dline cups long 389125467",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := longFlags.play(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.ProductAfterOne())
		return nil
	},
}

var longFlags *runFlags

func init() {
	longFlags = bindFlags(longCmd, 10_000_000, 1_000_000)
}
