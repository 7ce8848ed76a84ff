// file:dline/cmd/cmd_cups/play.go
package cmd_cups

import (
	"fmt"

	"github.com/spf13/cobra"
)

// playCmd prints the labels after cup 1
var playCmd = &cobra.Command{
	Use:     "play [labels]",
	Short:   "Play a short game and print the labels after cup 1",
	Example: "  dline cups play 389125467 --moves 100",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := playFlags.play(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Labels())
		return nil
	},
}

var playFlags *runFlags

func init() {
	playFlags = bindFlags(playCmd, 100, 9)
}
