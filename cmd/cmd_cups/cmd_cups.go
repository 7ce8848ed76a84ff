// file:dline/cmd/cmd_cups/cmd_cups.go
package cmd_cups

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rskv-p/dline/pkg/x_cfg"
	"github.com/rskv-p/dline/pkg/x_cups"
	"github.com/rskv-p/dline/pkg/x_log"
	"github.com/rskv-p/dline/recover"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "cups",
	Short: "Play the cups game on a dense line",
}

// runFlags are shared by every game subcommand.
type runFlags struct {
	moves    int
	cups     uint32
	input    string
	config   string
	baseline bool
}

func bindFlags(c *cobra.Command, moves int, cups uint32) *runFlags {
	f := &runFlags{}
	c.Flags().IntVar(&f.moves, "moves", moves, "Number of moves to play")
	c.Flags().Uint32Var(&f.cups, "cups", cups, "Total number of cups")
	c.Flags().StringVarP(&f.input, "input", "i", "", "Read labels from file")
	c.Flags().StringVarP(&f.config, "config", "c", "", "Config file (default $DLINE_CFG or ./dline.json)")
	c.Flags().BoolVar(&f.baseline, "baseline", false, "Use the successor-array implementation")
	return f
}

// labels comes from the arguments, or from --input when there are none.
func (f *runFlags) labels(args []string) ([]uint32, error) {
	if len(args) > 0 {
		return x_cups.ParseLabels(strings.Join(args, " "))
	}
	if f.input == "" {
		return nil, errors.New("labels or --input required")
	}
	file, err := os.Open(f.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return x_cups.ReadLabels(file)
}

// play loads config, builds the chosen implementation and runs it.
func (f *runFlags) play(ctx context.Context, args []string) (x_cups.Player, error) {
	cfg, err := x_cfg.Load(f.config)
	if err != nil {
		return nil, err
	}
	x_log.InitWithConfig(&cfg.Log, "dline")

	labels, err := f.labels(args)
	if err != nil {
		return nil, err
	}
	total := max(f.cups, uint32(len(labels)))

	var p x_cups.Player
	if f.baseline {
		p, err = x_cups.NewBaseline(labels, total)
	} else {
		p, err = x_cups.New(labels, total, gameOptions(cfg)...)
	}
	if err != nil {
		return nil, err
	}

	log := x_log.New("cups")
	log.Info().Int("moves", f.moves).Uint32("cups", total).Bool("baseline", f.baseline).Msg("start")
	run := recover.WrapRecover("cups", "play", func(ctx context.Context) error {
		return p.Play(ctx, f.moves)
	})
	if err := run(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func gameOptions(cfg *x_cfg.Config) []x_cups.Option {
	return []x_cups.Option{
		x_cups.WithWidth(cfg.Width),
		x_cups.WithRebuildDepth(cfg.RebuildDepth),
		x_cups.WithRebuildEvery(cfg.RebuildEvery),
		x_cups.WithLogEvery(cfg.LogEvery),
	}
}

func init() {
	Cmd.AddCommand(playCmd)
	Cmd.AddCommand(longCmd)
}
