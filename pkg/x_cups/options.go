// file:dline/pkg/x_cups/options.go
package x_cups

import (
	"github.com/rskv-p/dline/pkg/x_line"

	"github.com/rs/zerolog"
)

//---------------------
// Options
//---------------------

// Option configures a Game.
type Option func(*options)

type options struct {
	width        int
	rebuildDepth int
	rebuildEvery int
	logEvery     int
	logger       *zerolog.Logger
}

func defaultOptions() options {
	return options{
		width:        x_line.DefaultWidth,
		rebuildDepth: 16,
	}
}

// WithWidth sets the slot count of the underlying Line.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// WithRebuildDepth rebuilds the Line whenever a moved cup lands this deep; 0 disables it.
func WithRebuildDepth(d int) Option {
	return func(o *options) { o.rebuildDepth = d }
}

// WithRebuildEvery flattens the Line every n moves; 0 disables it.
func WithRebuildEvery(n int) Option {
	return func(o *options) { o.rebuildEvery = n }
}

// WithLogEvery emits a progress line every n moves; 0 disables it.
func WithLogEvery(n int) Option {
	return func(o *options) { o.logEvery = n }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}
