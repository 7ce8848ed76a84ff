// file:dline/pkg/x_cups/game.go
package x_cups

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rskv-p/dline/pkg/x_line"
	"github.com/rskv-p/dline/pkg/x_log"

	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
)

// cancellation is polled once per this many moves
const checkEvery = 1024

// Player is a cups game implementation.
type Player interface {
	Move()
	Play(ctx context.Context, n int) error
	Labels() string
	ProductAfterOne() uint64
	Order() []uint32
	Moves() int
}

//---------------------
// Game
//---------------------

// Game plays the cups game on an x_line.Line.
type Game struct {
	line    *x_line.Line[uint32]
	index   []x_line.Coordinates // by label, slot 0 unused
	current x_line.Coordinates
	total   uint32

	moves    int
	rebuilds int

	opts options
	id   string
	log  zerolog.Logger
}

var _ Player = (*Game)(nil)

// New lays out labels followed by the cups len(labels)+1..total.
func New(labels []uint32, total uint32, opts ...Option) (*Game, error) {
	if err := checkTotal(labels, total); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width < x_line.MinWidth || o.width > x_line.MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrWidth, o.width)
	}
	if o.rebuildDepth < 0 || o.rebuildEvery < 0 || o.logEvery < 0 {
		return nil, ErrThreshold
	}

	g := &Game{
		line:  x_line.New(fill(labels, total), x_line.WithWidth(o.width)),
		index: make([]x_line.Coordinates, total+1),
		total: total,
		opts:  o,
		id:    nuid.Next(),
	}
	base := x_log.New("cups")
	if o.logger != nil {
		base = *o.logger
	}
	g.log = base.With().Str("run", g.id).Logger()

	g.reindex()
	g.current = g.index[labels[0]]
	g.log.Debug().Uint32("cups", total).Int("width", o.width).Msg("game created")
	return g, nil
}

func (g *Game) reindex() {
	for c, cup := range g.line.All() {
		g.index[cup] = c
	}
}

// Move plays one round.
func (g *Game) Move() {
	r := g.line.GetAndRemove3(g.current)

	dest := r.Gotten
	for {
		dest--
		if dest == 0 {
			dest = g.total
		}
		if dest != r.Removed[0] && dest != r.Removed[1] && dest != r.Removed[2] {
			break
		}
	}

	placed := g.line.Insert3(g.index[dest], r.Removed)
	deep := 0
	for i, cup := range r.Removed {
		g.index[cup] = placed[i]
		deep = max(deep, placed[i].Depth())
	}

	_, g.current = g.line.Next(g.current)
	g.moves++

	switch {
	case g.opts.rebuildDepth > 0 && deep >= g.opts.rebuildDepth:
		g.rebuild()
	case g.opts.rebuildEvery > 0 && g.moves%g.opts.rebuildEvery == 0:
		g.rebuild()
	}
}

// rebuild flattens the line and refreshes every stored Coordinates.
func (g *Game) rebuild() {
	cup, _ := g.line.Get(g.current)
	g.line.Rebuild()
	g.reindex()
	g.current = g.index[cup]
	g.rebuilds++
	g.log.Debug().Int("move", g.moves).Int("rebuilds", g.rebuilds).Msg("line rebuilt")
}

// Play runs n moves, stopping early when ctx is done.
func (g *Game) Play(ctx context.Context, n int) error {
	start := time.Now()
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("stopped after %d moves: %w", g.moves, err)
			}
		}
		g.Move()
		if g.opts.logEvery > 0 && g.moves%g.opts.logEvery == 0 {
			st := g.line.Stats()
			g.log.Info().
				Int("move", g.moves).
				Int("rebuilds", g.rebuilds).
				Int("nodes", st.Nodes).
				Int("hollow", st.Hollow).
				Int("depth", st.MaxDepth).
				Msg("progress")
		}
	}
	g.log.Info().
		Int("moves", n).
		Int("rebuilds", g.rebuilds).
		Dur("took", time.Since(start)).
		Msg("moves done")
	return nil
}

// Labels concatenates the labels after cup 1, clockwise.
func (g *Game) Labels() string {
	var b strings.Builder
	for _, cup := range g.Order()[1:] {
		b.WriteString(strconv.FormatUint(uint64(cup), 10))
	}
	return b.String()
}

// ProductAfterOne multiplies the two cups right after cup 1.
func (g *Game) ProductAfterOne() uint64 {
	a, c := g.line.Next(g.index[1])
	b, _ := g.line.Next(c)
	return uint64(a) * uint64(b)
}

// Order returns every cup, starting at cup 1.
func (g *Game) Order() []uint32 {
	out := make([]uint32, 0, g.line.Len())
	out = append(out, 1)
	c := g.index[1]
	for len(out) < g.line.Len() {
		var cup uint32
		cup, c = g.line.Next(c)
		out = append(out, cup)
	}
	return out
}

// Current returns the label of the current cup.
func (g *Game) Current() uint32 {
	cup, _ := g.line.Get(g.current)
	return cup
}

func (g *Game) Moves() int          { return g.moves }
func (g *Game) Rebuilds() int       { return g.rebuilds }
func (g *Game) ID() string          { return g.id }
func (g *Game) Stats() x_line.Stats { return g.line.Stats() }
