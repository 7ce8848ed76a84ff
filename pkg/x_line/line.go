// file:dline/pkg/x_line/line.go
package x_line

//---------------------
// Line
//---------------------

const (
	DefaultWidth = 1024
	MinWidth     = 4
	MaxWidth     = 1 << 16
)

// Line is a circular ordered sequence addressed by Coordinates.
// It is not safe for concurrent use.
type Line[T any] struct {
	root  *node[T]
	width int
	size  int

	// scratch buffers reused across calls
	trailBuf []*node[T]
	pathBuf  []uint16
}

// Option configures a Line.
type Option func(*options)

type options struct {
	width int
}

// WithWidth sets the number of child slots per node.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// New builds a Line holding values in order.
func New[T any](values []T, opts ...Option) *Line[T] {
	o := options{width: DefaultWidth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width < MinWidth || o.width > MaxWidth {
		panic(ErrWidth)
	}
	return &Line[T]{
		root:  build(values, o.width),
		width: o.width,
		size:  len(values),
	}
}

// Len returns the number of live elements.
func (l *Line[T]) Len() int { return l.size }

// Width returns the slot count per node.
func (l *Line[T]) Width() int { return l.width }

// Get returns the payload at c and whether it is live.
func (l *Line[T]) Get(c Coordinates) (T, bool) {
	trail := l.trail(c)
	n := trail[len(trail)-1]
	return n.value, n.live
}

// Rebuild flattens the Line and lays it out again densely.
// Every Coordinates issued before the call is invalid afterwards.
func (l *Line[T]) Rebuild() {
	values := l.Values()
	l.root = build(values, l.width)
	l.size = len(values)
	clear(l.trailBuf)
}
