// file:dline/pkg/x_line/iter.go
package x_line

import "iter"

//---------------------
// Iteration
//---------------------

// All yields every live element with its Coordinates in traversal order.
// The sequence is lazy and may be ranged over again; mutating the Line
// while ranging is not supported.
func (l *Line[T]) All() iter.Seq2[Coordinates, T] {
	return func(yield func(Coordinates, T) bool) {
		visit(l.root, 0, nil, func(path []uint16, n *node[T]) bool {
			if !n.live {
				return true
			}
			return yield(coordsOf(path), n.value)
		})
	}
}

// Values returns the live payloads in traversal order.
func (l *Line[T]) Values() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Index maps each payload to its Coordinates.
func Index[T comparable](l *Line[T]) map[T]Coordinates {
	idx := make(map[T]Coordinates, l.Len())
	for c, v := range l.All() {
		idx[v] = c
	}
	return idx
}
