// file:dline/pkg/x_line/remove.go
package x_line

//---------------------
// Removal
//---------------------

// Removal is the result of GetAndRemove3.
type Removal[T any] struct {
	Gotten  T    // payload at the start coordinates, left in place
	Removed [3]T // the three live payloads after it, in order
}

// GetAndRemove3 reads the element at start and takes out the three live
// elements following it, wrapping around the end of the Line if needed.
// Nodes whose payload is taken stay in the tree as hollow positions.
func (l *Line[T]) GetAndRemove3(start Coordinates) Removal[T] {
	trail := l.trail(start)
	anchor := trail[len(trail)-1]
	if !anchor.live {
		panic(ErrDeadAnchor)
	}
	if l.size < 4 {
		panic(ErrTooShort)
	}

	r := Removal[T]{Gotten: anchor.value}
	var k int
	l.following(start, trail, func(_ []uint16, n *node[T]) bool {
		if n.live {
			r.Removed[k] = n.take()
			k++
		}
		return k < len(r.Removed)
	})
	l.size -= k
	return r
}
