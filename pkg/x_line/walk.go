// file:dline/pkg/x_line/walk.go
package x_line

//---------------------
// Traversal Order
//---------------------

// visitFunc receives each node in traversal order with its path.
// The path is only valid during the call. Returning false stops the walk.
type visitFunc[T any] func(path []uint16, n *node[T]) bool

// visit walks the children of n in traversal order, starting at slot from:
// each child is reported before its own children, the head comes first and
// the walk ends at the first empty slot past the head.
func visit[T any](n *node[T], from int, path []uint16, fn visitFunc[T]) bool {
	for i := from; i < len(n.slots); i++ {
		c := n.slots[i]
		if c == nil {
			if i == 0 {
				continue
			}
			return true
		}
		p := append(path, uint16(i))
		if !fn(p, c) || !visit(c, 0, p, fn) {
			return false
		}
	}
	return true
}

// trail resolves c into the nodes along its path, root first.
func (l *Line[T]) trail(c Coordinates) []*node[T] {
	if len(c.path) == 0 {
		panic(ErrStaleCoordinates)
	}
	n := l.root
	nodes := append(l.trailBuf[:0], n)
	for _, i := range c.path {
		if n = n.slot(int(i)); n == nil {
			panic(ErrStaleCoordinates)
		}
		nodes = append(nodes, n)
	}
	l.trailBuf = nodes
	return nodes
}

// following walks every node after c in circular traversal order: first the
// subtree below c, then the right siblings of each ancestor from the deepest
// up, then the whole tree again from the root. The wrap-around pass reaches
// c itself before anything already seen. It reports whether fn stopped it.
func (l *Line[T]) following(c Coordinates, trail []*node[T], fn visitFunc[T]) bool {
	buf := append(l.pathBuf[:0], c.path...)
	defer func() { l.pathBuf = buf }()

	if !visit(trail[len(trail)-1], 0, buf, fn) {
		return true
	}
	for lvl := len(c.path) - 1; lvl >= 0; lvl-- {
		if !visit(trail[lvl], int(c.path[lvl])+1, buf[:lvl], fn) {
			return true
		}
	}
	return !visit(l.root, 0, buf[:0], fn)
}

//---------------------
// Successor
//---------------------

// Next returns the live element following the live element at c and its
// Coordinates, wrapping from the end of the Line to its start. A lone element
// follows itself.
func (l *Line[T]) Next(c Coordinates) (T, Coordinates) {
	trail := l.trail(c)
	if l.size == 0 {
		panic(ErrEmpty)
	}
	if !trail[len(trail)-1].live {
		panic(ErrDeadAnchor)
	}

	var hit *node[T]
	var at Coordinates
	l.following(c, trail, func(path []uint16, n *node[T]) bool {
		if !n.live {
			return true
		}
		hit, at = n, coordsOf(path)
		return false
	})
	if hit == nil {
		panic(ErrEmpty)
	}
	return hit.value, at
}
