// file:dline/pkg/x_line/stats.go
package x_line

//---------------------
// Shape Statistics
//---------------------

// Stats describes the current shape of a Line.
type Stats struct {
	Live     int // elements carrying a payload
	Hollow   int // nodes left behind by removals, plus heads
	Nodes    int
	MaxDepth int
}

// Stats walks the whole tree; it costs O(nodes).
func (l *Line[T]) Stats() Stats {
	var s Stats
	visit(l.root, 0, nil, func(path []uint16, n *node[T]) bool {
		s.Nodes++
		if n.live {
			s.Live++
		} else {
			s.Hollow++
		}
		s.MaxDepth = max(s.MaxDepth, len(path))
		return true
	})
	return s
}
