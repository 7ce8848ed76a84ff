// file:dline/pkg/x_line/insert.go
package x_line

//---------------------
// Insertion
//---------------------

// Insert3 splices values in right after the live element at after, keeping
// their order, and returns the Coordinates of each inserted value.
// Existing Coordinates stay valid.
func (l *Line[T]) Insert3(after Coordinates, values [3]T) [3]Coordinates {
	trail := l.trail(after)
	p := trail[len(trail)-1]
	if !p.live {
		panic(ErrDeadAnchor)
	}
	parent := trail[len(trail)-2]
	path := append(l.pathBuf[:0], after.path...)

	var out [3]Coordinates
	for i, v := range values {
		path, parent, p = l.place(path, parent, p, v)
		out[i] = coordsOf(path)
	}
	l.pathBuf = path
	l.size += len(values)
	return out
}

// place stores v immediately after p, which sits under parent at the last
// index of path, and returns the path, parent and node now holding v.
func (l *Line[T]) place(path []uint16, parent, p *node[T], v T) ([]uint16, *node[T], *node[T]) {
	for {
		head, neck := p.slot(0), p.slot(1)
		last := int(path[len(path)-1])
		room := last+1 < l.width
		var sib *node[T]
		if room {
			sib = parent.slot(last + 1)
		}

		switch {
		case head != nil:
			// anything below p comes right after it: go down the head
			path, parent, p = append(path, 0), p, head
		case neck != nil && !neck.live:
			neck.put(v)
			return append(path, 1), p, neck
		case neck != nil:
			head = &node[T]{}
			p.setSlot(0, head)
			path, parent, p = append(path, 0), p, head
		case room && sib == nil:
			sib = newLeaf(v)
			parent.setSlot(last+1, sib)
			path[len(path)-1]++
			return path, parent, sib
		case room && !sib.live:
			sib.put(v)
			path[len(path)-1]++
			return path, parent, sib
		default:
			neck = newLeaf(v)
			p.setSlot(1, neck)
			return append(path, 1), p, neck
		}
	}
}
