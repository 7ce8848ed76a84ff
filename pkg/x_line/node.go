// file:dline/pkg/x_line/node.go
package x_line

//---------------------
// Node
//---------------------

// node holds an optional payload and its child slots.
// Slot 0 is the overflow head: it never carries a payload.
// Occupied slots from 1 upward are contiguous.
type node[T any] struct {
	value T
	live  bool
	slots []*node[T]
}

// newLeaf creates a childless node carrying v.
func newLeaf[T any](v T) *node[T] {
	return &node[T]{value: v, live: true}
}

func (n *node[T]) slot(i int) *node[T] {
	if i < len(n.slots) {
		return n.slots[i]
	}
	return nil
}

func (n *node[T]) setSlot(i int, c *node[T]) {
	for len(n.slots) <= i {
		n.slots = append(n.slots, nil)
	}
	n.slots[i] = c
}

func (n *node[T]) put(v T) {
	n.value, n.live = v, true
}

// take clears the payload and returns it.
func (n *node[T]) take() T {
	var zero T
	v := n.value
	n.value, n.live = zero, false
	return v
}

//---------------------
// Dense Layout
//---------------------

// build lays values out under a fresh hollow node.
// Short runs fill slots 1..n directly; longer runs are cut into at most
// width chunks: the first chunk goes under the head, every other chunk
// becomes a node carrying its first value with the rest below it.
func build[T any](values []T, width int) *node[T] {
	n := &node[T]{}
	if len(values) == 0 {
		return n
	}
	if len(values) < width {
		n.slots = make([]*node[T], len(values)+1)
		for i, v := range values {
			n.slots[i+1] = newLeaf(v)
		}
		return n
	}

	size := len(values)/width + 1
	n.slots = make([]*node[T], 0, (len(values)+size-1)/size)
	for len(values) > 0 {
		chunk := values[:min(size, len(values))]
		values = values[len(chunk):]
		if len(n.slots) == 0 {
			n.slots = append(n.slots, build(chunk, width))
			continue
		}
		c := build(chunk[1:], width)
		c.put(chunk[0])
		n.slots = append(n.slots, c)
	}
	return n
}
