// file:dline/pkg/x_line/dump.go
package x_line

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to w.
func (l *Line[T]) Dump(w io.Writer) {
	if len(l.root.slots) == 0 {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	visit(l.root, 0, nil, func(path []uint16, n *node[T]) bool {
		depth := len(path) - 1
		slot := path[len(path)-1]
		switch {
		case n.live:
			fmt.Fprintf(w, "%s [%d] %+v\n", dumpPre(depth), slot, n.value)
		case slot == 0:
			fmt.Fprintf(w, "%s [0] HEAD\n", dumpPre(depth))
		default:
			fmt.Fprintf(w, "%s [%d] _\n", dumpPre(depth), slot)
		}
		return true
	})
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
