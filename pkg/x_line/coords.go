// file:dline/pkg/x_line/coords.go
package x_line

import (
	"slices"
	"strconv"
	"strings"
)

//---------------------
// Coordinates
//---------------------

// Coordinates is an opaque root-to-node path naming one position of a Line.
// It stays valid across GetAndRemove3 and Insert3 and is invalidated by Rebuild.
type Coordinates struct {
	path []uint16
}

// coordsOf copies path into a new handle.
func coordsOf(path []uint16) Coordinates {
	return Coordinates{path: slices.Clone(path)}
}

// Depth returns the number of levels below the root.
func (c Coordinates) Depth() int { return len(c.path) }

// IsZero reports whether c names nothing.
func (c Coordinates) IsZero() bool { return len(c.path) == 0 }

func (c Coordinates) Equal(o Coordinates) bool { return slices.Equal(c.path, o.path) }

func (c Coordinates) Clone() Coordinates { return coordsOf(c.path) }

func (c Coordinates) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, s := range c.path {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	b.WriteByte('>')
	return b.String()
}
