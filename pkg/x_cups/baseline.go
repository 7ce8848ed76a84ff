// file:dline/pkg/x_cups/baseline.go
package x_cups

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

//---------------------
// Baseline
//---------------------

// Baseline plays the same game on a successor array (next[label] = label).
type Baseline struct {
	next    []uint32
	current uint32
	total   uint32
	moves   int
}

var _ Player = (*Baseline)(nil)

func NewBaseline(labels []uint32, total uint32) (*Baseline, error) {
	if err := checkTotal(labels, total); err != nil {
		return nil, err
	}
	cups := fill(labels, total)
	b := &Baseline{
		next:    make([]uint32, total+1),
		current: cups[0],
		total:   total,
	}
	for i, cup := range cups {
		b.next[cup] = cups[(i+1)%len(cups)]
	}
	return b, nil
}

func (b *Baseline) Move() {
	c := b.current
	x := b.next[c]
	y := b.next[x]
	z := b.next[y]
	b.next[c] = b.next[z]

	dest := c
	for {
		dest--
		if dest == 0 {
			dest = b.total
		}
		if dest != x && dest != y && dest != z {
			break
		}
	}
	b.next[z] = b.next[dest]
	b.next[dest] = x

	b.current = b.next[c]
	b.moves++
}

func (b *Baseline) Play(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("stopped after %d moves: %w", b.moves, err)
			}
		}
		b.Move()
	}
	return nil
}

func (b *Baseline) Labels() string {
	var sb strings.Builder
	for cup := b.next[1]; cup != 1; cup = b.next[cup] {
		sb.WriteString(strconv.FormatUint(uint64(cup), 10))
	}
	return sb.String()
}

func (b *Baseline) ProductAfterOne() uint64 {
	a := b.next[1]
	return uint64(a) * uint64(b.next[a])
}

func (b *Baseline) Order() []uint32 {
	out := make([]uint32, 0, b.total)
	out = append(out, 1)
	for cup := b.next[1]; cup != 1; cup = b.next[cup] {
		out = append(out, cup)
	}
	return out
}

func (b *Baseline) Moves() int { return b.moves }
