// file:dline/pkg/x_cups/input.go
package x_cups

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

//---------------------
// Label Input
//---------------------

// ParseLabels reads cup labels from one line of text.
// A single token is read one digit per cup ("389125467"); several tokens
// are one label each ("3 8 9 10 'x'" style quoting is honoured).
func ParseLabels(s string) ([]uint32, error) {
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("tokenize labels: %w", err)
	}
	if len(tokens) == 0 {
		return nil, ErrNoLabels
	}

	var out []uint32
	if len(tokens) == 1 {
		for _, r := range tokens[0] {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q is not a digit", ErrLabels, r)
			}
			out = append(out, uint32(r-'0'))
		}
	} else {
		for _, tok := range tokens {
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrLabels, tok, err)
			}
			out = append(out, uint32(v))
		}
	}
	if err := checkLabels(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadLabels parses the first non-empty line of r.
func ReadLabels(r io.Reader) ([]uint32, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return ParseLabels(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return nil, ErrNoLabels
}

// checkLabels verifies labels hold each of 1..len(labels) exactly once.
func checkLabels(labels []uint32) error {
	if len(labels) == 0 {
		return ErrNoLabels
	}
	seen := make([]bool, len(labels)+1)
	for _, v := range labels {
		if v == 0 || int(v) > len(labels) {
			return fmt.Errorf("%w: %d out of range", ErrLabels, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d repeated", ErrLabels, v)
		}
		seen[v] = true
	}
	return nil
}

// fill appends the extra cups len(labels)+1..total.
func fill(labels []uint32, total uint32) []uint32 {
	cups := make([]uint32, 0, total)
	cups = append(cups, labels...)
	for c := uint32(len(labels)) + 1; c <= total; c++ {
		cups = append(cups, c)
	}
	return cups
}

func checkTotal(labels []uint32, total uint32) error {
	if err := checkLabels(labels); err != nil {
		return err
	}
	if total < uint32(len(labels)) || total < 5 {
		return fmt.Errorf("%w: %d cups for %d labels (need at least 5)", ErrTotal, total, len(labels))
	}
	return nil
}
