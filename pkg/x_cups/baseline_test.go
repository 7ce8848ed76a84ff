// file:dline/pkg/x_cups/baseline_test.go
package x_cups_test

import (
	"context"
	"testing"

	"github.com/rskv-p/dline/pkg/x_cups"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseline_Example(t *testing.T) {
	b, err := x_cups.NewBaseline(example, 9)
	require.NoError(t, err)
	require.NoError(t, b.Play(context.Background(), 10))
	assert.Equal(t, "92658374", b.Labels())
	require.NoError(t, b.Play(context.Background(), 90))
	assert.Equal(t, "67384529", b.Labels())
	assert.Equal(t, 100, b.Moves())
}

func TestBaseline_Extended(t *testing.T) {
	b, err := x_cups.NewBaseline(example, 12)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 5, 4, 6, 7, 10, 11, 12, 3, 8, 9}, b.Order())
	assert.Equal(t, uint64(2*5), b.ProductAfterOne())
}

func TestBaseline_Long(t *testing.T) {
	if testing.Short() {
		t.Skip("ten million moves")
	}
	b, err := x_cups.NewBaseline(example, 1_000_000)
	require.NoError(t, err)
	require.NoError(t, b.Play(context.Background(), 10_000_000))
	assert.Equal(t, uint64(149245887792), b.ProductAfterOne())
}
