package seq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynagraph/dynagraph/agg"
)

func TestSplay_CreateYieldsConsecutiveHandles(t *testing.T) {
	c := NewSplay[int64, int64](agg.AggSum{})
	h1 := c.Create(1)
	h2 := c.Create(2)
	require.Equal(t, h1+1, h2)
}

func TestSplay_RepeatedAccessKeepsTreeUsable(t *testing.T) {
	c := NewSplay[int64, int64](agg.AggSum{})
	root := buildSeq(t, c, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	// Hammer First and Root repeatedly; the first round splays the
	// concatenation root and the leftmost node, later rounds keep
	// re-splaying the leftmost node, so this exercises rotate/splay
	// without ever restructuring the logical sequence.
	for i := 0; i < 50; i++ {
		_ = c.First(root)
		root = c.Root(root)
	}
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, toSlice(c, root))
}

func TestSplay_RootIsLeftmostAfterReshuffle(t *testing.T) {
	c := NewSplay[int64, int64](agg.AggSum{})
	root := buildSeq(t, c, 10, 20, 30)
	last := c.Last(root)
	rep := c.Root(last)
	require.Equal(t, int64(10), c.Data(rep))
}
