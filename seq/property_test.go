package seq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynagraph/dynagraph/agg"
)

// factory builds a fresh, empty Container[int64, int64] backed by
// AggSum, so both the treap and splay variants run the same property
// suite.
type factory struct {
	name string
	make func() Container[int64, int64]
}

func factories() []factory {
	return []factory{
		{name: "treap", make: func() Container[int64, int64] { return NewTreap[int64, int64](agg.AggSum{}, 2012) }},
		{name: "splay", make: func() Container[int64, int64] { return NewSplay[int64, int64](agg.AggSum{}) }},
	}
}

func buildSeq(t *testing.T, c Container[int64, int64], vals ...int64) Handle {
	t.Helper()
	handles := make([]Handle, len(vals))
	for i, v := range vals {
		handles[i] = c.Create(v)
	}
	return c.ConcatAll(handles)
}

func toSlice(c Container[int64, int64], h Handle) []int64 {
	n := c.Len(h)
	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, c.Data(c.FindKth(h, i)))
	}
	return out
}

func TestContainer_ConcatSplitRoundTrip(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 10, 20, 30, 40, 50, 60, 70)
			prefix, middle, suffix := c.Split(root, 2, 5)
			rejoined := c.Concat(c.Concat(prefix, middle), suffix)
			require.Equal(t, []int64{10, 20, 30, 40, 50, 60, 70}, toSlice(c, rejoined))
		})
	}
}

func TestContainer_ReverseInvolution(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 1, 2, 3, 4, 5)
			c.Reverse(root)
			require.Equal(t, []int64{5, 4, 3, 2, 1}, toSlice(c, root))
			c.Reverse(root)
			require.Equal(t, []int64{1, 2, 3, 4, 5}, toSlice(c, root))
		})
	}
}

func TestContainer_TotalAggMatchesFullRange(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 3, 1, 4, 1, 5, 9, 2, 6)
			require.Equal(t, c.TotalAgg(root), c.RangeAgg(root, 0, c.Len(root)))
		})
	}
}

func TestContainer_RangeAggUnderReverseIsOrderReversed(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 1, 2, 3, 4, 5, 6)
			want := c.RangeAgg(root, 2, 5)
			c.Reverse(root)
			n := c.Len(root)
			got := c.RangeAgg(root, n-5, n-2)
			// AggSum is commutative, so Reverse is a no-op on the value,
			// this checks the *window* reversed correctly rather than
			// the aggregate value itself.
			require.Equal(t, want, got)
		})
	}
}

func TestContainer_OrderAndFindKthAgree(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 100, 200, 300, 400)
			for i := 0; i < c.Len(root); i++ {
				h := c.FindKth(root, i)
				require.Equal(t, i, c.Order(h))
			}
		})
	}
}

func TestContainer_NextPrevTraversal(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 7, 8, 9, 10)
			first := c.First(root)
			require.Equal(t, Empty, c.Prev(first))
			last := c.Last(root)
			require.Equal(t, Empty, c.Next(last))

			cur := first
			var seen []int64
			for cur != Empty {
				seen = append(seen, c.Data(cur))
				cur = c.Next(cur)
			}
			require.Equal(t, []int64{7, 8, 9, 10}, seen)
		})
	}
}

func TestContainer_RootIdentifiesSequence(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			a := buildSeq(t, c, 1, 2, 3)
			b := buildSeq(t, c, 4, 5, 6)
			require.NotEqual(t, c.Root(a), c.Root(b))
			joined := c.Concat(a, b)
			require.Equal(t, c.Root(a), c.Root(b))
			require.Equal(t, c.Root(a), c.Root(joined))
		})
	}
}

func TestContainer_MutateDataRefoldsAggregate(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 1, 1, 1)
			target := c.FindKth(root, 1)
			c.MutateData(target, func(d *int64) { *d = 100 })
			require.Equal(t, int64(102), c.TotalAgg(root))
		})
	}
}

func TestContainer_FindElementGuidedDescent(t *testing.T) {
	for _, f := range factories() {
		f := f
		t.Run(f.name, func(t *testing.T) {
			c := f.make()
			root := buildSeq(t, c, 1, 2, 3, 4, 5)
			// Find the first element whose inclusive running sum reaches
			// 6: offset tracks the absolute sum of everything strictly
			// to the left of the current descent subtree, since LeftAgg
			// is only relative to that subtree.
			const target = int64(6)
			var offset int64
			found := c.FindElement(root, func(sd SearchData[int64, int64]) Verdict {
				leftAbs := offset + sd.LeftAgg
				if target <= leftAbs {
					return Left
				}
				selfAbs := leftAbs + sd.CurrentData
				if target <= selfAbs {
					return Found
				}
				offset = selfAbs
				return Right
			})
			require.NotEqual(t, Empty, found)
			require.Equal(t, int64(3), c.Data(found))
		})
	}
}
