package seq

import (
	"math/rand"
	"testing"

	"github.com/dynagraph/dynagraph/agg"
)

// mixedOp applies one randomly chosen operation from the same weighted
// mix the original list benchmark suite uses: concat and split are the
// dominant cost (33% each), reverse and same-sequence queries are
// cheap O(log n) checks (11% each), and range_agg rounds out the rest.
func mixedOp(rng *rand.Rand, c Container[int64, int64], n int) {
	u := Handle(rng.Intn(n))
	switch rng.Intn(100) {
	case 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32:
		v := Handle(rng.Intn(n))
		c.Concat(u, v)
	case 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65:
		sz := c.Len(u)
		ql := rng.Intn(sz)
		qr := ql + rng.Intn(sz-ql+1)
		c.Split(u, ql, qr)
	case 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76:
		c.Reverse(u)
	case 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87:
		v := Handle(rng.Intn(n))
		_ = c.Root(u) == c.Root(v)
	default:
		sz := c.Len(u)
		ql := rng.Intn(sz)
		qr := ql + rng.Intn(sz-ql+1)
		c.RangeAgg(u, ql, qr)
	}
}

func benchMixedOps(b *testing.B, c Container[int64, int64], n int) {
	for i := 0; i < n; i++ {
		c.Create(int64(i))
	}
	rng := rand.New(rand.NewSource(4815162342))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mixedOp(rng, c, n)
	}
}

// BenchmarkTreapMixedOps measures a treap under the concat/split/
// reverse/range-agg operation mix at n=25, matching the original
// list benchmark's fixture size.
func BenchmarkTreapMixedOps(b *testing.B) {
	benchMixedOps(b, NewTreap[int64, int64](agg.AggSum{}, 2012), 25)
}

// BenchmarkSplayMixedOps is BenchmarkTreapMixedOps against the splay
// variant, for side-by-side comparison of the two Container backends.
func BenchmarkSplayMixedOps(b *testing.B) {
	benchMixedOps(b, NewSplay[int64, int64](agg.AggSum{}), 25)
}
