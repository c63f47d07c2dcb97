package seq_test

import (
	"fmt"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/seq"
)

// ExampleTreap demonstrates building a sequence, reversing a range via
// split/reverse/concat, and reading back the range sum.
func ExampleTreap() {
	c := seq.NewTreap[int64, int64](agg.AggSum{}, 2012)
	handles := make([]seq.Handle, 0, 6)
	for _, v := range []int64{10, 20, 30, 40, 50, 60} {
		handles = append(handles, c.Create(v))
	}
	root := c.ConcatAll(handles)

	prefix, middle, suffix := c.Split(root, 1, 4)
	c.Reverse(middle)
	root = c.Concat(c.Concat(prefix, middle), suffix)

	fmt.Println("total:", c.TotalAgg(root))
	for i := 0; i < c.Len(root); i++ {
		fmt.Print(c.Data(c.FindKth(root, i)), " ")
	}
	fmt.Println()

	// Output:
	// total: 210
	// 10 40 30 20 50 60
}
