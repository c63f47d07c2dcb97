package lct_test

import (
	"fmt"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/lct"
	"github.com/dynagraph/dynagraph/seq"
)

// ExampleTree demonstrates rerooting a path and reading the lowest
// common ancestor before and after cutting an edge.
func ExampleTree() {
	c := seq.NewTreap[int64, int64](agg.AggSum{}, 2012)
	f := lct.New[int64, int64](c, []int64{0, 0, 0, 0, 0})
	f.Link(0, 1)
	f.Link(1, 2)
	f.Link(2, 3)
	f.Link(3, 4)

	lca, _ := f.LCA(0, 4)
	fmt.Println("lca before reroot:", lca)

	f.Reroot(2)
	lca, _ = f.LCA(0, 4)
	fmt.Println("lca after reroot:", lca)

	parent, _ := f.Cut(3)
	fmt.Println("cut returns parent:", parent)

	_, ok := f.LCA(0, 4)
	fmt.Println("still connected:", ok)

	// Output:
	// lca before reroot: 0
	// lca after reroot: 2
	// cut returns parent: 2
	// still connected: false
}
