package core2c

import (
	"github.com/dynagraph/dynagraph/internal/invariant"
	"github.com/dynagraph/dynagraph/seq"
)

// IsConnected reports whether u and v lie in the same component. The
// level-0 forest always holds a full spanning forest of the graph, so
// this is a single tree-root comparison.
func (s *Solver) IsConnected(u, v int) bool {
	s.checkVertex(u)
	s.checkVertex(v)
	return s.forest[0].IsConnected(u, v)
}

// IsIn1Core reports whether u has degree at least one. Any edge that
// fails to become a tree edge on insertion does so precisely because
// its endpoints were already reachable through an existing tree edge,
// so tree-edge degree and graph degree agree: u is isolated iff its
// level-0 tree has no other vertex in it.
func (s *Solver) IsIn1Core(u int) bool {
	s.checkVertex(u)
	return s.forest[0].TreeSize(u) > 1
}

// IsIn2Core reports whether u survives leaf-peeling, i.e. lies on a
// cycle or on a tree path between two cycles. With both forests
// rerooted at u, it finds the first and last vertices in Euler-tour
// order that have an incident extra edge: u is in the 2-core iff u is
// one of them or is their lowest common ancestor in the level-0
// spanning tree.
func (s *Solver) IsIn2Core(u int) bool {
	s.checkVertex(u)
	s.forest[0].Reroot(u)
	s.lc0.Reroot(u)

	h := s.forest[0].Handle(u)
	firstH := s.forest[0].FindElement(h, anyExtraStrategy(false))
	if firstH == seq.Empty {
		return false
	}
	lastH := s.forest[0].FindElement(h, anyExtraStrategy(true))

	first, ok1 := s.forest[0].VertexOf(firstH)
	last, ok2 := s.forest[0].VertexOf(lastH)
	invariant.Assertf(ok1 && ok2, "core2c: any-extra-edge search landed on a non-node element")

	if first == last {
		return first == u
	}
	if first == u {
		return true
	}
	lca, connected := s.lc0.LCA(first, last)
	invariant.Assertf(connected, "core2c: first and last any-extra vertices must share u's tree")
	return lca == u
}
