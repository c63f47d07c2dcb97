// Package dynagraph maintains connectivity and 2-core membership over
// an undirected simple graph under interleaved edge insertions and
// deletions.
//
// Five packages build the solver bottom-up:
//
//	agg/    — the aggregated-data protocol wrapping every sequence element
//	seq/    — balanced sequence containers (treap and splay tree)
//	ett/    — Euler-Tour Trees over a seq.Container
//	lct/    — Link-Cut Trees over a seq.Container
//	core2c/ — the HDT layered dynamic-2-core solver, built from ett and lct
//
// core2c.Solver is the package most callers want:
//
//	s := core2c.New(n)
//	s.AddEdge(0, 1)
//	s.IsConnected(0, 1)
//	s.IsIn2Core(0)
//
// cmd/dynagraphctl drives a Solver from a line-oriented command stream;
// the Example functions in each package's example_test.go are scripted
// walkthroughs of the same API.
package dynagraph
