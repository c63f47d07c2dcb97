// Package core2c implements the dynamic 2-core solver: an HDT layered
// spanning-forest dynamic-connectivity structure, extended with an
// auxiliary Link-Cut Tree for fast 2-core membership queries.
package core2c

import (
	"math"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/ett"
	"github.com/dynagraph/dynagraph/lct"
	"github.com/dynagraph/dynagraph/seq"
)

// EdgeID is an opaque, monotonically increasing identifier assigned to
// every live edge, used only to break ties deterministically when more
// than one extra edge of a level is incident to the same vertex.
type EdgeID uint64

// CoreData is the uniform per-element payload of every layered ETT:
// node elements carry per-level extra-edge counters, half-edge
// elements carry the tree edge's current level. IsEdge distinguishes
// the two uses, since the wrapped aggregator sees only CoreData, never
// ett.Kind.
type CoreData struct {
	IsEdge bool
	// Level is the tree edge's current HDT level (half-edge elements only).
	Level int
	// ExtraEdges counts extra edges of this ETT's own level incident to
	// this vertex (node elements only).
	ExtraEdges int
	// AnyExtraEdges counts extra edges of any level incident to this
	// vertex; only maintained on the level-0 forest.
	AnyExtraEdges int
}

// CoreAgg is the range-aggregate of CoreData: the minimum tree-edge
// level in range (identity noEdgeLevel when none), and the two running
// extra-edge sums described in CoreData.
type CoreAgg struct {
	MinEdgeLevel       int
	TotalExtraEdges    int
	TotalAnyExtraEdges int
}

// noEdgeLevel is the identity value of CoreAgg.MinEdgeLevel: no
// half-edge is cheaper than "no half-edge at all" in range.
const noEdgeLevel = math.MaxInt

// coreAggregator folds CoreData into CoreAgg. Reverse is the identity:
// minimum and sum are both commutative, so neither field depends on
// iteration order.
type coreAggregator struct{}

func (coreAggregator) From(d CoreData) CoreAgg {
	if d.IsEdge {
		return CoreAgg{MinEdgeLevel: d.Level}
	}
	return CoreAgg{
		MinEdgeLevel:       noEdgeLevel,
		TotalExtraEdges:    d.ExtraEdges,
		TotalAnyExtraEdges: d.AnyExtraEdges,
	}
}

func (coreAggregator) Merge(left, right CoreAgg) CoreAgg {
	return CoreAgg{
		MinEdgeLevel:       min(left.MinEdgeLevel, right.MinEdgeLevel),
		TotalExtraEdges:    left.TotalExtraEdges + right.TotalExtraEdges,
		TotalAnyExtraEdges: left.TotalAnyExtraEdges + right.TotalAnyExtraEdges,
	}
}

func (coreAggregator) Reverse(a CoreAgg) CoreAgg { return a }

func (coreAggregator) Default() CoreAgg { return CoreAgg{MinEdgeLevel: noEdgeLevel} }

var _ agg.Aggregator[CoreData, CoreAgg] = coreAggregator{}

// trivialAgg is the no-op Aggregator backing lc0: the spanning-tree
// LCT carries no per-element payload of its own, only forest shape.
type trivialAgg struct{}

func (trivialAgg) From(struct{}) struct{}          { return struct{}{} }
func (trivialAgg) Merge(struct{}, struct{}) struct{} { return struct{}{} }
func (trivialAgg) Reverse(struct{}) struct{}       { return struct{}{} }
func (trivialAgg) Default() struct{}               { return struct{}{} }

var _ agg.Aggregator[struct{}, struct{}] = trivialAgg{}

// edgeKey normalizes an undirected edge to its sorted endpoint pair.
type edgeKey struct{ U, W int }

func makeKey(u, w int) edgeKey {
	if u > w {
		u, w = w, u
	}
	return edgeKey{U: u, W: w}
}

// vlKey indexes extras by the vertex they are incident to and the
// level they currently live at.
type vlKey struct {
	V, Level int
}

// edgeRecord is the live state of one edge. Refs is nil while the edge
// is an extra (non-tree) edge; once it becomes a tree edge, Refs holds
// one EdgeRef per level 0..Level, per I4.
type edgeRecord struct {
	ID    EdgeID
	U, W  int
	Level int
	Refs  []ett.EdgeRef
}

// Solver is the dynamic 2-core solver: L layered Euler-Tour Trees, one
// Link-Cut Tree for the level-0 spanning forest, and an edge registry.
type Solver struct {
	n      int
	l      int
	forest []*ett.Tree[CoreData, CoreAgg]
	lc0    *lct.Tree[struct{}, struct{}]

	edges      map[edgeKey]*edgeRecord
	recordsByID map[EdgeID]*edgeRecord
	extras     map[vlKey]map[EdgeID]struct{}
	halfToEdge []map[seq.Handle]edgeKey
	nextID     EdgeID
}

// levelsFor returns L = ceil(log2(n)) + 1, the number of HDT levels
// for an n-vertex graph.
func levelsFor(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits + 1
}

// New builds a solver over n isolated vertices with no edges.
func New(n int) *Solver {
	l := levelsFor(n)
	s := &Solver{
		n:           n,
		l:           l,
		forest:      make([]*ett.Tree[CoreData, CoreAgg], l),
		edges:       make(map[edgeKey]*edgeRecord),
		recordsByID: make(map[EdgeID]*edgeRecord),
		extras:      make(map[vlKey]map[EdgeID]struct{}),
		halfToEdge:  make([]map[seq.Handle]edgeKey, l),
	}
	for lvl := 0; lvl < l; lvl++ {
		c := seq.NewTreap[ett.Payload[CoreData], ett.Agg[CoreAgg]](
			ett.WrapAggregator[CoreData, CoreAgg](coreAggregator{}), int64(2012+lvl))
		s.forest[lvl] = ett.New[CoreData, CoreAgg](c, make([]CoreData, n))
		s.halfToEdge[lvl] = make(map[seq.Handle]edgeKey)
	}
	lc0Seq := seq.NewSplay[struct{}, struct{}](trivialAgg{})
	s.lc0 = lct.New[struct{}, struct{}](lc0Seq, make([]struct{}, n))
	return s
}
