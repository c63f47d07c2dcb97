package ett

import (
	"github.com/dynagraph/dynagraph/internal/invariant"
	"github.com/dynagraph/dynagraph/seq"
)

// Direction selects one of the two oriented half-edges of an EdgeRef.
type Direction uint8

const (
	// UtoW is the half-edge created on the u->w leg of Connect.
	UtoW Direction = iota
	// WtoU is the half-edge created on the w->u leg of Connect.
	WtoU
)

// Tree is an Euler-Tour Tree: an unrooted forest represented as Euler
// tours stored in one shared balanced sequence. D is the per-element
// payload type, shared uniformly by node and half-edge elements; A is
// the caller's range-aggregate type.
type Tree[D any, A any] struct {
	seq      seq.Container[Payload[D], Agg[A]]
	nodes    []seq.Handle
	vertexOf map[seq.Handle]int
}

// New builds a forest of len(nodeData) isolated single-vertex trees
// over the given backing sequence, which must have been constructed
// with WrapAggregator(userAgg) and must not be shared with any other
// Tree or ETT-unrelated use.
func New[D any, A any](c seq.Container[Payload[D], Agg[A]], nodeData []D) *Tree[D, A] {
	t := &Tree[D, A]{
		seq:      c,
		nodes:    make([]seq.Handle, len(nodeData)),
		vertexOf: make(map[seq.Handle]int, len(nodeData)),
	}
	for i, d := range nodeData {
		h := c.Create(Payload[D]{Kind: NodeElem, Data: d})
		t.nodes[i] = h
		t.vertexOf[h] = i
	}
	return t
}

// Reroot makes u the first element of its sequence, i.e. the root of
// its tree, by splitting at order(u) and swapping the two halves.
func (t *Tree[D, A]) Reroot(u int) {
	h := t.nodes[u]
	root := t.seq.Root(h)
	pos := t.seq.Order(h)
	if pos == 0 {
		return
	}
	before, after, _ := t.seq.Split(root, pos, t.seq.Len(root))
	t.seq.Concat(after, before)
}

// Handle returns the node handle backing vertex u.
func (t *Tree[D, A]) Handle(u int) seq.Handle { return t.nodes[u] }

// Root returns the vertex currently at the root of u's tree.
func (t *Tree[D, A]) Root(u int) int {
	h := t.seq.First(t.nodes[u])
	v, ok := t.vertexOf[h]
	invariant.Assertf(ok, "ett: sequence root %d is not a node element", h)
	return v
}

// IsConnected reports whether u and w lie in the same tree.
func (t *Tree[D, A]) IsConnected(u, w int) bool {
	return t.seq.Root(t.nodes[u]) == t.seq.Root(t.nodes[w])
}

// TreeSize returns the vertex count of u's tree.
func (t *Tree[D, A]) TreeSize(u int) int {
	return t.SizeAt(t.nodes[u])
}

// SizeAt returns the vertex count of the tree containing handle h.
// Unlike TreeSize, h need not be a node handle: any handle belonging
// to the tree's sequence (e.g. a component anchor returned by
// Disconnect) works, since the Euler-tour length of a k-vertex tree is
// always 3k-2.
func (t *Tree[D, A]) SizeAt(h seq.Handle) int {
	return (t.seq.Len(h) + 2) / 3
}

// Connect links u and w with a new tree edge carrying payloads duw
// (u->w) and dwu (w->u). It reports false without effect if u and w
// are already connected.
func (t *Tree[D, A]) Connect(u, w int, duw, dwu D) (EdgeRef, bool) {
	hu, hw := t.nodes[u], t.nodes[w]
	if t.seq.Root(hu) == t.seq.Root(hw) {
		return EdgeRef{}, false
	}
	t.Reroot(w)

	huw := t.seq.Create(Payload[D]{Kind: EdgeElem, Data: duw})
	hwu := t.seq.Create(Payload[D]{Kind: EdgeElem, Data: dwu})
	invariant.Assertf(hwu == huw+1, "ett: half-edge pair did not receive consecutive handles")
	t.seq.MutateData(huw, func(p *Payload[D]) { p.Other = hwu })
	t.seq.MutateData(hwu, func(p *Payload[D]) { p.Other = huw })

	root := t.seq.Root(hu)
	n := t.seq.Len(root)
	pos := t.seq.Order(hu)
	before, after, _ := t.seq.Split(root, pos+1, n)

	edgeSeg := t.seq.Concat(t.seq.Concat(huw, hw), hwu)
	t.seq.Concat(t.seq.Concat(before, edgeSeg), after)

	return EdgeRef{HUW: huw, HWU: hwu}, true
}

// Disconnect removes the tree edge named by ref, splitting its tree
// into two. It returns an anchor handle into each resulting tree:
// inner is the run of elements strictly between the two half-edges in
// the current sequence order, outer is everything before and after
// them. Right after Connect, inner is the subtree Connect spliced in;
// a reroot performed since can rotate which side lies between the
// half-edges, so outer/inner name the split geometrically rather than
// by the original u/w labels.
func (t *Tree[D, A]) Disconnect(ref EdgeRef) (outer, inner seq.Handle) {
	a, b := t.seq.Order(ref.HUW), t.seq.Order(ref.HWU)
	if a > b {
		a, b = b, a
	}
	root := t.seq.Root(ref.HUW)
	before, span, after := t.seq.Split(root, a, b+1)
	_, middle, _ := t.seq.Split(span, 1, t.seq.Len(span)-1)
	outer = t.seq.Concat(before, after)
	inner = middle
	return outer, inner
}

// FindElement delegates a guided descent to the backing sequence,
// starting from the tree containing h.
func (t *Tree[D, A]) FindElement(h seq.Handle, strat seq.Strategy[Payload[D], Agg[A]]) seq.Handle {
	return t.seq.FindElement(h, strat)
}

// TotalAgg returns the aggregate over the whole tree containing h.
func (t *Tree[D, A]) TotalAgg(h seq.Handle) Agg[A] {
	return t.seq.TotalAgg(h)
}

// VertexOf reports the vertex a node handle represents, if h is one.
func (t *Tree[D, A]) VertexOf(h seq.Handle) (int, bool) {
	v, ok := t.vertexOf[h]
	return v, ok
}

// HandleData reads the raw discriminated payload at h, whether h is a
// node or a half-edge handle.
func (t *Tree[D, A]) HandleData(h seq.Handle) Payload[D] {
	return t.seq.Data(h)
}

// MutateHandleData applies fn to the raw payload at h in place.
func (t *Tree[D, A]) MutateHandleData(h seq.Handle, fn func(*Payload[D])) {
	t.seq.MutateData(h, fn)
}

// Data returns the payload of vertex u's node element.
func (t *Tree[D, A]) Data(u int) D {
	return t.seq.Data(t.nodes[u]).Data
}

// MutateData applies fn to vertex u's node payload in place.
func (t *Tree[D, A]) MutateData(u int, fn func(*D)) {
	t.seq.MutateData(t.nodes[u], func(p *Payload[D]) { fn(&p.Data) })
}

func (t *Tree[D, A]) handleFor(ref EdgeRef, dir Direction) seq.Handle {
	if dir == WtoU {
		return ref.HWU
	}
	return ref.HUW
}

// EData returns the payload of one oriented half-edge of ref.
func (t *Tree[D, A]) EData(ref EdgeRef, dir Direction) D {
	return t.seq.Data(t.handleFor(ref, dir)).Data
}

// MutateEData applies fn to one oriented half-edge's payload in place.
func (t *Tree[D, A]) MutateEData(ref EdgeRef, dir Direction, fn func(*D)) {
	t.seq.MutateData(t.handleFor(ref, dir), func(p *Payload[D]) { fn(&p.Data) })
}
