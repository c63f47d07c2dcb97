package lct

import "github.com/dynagraph/dynagraph/seq"

// Tree is a Link-Cut Tree: a rooted forest represented as preferred
// paths, each stored as one seq.Container sequence ordered from the
// path's shallow end (position 0) to its deep end. A path's shallow
// end carries a pathParent handle pointing at the vertex, in some
// other path, that it hangs from in the real tree; EMPTY marks a path
// that is the topmost segment of its tree.
type Tree[D any, A any] struct {
	seq        seq.Container[D, A]
	nodes      []seq.Handle
	vertexOf   map[seq.Handle]int
	pathParent []seq.Handle
}

// New builds a forest of len(nodeData) isolated single-vertex trees
// over the given backing sequence, which must not be shared with any
// other Tree or unrelated use.
func New[D any, A any](c seq.Container[D, A], nodeData []D) *Tree[D, A] {
	t := &Tree[D, A]{
		seq:        c,
		nodes:      make([]seq.Handle, len(nodeData)),
		vertexOf:   make(map[seq.Handle]int, len(nodeData)),
		pathParent: make([]seq.Handle, len(nodeData)),
	}
	for i := range t.pathParent {
		t.pathParent[i] = seq.Empty
	}
	for i, d := range nodeData {
		h := c.Create(d)
		t.nodes[i] = h
		t.vertexOf[h] = i
	}
	return t
}
