package lct

import (
	"github.com/dynagraph/dynagraph/internal/invariant"
	"github.com/dynagraph/dynagraph/seq"
)

// Access brings the root-to-u path together into one preferred-path
// sequence and returns the vertex at which the newly assembled
// topmost segment was entered. Called as access(u) then access(v),
// that return value is the LCA of u and v (see LCA).
func (t *Tree[D, A]) Access(u int) int {
	cur := u
	var lower seq.Handle = seq.Empty
	for {
		h := t.nodes[cur]
		root := t.seq.Root(h)
		pos := t.seq.Order(h)
		before, self, tail := t.seq.Split(root, pos, pos+1)
		if tail != seq.Empty {
			tf := t.seq.First(tail)
			tv, ok := t.vertexOf[tf]
			invariant.Assertf(ok, "lct: tail head %d is not a node element", tf)
			t.pathParent[tv] = h
		}
		merged := t.seq.Concat(self, lower)
		path := t.seq.Concat(before, merged)

		head := t.seq.First(path)
		hv, ok := t.vertexOf[head]
		invariant.Assertf(ok, "lct: path head %d is not a node element", head)
		pp := t.pathParent[hv]
		if pp == seq.Empty {
			return cur
		}
		nextV, ok := t.vertexOf[pp]
		invariant.Assertf(ok, "lct: path parent %d is not a node element", pp)
		t.pathParent[hv] = seq.Empty
		lower = path
		cur = nextV
	}
}

// Root returns the vertex currently at the root of u's tree.
func (t *Tree[D, A]) Root(u int) int {
	t.Access(u)
	h := t.seq.First(t.nodes[u])
	v, ok := t.vertexOf[h]
	invariant.Assertf(ok, "lct: path head %d is not a node element", h)
	return v
}

// Reroot makes u the root of its tree by bringing its path together
// and reversing it, so u becomes the shallow end.
func (t *Tree[D, A]) Reroot(u int) {
	t.Access(u)
	t.seq.Reverse(t.nodes[u])
}

// Link attaches u as v's new parent. It reports false without effect
// if u and v are already in the same tree.
func (t *Tree[D, A]) Link(u, v int) bool {
	if t.Root(u) == t.Root(v) {
		return false
	}
	t.Reroot(v)
	t.pathParent[v] = t.nodes[u]
	return true
}

// Cut severs u from its parent, returning the former parent. It
// reports false without effect if u is already a tree root.
func (t *Tree[D, A]) Cut(u int) (int, bool) {
	t.Access(u)
	h := t.nodes[u]
	root := t.seq.Root(h)
	pos := t.seq.Order(h)
	if pos == 0 {
		return 0, false
	}
	invariant.Assertf(t.pathParent[u] == seq.Empty, "lct: cut target must have no path parent after access")

	parentHandle := t.seq.FindKth(root, pos-1)
	pv, ok := t.vertexOf[parentHandle]
	invariant.Assertf(ok, "lct: predecessor %d is not a node element", parentHandle)

	_, _, _ = t.seq.Split(root, pos, t.seq.Len(root))
	return pv, true
}

// LCA returns the lowest common ancestor of u and v, reporting false
// if they lie in different trees.
func (t *Tree[D, A]) LCA(u, v int) (int, bool) {
	t.Access(u)
	root1 := t.seq.First(t.nodes[u])
	lca := t.Access(v)
	if t.seq.First(t.nodes[v]) != root1 {
		return 0, false
	}
	return lca, true
}

// KthFromRoot returns the k-th vertex (0-indexed) on the path from the
// root of u's tree down to u, or false if that path has k or fewer
// vertices. Access(u) assembles the whole root-to-u path into one
// preferred-path sequence, so the k-th ancestor is simply position k
// of that sequence.
func (t *Tree[D, A]) KthFromRoot(u, k int) (int, bool) {
	t.Access(u)
	if k < 0 || k >= t.seq.Len(t.nodes[u]) {
		return 0, false
	}
	h := t.seq.FindKth(t.nodes[u], k)
	v, ok := t.vertexOf[h]
	invariant.Assertf(ok, "lct: kth-from-root landed on %d, not a node element", h)
	return v, true
}

// Data returns the payload of vertex u.
func (t *Tree[D, A]) Data(u int) D {
	return t.seq.Data(t.nodes[u])
}

// MutateData applies fn to vertex u's payload in place.
func (t *Tree[D, A]) MutateData(u int, fn func(*D)) {
	t.seq.MutateData(t.nodes[u], fn)
}
