package seq

import (
	"math/rand"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/internal/invariant"
)

// treapNode is one element of a Treap arena. Nodes are never moved or
// reallocated once created: a Handle is simply the node's index, which
// is what gives Create its consecutive-pair guarantee (two calls in a
// row hand back adjacent handles).
type treapNode[D any, A any] struct {
	data               D
	agg                A // cached aggregate of this subtree, in CURRENT (already-effective) order
	priority           uint64
	left, right, up    Handle
	size               int
	rev                bool
}

// Treap is the randomized implicit-treap variant of Container.
//
// Node priorities are drawn from a seedable PRNG (rng.go) fixed at
// construction, so the tree shape — and therefore the behavior of any
// test built on top of it — is reproducible for a given seed.
type Treap[D any, A any] struct {
	nodes []treapNode[D, A]
	ag    agg.Aggregator[D, A]
	rng   *rand.Rand
}

var _ Container[int, int] = (*Treap[int, int])(nil)

// NewTreap constructs an empty Treap using aggregator ag and priority
// stream seeded by seed (seed == 0 uses a fixed default seed; see
// rngFromSeed).
func NewTreap[D any, A any](ag agg.Aggregator[D, A], seed int64) *Treap[D, A] {
	return &Treap[D, A]{ag: ag, rng: rngFromSeed(seed)}
}

// Aggregator returns the Aggregator this Treap was built with.
func (t *Treap[D, A]) Aggregator() agg.Aggregator[D, A] { return t.ag }

// Create appends a new singleton sequence holding payload d.
func (t *Treap[D, A]) Create(d D) Handle {
	n := treapNode[D, A]{
		data:     d,
		agg:      t.ag.From(d),
		priority: t.rng.Uint64(),
		left:     Empty,
		right:    Empty,
		up:       Empty,
		size:     1,
	}
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

func (t *Treap[D, A]) size(h Handle) int {
	if h == Empty {
		return 0
	}
	return t.nodes[h].size
}

func (t *Treap[D, A]) aggOf(h Handle) A {
	if h == Empty {
		return t.ag.Default()
	}
	return t.nodes[h].agg
}

// applyReverse reverses the subtree rooted at h in O(1): swaps its
// immediate children, toggles the pending flag, and flips the cached
// aggregate. Propagation to grandchildren is deferred to push.
func (t *Treap[D, A]) applyReverse(h Handle) {
	if h == Empty {
		return
	}
	n := &t.nodes[h]
	n.left, n.right = n.right, n.left
	n.rev = !n.rev
	n.agg = t.ag.Reverse(n.agg)
}

// push propagates h's pending reversal flag one level down, so that
// h.left/h.right (already-swapped immediate children) are safe to
// descend into further.
func (t *Treap[D, A]) push(h Handle) {
	n := &t.nodes[h]
	if !n.rev {
		return
	}
	t.applyReverse(n.left)
	t.applyReverse(n.right)
	n.rev = false
}

// pull recomputes size and agg for h from its (already-current)
// children, after a structural change or a Data mutation.
func (t *Treap[D, A]) pull(h Handle) {
	n := &t.nodes[h]
	sz := 1
	a := t.ag.From(n.data)
	if n.left != Empty {
		sz += t.nodes[n.left].size
		a = t.ag.Merge(t.nodes[n.left].agg, a)
	}
	if n.right != Empty {
		sz += t.nodes[n.right].size
		a = t.ag.Merge(a, t.nodes[n.right].agg)
	}
	n.size = sz
	n.agg = a
}

func (t *Treap[D, A]) rootOf(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	cur := h
	for t.nodes[cur].up != Empty {
		cur = t.nodes[cur].up
	}
	return cur
}

// split divides the subtree rooted at h into (first k elements, rest).
func (t *Treap[D, A]) split(h Handle, k int) (Handle, Handle) {
	if h == Empty {
		return Empty, Empty
	}
	t.push(h)
	leftSize := t.size(t.nodes[h].left)
	if k <= leftSize {
		l, r := t.split(t.nodes[h].left, k)
		t.nodes[h].left = r
		if r != Empty {
			t.nodes[r].up = h
		}
		if l != Empty {
			t.nodes[l].up = Empty
		}
		t.pull(h)
		return l, h
	}
	l, r := t.split(t.nodes[h].right, k-leftSize-1)
	t.nodes[h].right = l
	if l != Empty {
		t.nodes[l].up = h
	}
	if r != Empty {
		t.nodes[r].up = Empty
	}
	t.pull(h)
	return h, r
}

// merge joins l and r, in that order, into one treap.
func (t *Treap[D, A]) merge(l, r Handle) Handle {
	if l == Empty {
		if r != Empty {
			t.nodes[r].up = Empty
		}
		return r
	}
	if r == Empty {
		t.nodes[l].up = Empty
		return l
	}
	if t.nodes[l].priority > t.nodes[r].priority {
		t.push(l)
		t.nodes[l].right = t.merge(t.nodes[l].right, r)
		t.nodes[t.nodes[l].right].up = l
		t.nodes[l].up = Empty
		t.pull(l)
		return l
	}
	t.push(r)
	t.nodes[r].left = t.merge(l, t.nodes[r].left)
	t.nodes[t.nodes[r].left].up = r
	t.nodes[r].up = Empty
	t.pull(r)
	return r
}

// Len returns the size of h's sequence.
func (t *Treap[D, A]) Len(h Handle) int {
	if h == Empty {
		return 0
	}
	return t.size(t.rootOf(h))
}

// Root returns the representative handle of h's sequence.
func (t *Treap[D, A]) Root(h Handle) Handle { return t.rootOf(h) }

// First returns the first element of h's sequence.
func (t *Treap[D, A]) First(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	return t.findKthNode(t.rootOf(h), 0)
}

// Last returns the last element of h's sequence.
func (t *Treap[D, A]) Last(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	root := t.rootOf(h)
	return t.findKthNode(root, t.size(root)-1)
}

// FindKth returns the handle at position k of h's sequence.
func (t *Treap[D, A]) FindKth(h Handle, k int) Handle {
	if h == Empty {
		return Empty
	}
	root := t.rootOf(h)
	invariant.Assertf(k >= 0 && k < t.size(root), "FindKth: position %d out of range [0,%d)", k, t.size(root))
	return t.findKthNode(root, k)
}

func (t *Treap[D, A]) findKthNode(h Handle, k int) Handle {
	t.push(h)
	leftSize := t.size(t.nodes[h].left)
	switch {
	case k < leftSize:
		return t.findKthNode(t.nodes[h].left, k)
	case k == leftSize:
		return h
	default:
		return t.findKthNode(t.nodes[h].right, k-leftSize-1)
	}
}

// Order returns the 0-based position of h within its sequence. A
// pending reversal on any ancestor leaves the child pointers below it
// stale, so the root-to-h path is pushed top-down first; the rank is
// then read off by an upward walk.
func (t *Treap[D, A]) Order(h Handle) int {
	if h == Empty {
		return -1
	}
	var path []Handle
	for cur := h; cur != Empty; cur = t.nodes[cur].up {
		path = append(path, cur)
	}
	for i := len(path) - 1; i >= 0; i-- {
		t.push(path[i])
	}
	rank := t.size(t.nodes[h].left)
	cur := h
	up := t.nodes[h].up
	for up != Empty {
		if t.nodes[up].right == cur {
			rank += t.size(t.nodes[up].left) + 1
		}
		cur = up
		up = t.nodes[up].up
	}
	return rank
}

// Next returns the element immediately after h, or Empty if h is last.
func (t *Treap[D, A]) Next(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	pos := t.Order(h)
	root := t.rootOf(h)
	if pos+1 >= t.size(root) {
		return Empty
	}
	return t.findKthNode(root, pos+1)
}

// Prev returns the element immediately before h, or Empty if h is first.
func (t *Treap[D, A]) Prev(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	pos := t.Order(h)
	if pos == 0 {
		return Empty
	}
	return t.findKthNode(t.rootOf(h), pos-1)
}

// Data returns the payload currently at h.
func (t *Treap[D, A]) Data(h Handle) D {
	invariant.Assertf(h != Empty, "Data: Empty handle")
	return t.nodes[h].data
}

// MutateData applies fn in place and re-folds ancestor aggregates.
func (t *Treap[D, A]) MutateData(h Handle, fn func(*D)) {
	invariant.Assertf(h != Empty, "MutateData: Empty handle")
	var path []Handle
	for cur := h; cur != Empty; cur = t.nodes[cur].up {
		path = append(path, cur)
	}
	for i := len(path) - 1; i >= 0; i-- {
		t.push(path[i])
	}
	fn(&t.nodes[h].data)
	cur := h
	for cur != Empty {
		t.pull(cur)
		cur = t.nodes[cur].up
	}
}

// Concat returns the root of (sequence of hu) ++ (sequence of hv).
func (t *Treap[D, A]) Concat(hu, hv Handle) Handle {
	return t.merge(t.rootOf(hu), t.rootOf(hv))
}

// ConcatAll left-folds Concat over hs.
func (t *Treap[D, A]) ConcatAll(hs []Handle) Handle {
	cur := Empty
	for _, h := range hs {
		cur = t.merge(cur, t.rootOf(h))
	}
	return cur
}

// Split divides h's sequence into [0,l), [l,r), [r,len).
func (t *Treap[D, A]) Split(h Handle, l, r int) (Handle, Handle, Handle) {
	if h == Empty {
		return Empty, Empty, Empty
	}
	root := t.rootOf(h)
	n := t.size(root)
	invariant.Assertf(l >= 0 && r >= l && r <= n, "Split: invalid range [%d,%d) over length %d", l, r, n)
	left, rest := t.split(root, l)
	mid, suffix := t.split(rest, r-l)
	return left, mid, suffix
}

// Reverse reverses the whole sequence containing h.
func (t *Treap[D, A]) Reverse(h Handle) {
	if h == Empty {
		return
	}
	t.applyReverse(t.rootOf(h))
}

// RangeAgg folds Merge over positions [l, r) of h's sequence.
func (t *Treap[D, A]) RangeAgg(h Handle, l, r int) A {
	if h == Empty || l >= r {
		return t.ag.Default()
	}
	root := t.rootOf(h)
	invariant.Assertf(l >= 0 && r <= t.size(root), "RangeAgg: invalid range [%d,%d) over length %d", l, r, t.size(root))
	return t.queryRange(root, l, r)
}

// queryRange returns the Merge-fold over [lo,hi) of the subtree rooted
// at h, where h's subtree spans absolute positions [0, size(h)) in its
// own local coordinate frame.
func (t *Treap[D, A]) queryRange(h Handle, lo, hi int) A {
	if h == Empty || hi <= 0 || lo >= t.size(h) {
		return t.ag.Default()
	}
	if lo <= 0 && hi >= t.size(h) {
		return t.nodes[h].agg
	}
	t.push(h)
	leftSize := t.size(t.nodes[h].left)

	result := t.ag.Default()
	has := false
	acc := func(x A) {
		if !has {
			result, has = x, true
			return
		}
		result = t.ag.Merge(result, x)
	}
	if lo < leftSize {
		acc(t.queryRange(t.nodes[h].left, lo, min(hi, leftSize)))
	}
	if lo <= leftSize && hi > leftSize {
		acc(t.ag.From(t.nodes[h].data))
	}
	if hi > leftSize+1 {
		acc(t.queryRange(t.nodes[h].right, lo-leftSize-1, hi-leftSize-1))
	}
	return result
}

// TotalAgg is RangeAgg(h, 0, Len(h)), served from the cached root aggregate.
func (t *Treap[D, A]) TotalAgg(h Handle) A {
	if h == Empty {
		return t.ag.Default()
	}
	return t.nodes[t.rootOf(h)].agg
}

// FindElement performs a guided descent from h's sequence root.
func (t *Treap[D, A]) FindElement(h Handle, strat Strategy[D, A]) Handle {
	if h == Empty {
		return Empty
	}
	return t.findElementNode(t.rootOf(h), strat)
}

func (t *Treap[D, A]) findElementNode(h Handle, strat Strategy[D, A]) Handle {
	if h == Empty {
		return Empty
	}
	t.push(h)
	n := &t.nodes[h]
	verdict := strat(SearchData[D, A]{
		CurrentData: n.data,
		LeftAgg:     t.aggOf(n.left),
		RightAgg:    t.aggOf(n.right),
	})
	switch verdict {
	case Found:
		return h
	case NotFound:
		return Empty
	case Left:
		return t.findElementNode(n.left, strat)
	case Right:
		return t.findElementNode(n.right, strat)
	default:
		return Empty
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
