package seq

import (
	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/internal/invariant"
)

// splayNode is one element of a Splay arena. As with treapNode, nodes
// are never moved or reallocated once created, so a Handle (the node's
// index) is stable for the container's lifetime.
type splayNode[D any, A any] struct {
	data            D
	agg             A
	left, right, up Handle
	size            int
	rev             bool
}

// Splay is the self-adjusting-BST variant of Container. Every
// operation that targets a specific handle splays it to the root of
// its tree first, giving the classical amortized O(log n) bound
// without randomization.
type Splay[D any, A any] struct {
	nodes []splayNode[D, A]
	ag    agg.Aggregator[D, A]
}

var _ Container[int, int] = (*Splay[int, int])(nil)

// NewSplay constructs an empty Splay using aggregator ag.
func NewSplay[D any, A any](ag agg.Aggregator[D, A]) *Splay[D, A] {
	return &Splay[D, A]{ag: ag}
}

// Aggregator returns the Aggregator this Splay was built with.
func (s *Splay[D, A]) Aggregator() agg.Aggregator[D, A] { return s.ag }

// Create appends a new singleton sequence holding payload d.
func (s *Splay[D, A]) Create(d D) Handle {
	n := splayNode[D, A]{data: d, agg: s.ag.From(d), left: Empty, right: Empty, up: Empty, size: 1}
	s.nodes = append(s.nodes, n)
	return Handle(len(s.nodes) - 1)
}

func (s *Splay[D, A]) size(h Handle) int {
	if h == Empty {
		return 0
	}
	return s.nodes[h].size
}

func (s *Splay[D, A]) aggOf(h Handle) A {
	if h == Empty {
		return s.ag.Default()
	}
	return s.nodes[h].agg
}

func (s *Splay[D, A]) applyReverse(h Handle) {
	if h == Empty {
		return
	}
	n := &s.nodes[h]
	n.left, n.right = n.right, n.left
	n.rev = !n.rev
	n.agg = s.ag.Reverse(n.agg)
}

func (s *Splay[D, A]) push(h Handle) {
	n := &s.nodes[h]
	if !n.rev {
		return
	}
	s.applyReverse(n.left)
	s.applyReverse(n.right)
	n.rev = false
}

func (s *Splay[D, A]) pull(h Handle) {
	n := &s.nodes[h]
	sz := 1
	a := s.ag.From(n.data)
	if n.left != Empty {
		sz += s.nodes[n.left].size
		a = s.ag.Merge(s.nodes[n.left].agg, a)
	}
	if n.right != Empty {
		sz += s.nodes[n.right].size
		a = s.ag.Merge(a, s.nodes[n.right].agg)
	}
	n.size = sz
	n.agg = a
}

// rootOf walks up from h to the root of its tree via parent pointers.
// Parent pointers are unaffected by pending reversal flags and no child
// direction is read, so no push is needed.
func (s *Splay[D, A]) rootOf(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	cur := h
	for s.nodes[cur].up != Empty {
		cur = s.nodes[cur].up
	}
	return cur
}

// rotate performs one standard BST rotation promoting x over its
// parent, maintaining parent pointers and re-folding both endpoints.
func (s *Splay[D, A]) rotate(x Handle) {
	p := s.nodes[x].up
	g := s.nodes[p].up
	if s.nodes[p].left == x {
		b := s.nodes[x].right
		s.nodes[p].left = b
		if b != Empty {
			s.nodes[b].up = p
		}
		s.nodes[x].right = p
	} else {
		b := s.nodes[x].left
		s.nodes[p].right = b
		if b != Empty {
			s.nodes[b].up = p
		}
		s.nodes[x].left = p
	}
	s.nodes[p].up = x
	s.nodes[x].up = g
	if g != Empty {
		if s.nodes[g].left == p {
			s.nodes[g].left = x
		} else {
			s.nodes[g].right = x
		}
	}
	s.pull(p)
	s.pull(x)
}

// splay rotates x to the root of its tree. Pending reversal flags
// along the root->x path are pushed top-down before any rotation, so
// that rotate always observes correctly-settled children.
func (s *Splay[D, A]) splay(x Handle) {
	if x == Empty {
		return
	}
	var path []Handle
	for cur := x; cur != Empty; cur = s.nodes[cur].up {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, h := range path {
		s.push(h)
	}
	for s.nodes[x].up != Empty {
		p := s.nodes[x].up
		g := s.nodes[p].up
		switch {
		case g == Empty:
			s.rotate(x)
		case (s.nodes[g].left == p) == (s.nodes[p].left == x):
			s.rotate(p)
			s.rotate(x)
		default:
			s.rotate(x)
			s.rotate(x)
		}
	}
}

// accessKth descends from h (the root of a complete tree) to the node
// at position k, splaying it to the root before returning.
func (s *Splay[D, A]) accessKth(h Handle, k int) Handle {
	cur := h
	for {
		s.push(cur)
		leftSize := s.size(s.nodes[cur].left)
		if k < leftSize {
			cur = s.nodes[cur].left
			continue
		}
		if k == leftSize {
			break
		}
		k -= leftSize + 1
		cur = s.nodes[cur].right
	}
	s.splay(cur)
	return cur
}

// Len returns the size of h's sequence.
func (s *Splay[D, A]) Len(h Handle) int {
	if h == Empty {
		return 0
	}
	return s.size(s.rootOf(h))
}

// Root returns the representative handle of h's sequence: the
// leftmost element, moved to the top by splaying it after splaying h.
func (s *Splay[D, A]) Root(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	s.splay(h)
	left := s.leftmost(h)
	s.splay(left)
	return left
}

func (s *Splay[D, A]) leftmost(h Handle) Handle {
	cur := h
	s.push(cur)
	for s.nodes[cur].left != Empty {
		cur = s.nodes[cur].left
		s.push(cur)
	}
	return cur
}

func (s *Splay[D, A]) rightmost(h Handle) Handle {
	cur := h
	s.push(cur)
	for s.nodes[cur].right != Empty {
		cur = s.nodes[cur].right
		s.push(cur)
	}
	return cur
}

// First returns the element at position 0 of h's sequence.
func (s *Splay[D, A]) First(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	root := s.rootOf(h)
	return s.accessKth(root, 0)
}

// Last returns the element at the final position of h's sequence.
func (s *Splay[D, A]) Last(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	root := s.rootOf(h)
	return s.accessKth(root, s.size(root)-1)
}

// FindKth returns the handle at position k of h's sequence.
func (s *Splay[D, A]) FindKth(h Handle, k int) Handle {
	if h == Empty {
		return Empty
	}
	root := s.rootOf(h)
	invariant.Assertf(k >= 0 && k < s.size(root), "FindKth: position %d out of range [0,%d)", k, s.size(root))
	return s.accessKth(root, k)
}

// Order returns the 0-based position of h within its sequence.
// Splaying h to the root makes this O(1) to read off: h's position
// equals the size of its (now root-level) left subtree.
func (s *Splay[D, A]) Order(h Handle) int {
	if h == Empty {
		return -1
	}
	s.splay(h)
	return s.size(s.nodes[h].left)
}

// Next returns the element immediately after h, or Empty if h is last.
func (s *Splay[D, A]) Next(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	s.splay(h)
	s.push(h)
	if s.nodes[h].right == Empty {
		return Empty
	}
	succ := s.leftmost(s.nodes[h].right)
	s.splay(succ)
	return succ
}

// Prev returns the element immediately before h, or Empty if h is first.
func (s *Splay[D, A]) Prev(h Handle) Handle {
	if h == Empty {
		return Empty
	}
	s.splay(h)
	s.push(h)
	if s.nodes[h].left == Empty {
		return Empty
	}
	pred := s.rightmost(s.nodes[h].left)
	s.splay(pred)
	return pred
}

// Data returns the payload currently at h.
func (s *Splay[D, A]) Data(h Handle) D {
	invariant.Assertf(h != Empty, "Data: Empty handle")
	s.splay(h)
	return s.nodes[h].data
}

// MutateData applies fn in place and re-folds aggregates.
func (s *Splay[D, A]) MutateData(h Handle, fn func(*D)) {
	invariant.Assertf(h != Empty, "MutateData: Empty handle")
	s.splay(h)
	fn(&s.nodes[h].data)
	s.pull(h)
}

func (s *Splay[D, A]) lastNode(h Handle) Handle {
	cur := h
	s.push(cur)
	for s.nodes[cur].right != Empty {
		cur = s.nodes[cur].right
		s.push(cur)
	}
	return cur
}

// Concat returns the root of (sequence of hu) ++ (sequence of hv).
func (s *Splay[D, A]) Concat(hu, hv Handle) Handle {
	if hu == Empty {
		return s.rootOf(hv)
	}
	if hv == Empty {
		return s.rootOf(hu)
	}
	ru := s.rootOf(hu)
	last := s.lastNode(ru)
	s.splay(last)
	rv := s.rootOf(hv)
	s.nodes[last].right = rv
	s.nodes[rv].up = last
	s.pull(last)
	return last
}

// ConcatAll left-folds Concat over hs.
func (s *Splay[D, A]) ConcatAll(hs []Handle) Handle {
	cur := Empty
	for _, h := range hs {
		cur = s.Concat(cur, h)
	}
	return cur
}

// splitAt divides the complete tree rooted at h into the first l
// elements and the rest.
func (s *Splay[D, A]) splitAt(h Handle, l int) (Handle, Handle) {
	if h == Empty {
		return Empty, Empty
	}
	n := s.size(h)
	if l <= 0 {
		return Empty, h
	}
	if l >= n {
		return h, Empty
	}
	x := s.accessKth(h, l-1)
	right := s.nodes[x].right
	if right != Empty {
		s.nodes[right].up = Empty
	}
	s.nodes[x].right = Empty
	s.pull(x)
	return x, right
}

// Split divides h's sequence into [0,l), [l,r), [r,len).
func (s *Splay[D, A]) Split(h Handle, l, r int) (Handle, Handle, Handle) {
	if h == Empty {
		return Empty, Empty, Empty
	}
	root := s.rootOf(h)
	n := s.size(root)
	invariant.Assertf(l >= 0 && r >= l && r <= n, "Split: invalid range [%d,%d) over length %d", l, r, n)
	left, rest := s.splitAt(root, l)
	mid, suffix := s.splitAt(rest, r-l)
	return left, mid, suffix
}

// Reverse reverses the whole sequence containing h.
func (s *Splay[D, A]) Reverse(h Handle) {
	if h == Empty {
		return
	}
	s.splay(h)
	s.applyReverse(h)
}

// RangeAgg folds Merge over positions [l, r) of h's sequence.
func (s *Splay[D, A]) RangeAgg(h Handle, l, r int) A {
	if h == Empty || l >= r {
		return s.ag.Default()
	}
	root := s.rootOf(h)
	invariant.Assertf(l >= 0 && r <= s.size(root), "RangeAgg: invalid range [%d,%d) over length %d", l, r, s.size(root))
	return s.queryRange(root, l, r)
}

func (s *Splay[D, A]) queryRange(h Handle, lo, hi int) A {
	if h == Empty || hi <= 0 || lo >= s.size(h) {
		return s.ag.Default()
	}
	if lo <= 0 && hi >= s.size(h) {
		return s.nodes[h].agg
	}
	s.push(h)
	leftSize := s.size(s.nodes[h].left)

	result := s.ag.Default()
	has := false
	acc := func(x A) {
		if !has {
			result, has = x, true
			return
		}
		result = s.ag.Merge(result, x)
	}
	if lo < leftSize {
		acc(s.queryRange(s.nodes[h].left, lo, min(hi, leftSize)))
	}
	if lo <= leftSize && hi > leftSize {
		acc(s.ag.From(s.nodes[h].data))
	}
	if hi > leftSize+1 {
		acc(s.queryRange(s.nodes[h].right, lo-leftSize-1, hi-leftSize-1))
	}
	return result
}

// TotalAgg is RangeAgg(h, 0, Len(h)), served from the cached root aggregate.
func (s *Splay[D, A]) TotalAgg(h Handle) A {
	if h == Empty {
		return s.ag.Default()
	}
	return s.nodes[s.rootOf(h)].agg
}

// FindElement performs a guided descent from h's sequence root,
// splaying the result (if any) to the root before returning.
func (s *Splay[D, A]) FindElement(h Handle, strat Strategy[D, A]) Handle {
	if h == Empty {
		return Empty
	}
	root := s.rootOf(h)
	found := s.findElementNode(root, strat)
	if found != Empty {
		s.splay(found)
	}
	return found
}

func (s *Splay[D, A]) findElementNode(h Handle, strat Strategy[D, A]) Handle {
	if h == Empty {
		return Empty
	}
	s.push(h)
	n := &s.nodes[h]
	verdict := strat(SearchData[D, A]{
		CurrentData: n.data,
		LeftAgg:     s.aggOf(n.left),
		RightAgg:    s.aggOf(n.right),
	})
	switch verdict {
	case Found:
		return h
	case NotFound:
		return Empty
	case Left:
		return s.findElementNode(n.left, strat)
	case Right:
		return s.findElementNode(n.right, strat)
	default:
		return Empty
	}
}
