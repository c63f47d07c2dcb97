package seq

import "github.com/dynagraph/dynagraph/agg"

// Handle is a stable integer identifier for a sequence element. A
// Handle is assigned once at Create and is never reused nor renumbered
// by any later operation.
type Handle uint32

// Empty is the sentinel Handle denoting "no element": the maximum
// value of the handle type. It is idempotent across all read
// operations and is the identity element of Concat/ConcatAll.
const Empty Handle = ^Handle(0)

// Verdict is the result a Strategy returns at a descended position
// during FindElement.
type Verdict int

const (
	// Found stops the descent and returns the current element.
	Found Verdict = iota
	// NotFound stops the descent and yields Empty.
	NotFound
	// Left commits to the left child of the current descent subtree.
	Left
	// Right commits to the right child of the current descent subtree.
	Right
)

// SearchData is passed to a Strategy at each visited node during a
// guided FindElement descent. CurrentData is the payload of the
// visited element; LeftAgg/RightAgg are the aggregates of the elements
// strictly to the left/right of it within the current descent
// subtree.
type SearchData[D any, A any] struct {
	CurrentData D
	LeftAgg     A
	RightAgg    A
}

// Strategy guides a FindElement descent: given the data and flanking
// aggregates at a visited position, it decides whether to stop (Found/
// NotFound) or to continue into the left or right child.
type Strategy[D any, A any] func(SearchData[D, A]) Verdict

// Container is the shared contract implemented by both Treap and
// Splay. D is the per-element payload type; A is the range-aggregate
// type produced by the associated agg.Aggregator[D, A].
//
// All positional arguments (l, r in Split/RangeAgg) are half-open
// indices [l, r) within the sequence that contains the given handle.
type Container[D any, A any] interface {
	// Create appends a new singleton sequence holding payload d and
	// returns its handle. O(1).
	Create(d D) Handle
	// Len returns the size of the sequence containing h (0 if h == Empty). O(log n) amortized.
	Len(h Handle) int
	// Root returns the representative handle of h's sequence (Empty if h == Empty). O(log n).
	Root(h Handle) Handle
	// First returns the handle at position 0 of h's sequence. O(log n).
	First(h Handle) Handle
	// Last returns the handle at the last position of h's sequence. O(log n).
	Last(h Handle) Handle
	// FindKth returns the handle at position k (0-based) of h's sequence. O(log n).
	FindKth(h Handle, k int) Handle
	// Order returns the 0-based position of h within its sequence. O(log n).
	Order(h Handle) int
	// Next returns the handle immediately after h in sequence order, or Empty if h is last. O(log n).
	Next(h Handle) Handle
	// Prev returns the handle immediately before h in sequence order, or Empty if h is first. O(log n).
	Prev(h Handle) Handle
	// Data returns the payload currently stored at h. O(log n).
	Data(h Handle) D
	// MutateData applies fn in place to h's payload and re-folds
	// aggregates on every ancestor of h before returning. O(log n).
	MutateData(h Handle, fn func(*D))
	// Concat returns the root of (sequence of hu) ++ (sequence of hv). O(log n).
	Concat(hu, hv Handle) Handle
	// ConcatAll left-folds Concat over hs; Empty is the identity, so
	// ConcatAll(nil) == Empty. O(k log n).
	ConcatAll(hs []Handle) Handle
	// Split divides h's sequence into three: positions [0,l), [l,r),
	// and [r,len). Any part may be Empty. O(log n).
	Split(h Handle, l, r int) (prefix, middle, suffix Handle)
	// Reverse reverses the whole sequence containing h in place. O(log n).
	Reverse(h Handle)
	// RangeAgg folds Merge over elements at positions [l, r) of h's
	// sequence, in iteration order. O(log n).
	RangeAgg(h Handle, l, r int) A
	// TotalAgg is RangeAgg(h, 0, Len(h)). O(log n) (O(1) amortized: the
	// whole-sequence aggregate is cached at the root).
	TotalAgg(h Handle) A
	// FindElement performs a guided descent from the root of h's
	// sequence using strat, returning the element it stops on or Empty. O(log n).
	FindElement(h Handle, strat Strategy[D, A]) Handle
}

// aggregatorOf is implemented identically by Treap and Splay so shared
// test helpers can fetch the Aggregator a container was built with.
type aggregatorOf[D any, A any] interface {
	Aggregator() agg.Aggregator[D, A]
}
