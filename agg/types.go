package agg

// Aggregator is a monoid-like protocol over a per-element payload type
// D and a range-aggregate type A, used to fold ranges of a sequence
// into a single summary value under lazy reversal.
//
// Implementations MUST satisfy, for all d, a, b, c of the appropriate
// types:
//
//	Merge(Merge(a, b), c) == Merge(a, Merge(b, c))        // associativity
//	Merge(From(d), Default()) == From(d)                   // right identity
//	Merge(Default(), From(d)) == From(d)                   // left identity
//	Reverse(Reverse(a)) == a                                // involution
//	Reverse(Merge(a, b)) == Merge(Reverse(b), Reverse(a))   // reversal law
//
// Implementations are expected to be pure and side-effect free; seq,
// ett, and lct call them on every structural mutation and must be free
// to call them arbitrarily many times without observable difference.
type Aggregator[D any, A any] interface {
	// From lifts a single payload to its singleton aggregate.
	From(d D) A
	// Merge folds two adjacent ranges; right is the right-hand range.
	Merge(left, right A) A
	// Reverse returns the aggregate of the same multiset in reverse order.
	Reverse(a A) A
	// Default returns the two-sided identity element of Merge.
	Default() A
}
