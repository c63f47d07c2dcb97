// Package agg defines the aggregated-data protocol shared by seq, ett,
// lct, and core2c.
//
// An Aggregator[D, A] lifts per-element payloads of type D into an
// associative, reversal-aware range summary of type A:
//
//   - From(d) lifts a single payload to its singleton aggregate.
//   - Merge(left, right) folds two adjacent ranges, left-to-right;
//     it need not be commutative.
//   - Reverse(a) returns the aggregate of the same multiset visited in
//     reverse order; Reverse is an involution and satisfies
//     Reverse(Merge(a, b)) == Merge(Reverse(b), Reverse(a)).
//   - Default() is the two-sided identity of Merge.
//
// AggSum and AggDigit are the two reference fixtures: AggSum is
// commutative (Reverse is identity) and backs the tests of seq, ett,
// and lct; AggDigit is not commutative and is exercised by this
// package's own tests.
package agg
