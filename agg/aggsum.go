package agg

// AggSum is a commutative Aggregator fixture: payloads are int64s and
// the aggregate is their sum. Reverse is the identity, since addition
// does not depend on order.
type AggSum struct{}

// From returns d itself: the singleton aggregate of one int64 is that
// int64.
func (AggSum) From(d int64) int64 { return d }

// Merge returns left+right.
func (AggSum) Merge(left, right int64) int64 { return left + right }

// Reverse is the identity: sum is commutative.
func (AggSum) Reverse(a int64) int64 { return a }

// Default returns 0, the additive identity.
func (AggSum) Default() int64 { return 0 }
