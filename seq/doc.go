// Package seq implements a balanced sequence container: an ordered
// sequence of elements identified by stable integer Handles, supporting
// concat, split, lazy whole-sequence reversal, range aggregation,
// positional access, and a guided-search descent.
//
// Two implementations share the Container[D, A] interface and the
// same property-test suite (property_test.go), and are interchangeable
// underneath ett, lct, and core2c:
//
//   - Treap: an implicit (position-keyed) treap. Node priorities come
//     from a seedable PRNG (rng.go), so a fixed seed reproduces an
//     identical tree shape across runs (test seeds 2012, 4815162342).
//   - Splay: a parent-pointer BST where every observation splays its
//     target to the root, giving the same amortized O(log n) bound
//     without randomization.
//
// Both variants maintain per-node cached aggregates and a lazy
// reversal flag pushed down on descent (push/pull in treap.go and
// splay.go). A node's child pointers are only accurate once every
// ancestor's pending flag has been pushed, so any walk that reads
// child directions or re-folds aggregates on the way up (treap Order
// and MutateData, splay's splay) pushes the root-to-node path first;
// a walk that only follows parent pointers to find the root does not
// need to.
package seq
