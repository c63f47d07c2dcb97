// Package ett implements an Euler-Tour Tree over a seq.Container: an
// unrooted forest represented as Euler tours, supporting link (Connect),
// cut (Disconnect), connectivity, tree size, rerooting, and a guided
// search delegated straight to the backing sequence.
//
// A tree edge is stored as two adjacent half-edge elements; a vertex is
// a single node element. A k-vertex tree's Euler tour has length 3k-2.
// Both element kinds share one caller-supplied payload type so a single
// Aggregator[D, A], lifted via WrapAggregator, drives the whole
// sequence; the wrapper additionally tracks a running node count.
// SizeAt/TreeSize compute the vertex count from the tour length.
package ett
