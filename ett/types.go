package ett

import (
	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/seq"
)

// Kind discriminates the two element variants an ETT sequence holds.
type Kind uint8

const (
	// NodeElem is a single forest vertex.
	NodeElem Kind = iota
	// EdgeElem is one oriented half of an undirected tree edge.
	EdgeElem
)

// Payload is the discriminated element a Tree's backing sequence
// stores. Both node and edge elements share one caller-supplied data
// type D; Other is only meaningful on an EdgeElem, where Connect
// records the handle of the sibling half-edge. Disconnect itself works
// from the caller's EdgeRef and does not read Other.
type Payload[D any] struct {
	Kind  Kind
	Data  D
	Other seq.Handle
}

// Agg is the range aggregate a Tree's backing sequence accumulates:
// the caller's own aggregate plus a running count of node elements,
// available to searches guided by component size. TreeSize and SizeAt
// do not read it; they derive the count from the sequence length.
type Agg[A any] struct {
	User      A
	NodeCount int
}

// EdgeRef names one tree edge by its two half-edge handles, in (u->w,
// w->u) order as returned by Connect.
type EdgeRef struct {
	HUW, HWU seq.Handle
}

// wrappedAggregator lifts a caller's agg.Aggregator[D, A] to operate
// over Payload[D]/Agg[A], applying From uniformly regardless of
// variant and tracking NodeCount alongside it.
type wrappedAggregator[D any, A any] struct {
	user agg.Aggregator[D, A]
}

// WrapAggregator adapts a plain element aggregator for use as the
// backing sequence's aggregator in New.
func WrapAggregator[D any, A any](user agg.Aggregator[D, A]) agg.Aggregator[Payload[D], Agg[A]] {
	return wrappedAggregator[D, A]{user: user}
}

func (w wrappedAggregator[D, A]) From(p Payload[D]) Agg[A] {
	nc := 0
	if p.Kind == NodeElem {
		nc = 1
	}
	return Agg[A]{User: w.user.From(p.Data), NodeCount: nc}
}

func (w wrappedAggregator[D, A]) Merge(left, right Agg[A]) Agg[A] {
	return Agg[A]{User: w.user.Merge(left.User, right.User), NodeCount: left.NodeCount + right.NodeCount}
}

func (w wrappedAggregator[D, A]) Reverse(a Agg[A]) Agg[A] {
	return Agg[A]{User: w.user.Reverse(a.User), NodeCount: a.NodeCount}
}

func (w wrappedAggregator[D, A]) Default() Agg[A] {
	return Agg[A]{User: w.user.Default()}
}
