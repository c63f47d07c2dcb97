package ett_test

import (
	"math/rand"
	"testing"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/ett"
	"github.com/dynagraph/dynagraph/seq"
)

// benchTree drives a mix of Connect/Disconnect/IsConnected traffic over
// a fixed vertex count, tracking which tree edges are currently live so
// Disconnect always names a real edge and Connect always names vertices
// worth checking.
func benchTree(b *testing.B, n int) {
	c := seq.NewTreap[ett.Payload[int64], ett.Agg[int64]](ett.WrapAggregator[int64, int64](agg.AggSum{}), 2012)
	data := make([]int64, n)
	tr := ett.New[int64, int64](c, data)
	r := rand.New(rand.NewSource(4815162342))

	type liveEdge struct {
		u, v int
		ref  ett.EdgeRef
	}
	var live []liveEdge

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(live) > 0 && r.Intn(3) == 0 {
			idx := r.Intn(len(live))
			e := live[idx]
			tr.Disconnect(e.ref)
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if ref, ok := tr.Connect(u, v, 0, 0); ok {
			live = append(live, liveEdge{u: u, v: v, ref: ref})
			continue
		}
		tr.IsConnected(u, v)
	}
}

// BenchmarkTreeChurn measures Euler-tour connect/disconnect/query
// throughput at n=25, matching the original list benchmark's fixture
// size.
func BenchmarkTreeChurn(b *testing.B) {
	benchTree(b, 25)
}

// BenchmarkTreeChurnLarge repeats BenchmarkTreeChurn at a size large
// enough for Euler tours to grow past a handful of sequence elements.
func BenchmarkTreeChurnLarge(b *testing.B) {
	benchTree(b, 500)
}
