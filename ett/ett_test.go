package ett_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynagraph/dynagraph/agg"
	"github.com/dynagraph/dynagraph/ett"
	"github.com/dynagraph/dynagraph/seq"
)

func newTree(n int) *ett.Tree[int64, int64] {
	c := seq.NewTreap[ett.Payload[int64], ett.Agg[int64]](ett.WrapAggregator[int64, int64](agg.AggSum{}), 2012)
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return ett.New[int64, int64](c, data)
}

func TestTree_ConnectMakesConnected(t *testing.T) {
	tr := newTree(4)
	require.False(t, tr.IsConnected(0, 1))
	_, ok := tr.Connect(0, 1, 1, 1)
	require.True(t, ok)
	require.True(t, tr.IsConnected(0, 1))
	require.Equal(t, 2, tr.TreeSize(0))
}

func TestTree_ConnectRejectsSameTree(t *testing.T) {
	tr := newTree(3)
	_, ok := tr.Connect(0, 1, 1, 1)
	require.True(t, ok)
	_, ok = tr.Connect(0, 1, 1, 1)
	require.False(t, ok)
	_, ok = tr.Connect(1, 0, 1, 1)
	require.False(t, ok)
}

func TestTree_ConnectSumsTreeSize(t *testing.T) {
	tr := newTree(6)
	tr.Connect(0, 1, 0, 0)
	tr.Connect(1, 2, 0, 0)
	tr.Connect(3, 4, 0, 0)
	require.Equal(t, 3, tr.TreeSize(0))
	require.Equal(t, 2, tr.TreeSize(3))
	ref, ok := tr.Connect(2, 3, 0, 0)
	require.True(t, ok)
	require.Equal(t, 5, tr.TreeSize(0))
	require.Equal(t, 5, tr.TreeSize(4))
	_ = ref
}

func TestTree_DisconnectSplitsIntoTwoWithSummedSize(t *testing.T) {
	tr := newTree(5)
	tr.Connect(0, 1, 0, 0)
	tr.Connect(1, 2, 0, 0)
	ref, ok := tr.Connect(2, 3, 0, 0)
	require.True(t, ok)

	before := tr.TreeSize(0)
	outer, inner := tr.Disconnect(ref)
	require.Equal(t, before, tr.SizeAt(outer)+tr.SizeAt(inner))
	require.False(t, tr.IsConnected(2, 3))
	require.True(t, tr.IsConnected(0, 2))
}

func TestTree_RerootMakesVertexFirst(t *testing.T) {
	tr := newTree(4)
	tr.Connect(0, 1, 0, 0)
	tr.Connect(1, 2, 0, 0)
	tr.Reroot(2)
	require.Equal(t, 2, tr.Root(0))
	require.Equal(t, 2, tr.Root(1))
}

func TestTree_EulerTourLengthIs3kMinus2(t *testing.T) {
	tr := newTree(5)
	tr.Connect(0, 1, 1, 1)
	tr.Connect(1, 2, 1, 1)
	tr.Connect(2, 3, 1, 1)
	// Nodes 0..3 carry payloads 0..3 and every half-edge carries 1, so
	// the tour's sum minus the node payloads counts its half-edges:
	// 4 nodes + 6 half-edges = 3*4-2 elements.
	total := tr.TotalAgg(tr.Handle(0))
	require.Equal(t, 4, total.NodeCount)
	require.Equal(t, int64(3*4-2-4), total.User-(0+1+2+3))
	require.Equal(t, 4, tr.TreeSize(0))
}

func TestTree_DataAndMutateData(t *testing.T) {
	tr := newTree(2)
	require.Equal(t, int64(0), tr.Data(0))
	tr.MutateData(0, func(d *int64) { *d = 42 })
	require.Equal(t, int64(42), tr.Data(0))
}

func TestTree_EDataRoundTrip(t *testing.T) {
	tr := newTree(2)
	ref, ok := tr.Connect(0, 1, 7, 9)
	require.True(t, ok)
	require.Equal(t, int64(7), tr.EData(ref, ett.UtoW))
	require.Equal(t, int64(9), tr.EData(ref, ett.WtoU))
	tr.MutateEData(ref, ett.UtoW, func(d *int64) { *d = 100 })
	require.Equal(t, int64(100), tr.EData(ref, ett.UtoW))
}

func TestTree_FindElementLocatesNode(t *testing.T) {
	tr := newTree(4)
	tr.Connect(0, 1, 0, 0)
	tr.Connect(1, 2, 0, 0)
	tr.MutateData(2, func(d *int64) { *d = 999 })

	// Node 2 carries 999 and the only other nonzero payload in its tour
	// is node 1's 1, so the first element whose running sum reaches 999
	// is node 2; a prefix-sum guided descent locates it deterministically.
	const target = int64(999)
	var offset int64
	found := tr.FindElement(tr.Handle(0), func(sd seq.SearchData[ett.Payload[int64], ett.Agg[int64]]) seq.Verdict {
		leftAbs := offset + sd.LeftAgg.User
		if leftAbs >= target {
			return seq.Left
		}
		selfAbs := leftAbs + sd.CurrentData.Data
		if selfAbs >= target {
			return seq.Found
		}
		offset = selfAbs
		return seq.Right
	})
	p := tr.HandleData(found)
	require.Equal(t, int64(999), p.Data)
}
