package core2c

import (
	"github.com/dynagraph/dynagraph/ett"
	"github.com/dynagraph/dynagraph/seq"
)

type coreStrategy = seq.Strategy[ett.Payload[CoreData], ett.Agg[CoreAgg]]

// minLevelStrategy descends toward a half-edge whose level equals
// level, guided by the minimum tree-edge level cached in each
// subtree. It is an existence probe, not a prefix-sum fold, so no
// running offset is needed across levels of the descent.
func minLevelStrategy(level int) coreStrategy {
	return func(sd seq.SearchData[ett.Payload[CoreData], ett.Agg[CoreAgg]]) seq.Verdict {
		if sd.LeftAgg.User.MinEdgeLevel <= level {
			return seq.Left
		}
		if sd.CurrentData.Kind == ett.EdgeElem && sd.CurrentData.Data.Level == level {
			return seq.Found
		}
		if sd.RightAgg.User.MinEdgeLevel <= level {
			return seq.Right
		}
		return seq.NotFound
	}
}

// extraEdgeStrategy descends toward any node element with at least
// one extra edge at this ETT's own level.
func extraEdgeStrategy() coreStrategy {
	return func(sd seq.SearchData[ett.Payload[CoreData], ett.Agg[CoreAgg]]) seq.Verdict {
		if sd.LeftAgg.User.TotalExtraEdges > 0 {
			return seq.Left
		}
		if sd.CurrentData.Kind == ett.NodeElem && sd.CurrentData.Data.ExtraEdges > 0 {
			return seq.Found
		}
		if sd.RightAgg.User.TotalExtraEdges > 0 {
			return seq.Right
		}
		return seq.NotFound
	}
}

// anyExtraStrategy descends toward the first (last=false) or last
// (last=true) node element with an extra edge at any level, by
// preferring the side named by last whenever it has one.
func anyExtraStrategy(last bool) coreStrategy {
	return func(sd seq.SearchData[ett.Payload[CoreData], ett.Agg[CoreAgg]]) seq.Verdict {
		near, far := sd.LeftAgg, sd.RightAgg
		nearDir, farDir := seq.Left, seq.Right
		if last {
			near, far = sd.RightAgg, sd.LeftAgg
			nearDir, farDir = seq.Right, seq.Left
		}
		if near.User.TotalAnyExtraEdges > 0 {
			return nearDir
		}
		if sd.CurrentData.Kind == ett.NodeElem && sd.CurrentData.Data.AnyExtraEdges > 0 {
			return seq.Found
		}
		if far.User.TotalAnyExtraEdges > 0 {
			return farDir
		}
		return seq.NotFound
	}
}
