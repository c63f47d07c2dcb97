package core2c

import (
	"math"

	"github.com/dynagraph/dynagraph/ett"
	"github.com/dynagraph/dynagraph/internal/invariant"
	"github.com/dynagraph/dynagraph/seq"
)

func (s *Solver) checkVertex(u int) {
	invariant.Assertf(u >= 0 && u < s.n, "core2c: vertex %d out of range [0,%d)", u, s.n)
}

// AddEdge inserts edge (u,v) if absent, reporting whether it was newly
// added. Self-loops are rejected; re-adding a live edge is a no-op.
func (s *Solver) AddEdge(u, v int) bool {
	s.checkVertex(u)
	s.checkVertex(v)
	if u == v {
		return false
	}
	key := makeKey(u, v)
	if _, exists := s.edges[key]; exists {
		return false
	}

	id := s.nextID
	s.nextID++
	rec := &edgeRecord{ID: id, U: key.U, W: key.W}
	s.edges[key] = rec
	s.recordsByID[id] = rec

	d := CoreData{IsEdge: true, Level: 0}
	if ref, ok := s.forest[0].Connect(key.U, key.W, d, d); ok {
		rec.Refs = []ett.EdgeRef{ref}
		s.halfToEdge[0][ref.HUW] = key
		s.halfToEdge[0][ref.HWU] = key
		linked := s.lc0.Link(key.U, key.W)
		invariant.Assertf(linked, "core2c: lc0 link must succeed for a new level-0 tree edge")
		return true
	}

	s.registerExtra(rec, 0)
	return true
}

// RemoveEdge deletes edge (u,v) if present, reporting whether it was
// removed. Removing a tree edge triggers the layered replacement
// search; removing an extra edge is a plain bookkeeping update.
func (s *Solver) RemoveEdge(u, v int) bool {
	s.checkVertex(u)
	s.checkVertex(v)
	key := makeKey(u, v)
	rec, ok := s.edges[key]
	if !ok {
		return false
	}
	delete(s.edges, key)
	delete(s.recordsByID, rec.ID)

	if rec.Refs == nil {
		s.unregisterExtra(rec)
		return true
	}

	l0 := rec.Level
	s.lc0.Reroot(rec.U)
	parent, cutOK := s.lc0.Cut(rec.W)
	invariant.Assertf(cutOK && parent == rec.U, "core2c: lc0 cut must detach %d from %d", rec.W, rec.U)

	small := make([]seq.Handle, l0+1)
	for l := 0; l <= l0; l++ {
		ref := rec.Refs[l]
		outer, inner := s.forest[l].Disconnect(ref)
		delete(s.halfToEdge[l], ref.HUW)
		delete(s.halfToEdge[l], ref.HWU)
		if s.forest[l].SizeAt(inner) <= s.forest[l].SizeAt(outer) {
			small[l] = inner
		} else {
			small[l] = outer
		}
	}

	for l := l0; l >= 0; l-- {
		s.pushTreeEdges(l, small[l])
		if s.tryExtraReplacements(l, small[l]) {
			return true
		}
	}
	return true
}

// pushTreeEdges promotes every level-l tree edge found within the
// component anchored at h to level l+1, draining the component of
// level-l tree edges entirely.
func (s *Solver) pushTreeEdges(l int, h seq.Handle) {
	for {
		eh := s.forest[l].FindElement(h, minLevelStrategy(l))
		if eh == seq.Empty {
			return
		}
		key, ok := s.halfToEdge[l][eh]
		invariant.Assertf(ok, "core2c: half-edge %d at level %d has no owning edge", eh, l)
		s.promoteTreeEdge(s.edges[key], l+1)
	}
}

// promoteTreeEdge raises a tree edge's level by one, rewriting the
// cached level on every one of its existing half-edge pairs and
// connecting a fresh one at newLevel.
func (s *Solver) promoteTreeEdge(rec *edgeRecord, newLevel int) {
	for lvl, ref := range rec.Refs {
		s.forest[lvl].MutateEData(ref, ett.UtoW, func(d *CoreData) { d.Level = newLevel })
		s.forest[lvl].MutateEData(ref, ett.WtoU, func(d *CoreData) { d.Level = newLevel })
	}
	rec.Level = newLevel
	d := CoreData{IsEdge: true, Level: newLevel}
	ref, ok := s.forest[newLevel].Connect(rec.U, rec.W, d, d)
	invariant.Assertf(ok, "core2c: promoted tree edge must connect at its new level")
	rec.Refs = append(rec.Refs, ref)
	key := makeKey(rec.U, rec.W)
	s.halfToEdge[newLevel][ref.HUW] = key
	s.halfToEdge[newLevel][ref.HWU] = key
}

// tryExtraReplacements searches the component anchored at h, level by
// level of extra edge found, for one whose endpoints now lie in
// different level-l components; such an edge becomes the replacement
// tree edge. Extras that turn out still internal are promoted to
// level+1 and the search continues. Reports whether a replacement was
// installed.
func (s *Solver) tryExtraReplacements(l int, h seq.Handle) bool {
	for {
		nh := s.forest[l].FindElement(h, extraEdgeStrategy())
		if nh == seq.Empty {
			return false
		}
		v, ok := s.forest[l].VertexOf(nh)
		invariant.Assertf(ok, "core2c: extra-edge search landed on a non-node element")
		id := s.smallestExtra(v, l)
		rec := s.recordsByID[id]
		other := rec.U
		if other == v {
			other = rec.W
		}
		if !s.forest[l].IsConnected(v, other) {
			s.installReplacement(rec, l)
			return true
		}
		s.promoteExtraEdge(rec, l+1)
	}
}

// installReplacement converts extra edge rec, found connecting two
// distinct level-l components, into a tree edge spanning levels 0..l.
func (s *Solver) installReplacement(rec *edgeRecord, level int) {
	s.clearExtra(rec, level)
	s.bumpAnyExtraCounter(rec.U, -1)
	s.bumpAnyExtraCounter(rec.W, -1)

	rec.Level = level
	rec.Refs = make([]ett.EdgeRef, level+1)
	for lvl := 0; lvl <= level; lvl++ {
		d := CoreData{IsEdge: true, Level: level}
		ref, ok := s.forest[lvl].Connect(rec.U, rec.W, d, d)
		invariant.Assertf(ok, "core2c: replacement edge must connect at every level up to its own")
		rec.Refs[lvl] = ref
		key := makeKey(rec.U, rec.W)
		s.halfToEdge[lvl][ref.HUW] = key
		s.halfToEdge[lvl][ref.HWU] = key
	}
	linked := s.lc0.Link(rec.U, rec.W)
	invariant.Assertf(linked, "core2c: lc0 link must succeed for a freshly installed replacement edge")
}

// promoteExtraEdge raises an extra edge's level by one without
// changing its tree/extra status.
func (s *Solver) promoteExtraEdge(rec *edgeRecord, newLevel int) {
	s.clearExtra(rec, rec.Level)
	rec.Level = newLevel
	s.addExtraIndex(rec.U, newLevel, rec.ID)
	s.addExtraIndex(rec.W, newLevel, rec.ID)
	s.bumpExtraCounter(rec.U, newLevel, 1)
	s.bumpExtraCounter(rec.W, newLevel, 1)
}

// registerExtra records rec as an extra edge at level, indexing it at
// both endpoints and bumping every counter it contributes to.
func (s *Solver) registerExtra(rec *edgeRecord, level int) {
	s.addExtraIndex(rec.U, level, rec.ID)
	s.addExtraIndex(rec.W, level, rec.ID)
	s.bumpExtraCounter(rec.U, level, 1)
	s.bumpExtraCounter(rec.W, level, 1)
	s.bumpAnyExtraCounter(rec.U, 1)
	s.bumpAnyExtraCounter(rec.W, 1)
}

// unregisterExtra reverses registerExtra for an edge being deleted
// outright.
func (s *Solver) unregisterExtra(rec *edgeRecord) {
	s.clearExtra(rec, rec.Level)
	s.bumpAnyExtraCounter(rec.U, -1)
	s.bumpAnyExtraCounter(rec.W, -1)
}

// clearExtra removes rec's index entries and level-local counters at
// level, without touching the any-level counters.
func (s *Solver) clearExtra(rec *edgeRecord, level int) {
	s.removeExtraIndex(rec.U, level, rec.ID)
	s.removeExtraIndex(rec.W, level, rec.ID)
	s.bumpExtraCounter(rec.U, level, -1)
	s.bumpExtraCounter(rec.W, level, -1)
}

func (s *Solver) addExtraIndex(v, level int, id EdgeID) {
	key := vlKey{V: v, Level: level}
	m := s.extras[key]
	if m == nil {
		m = make(map[EdgeID]struct{})
		s.extras[key] = m
	}
	m[id] = struct{}{}
}

func (s *Solver) removeExtraIndex(v, level int, id EdgeID) {
	key := vlKey{V: v, Level: level}
	m := s.extras[key]
	delete(m, id)
	if len(m) == 0 {
		delete(s.extras, key)
	}
}

// smallestExtra returns the smallest live EdgeID among the extra
// edges indexed at (v,level), breaking ties deterministically.
func (s *Solver) smallestExtra(v, level int) EdgeID {
	m := s.extras[vlKey{V: v, Level: level}]
	best := EdgeID(math.MaxUint64)
	for id := range m {
		if id < best {
			best = id
		}
	}
	invariant.Assertf(best != EdgeID(math.MaxUint64), "core2c: extraEdgeStrategy landed on vertex %d with no extras at level %d", v, level)
	return best
}

func (s *Solver) bumpExtraCounter(v, level, delta int) {
	s.forest[level].MutateData(v, func(d *CoreData) { d.ExtraEdges += delta })
}

func (s *Solver) bumpAnyExtraCounter(v, delta int) {
	s.forest[0].MutateData(v, func(d *CoreData) { d.AnyExtraEdges += delta })
}
