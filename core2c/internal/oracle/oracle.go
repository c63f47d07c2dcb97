// Package oracle is a deliberately naive reference model of dynamic
// graph connectivity and k-core membership, used only from tests to
// cross-check the layered solver against brute force.
package oracle

// Graph is an adjacency-set representation of an undirected simple
// graph with no per-operation complexity guarantees.
type Graph struct {
	adj map[int]map[int]struct{}
}

// New returns an empty oracle graph over n vertices.
func New(n int) *Graph {
	g := &Graph{adj: make(map[int]map[int]struct{}, n)}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{})
	}
	return g
}

// AddEdge inserts (u,v), reporting whether it was newly added.
func (g *Graph) AddEdge(u, v int) bool {
	if u == v {
		return false
	}
	if _, ok := g.adj[u][v]; ok {
		return false
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	return true
}

// RemoveEdge deletes (u,v), reporting whether it was present.
func (g *Graph) RemoveEdge(u, v int) bool {
	if _, ok := g.adj[u][v]; !ok {
		return false
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	return true
}

// IsConnected reports whether u and v lie in the same component, via
// a plain breadth-first search.
func (g *Graph) IsConnected(u, v int) bool {
	if u == v {
		return true
	}
	seen := map[int]bool{u: true}
	queue := []int{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for w := range g.adj[cur] {
			if w == v {
				return true
			}
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	return false
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Neighbors returns the set of vertices directly adjacent to v.
func (g *Graph) Neighbors(v int) map[int]struct{} {
	out := make(map[int]struct{}, len(g.adj[v]))
	for w := range g.adj[v] {
		out[w] = struct{}{}
	}
	return out
}

// IsIn1Core reports whether v has degree at least one.
func (g *Graph) IsIn1Core(v int) bool { return g.Degree(v) > 0 }

// TwoCore computes the set of vertices surviving iterated removal of
// degree-<2 vertices, the textbook leaf-peeling definition of the
// 2-core.
func (g *Graph) TwoCore() map[int]bool {
	deg := make(map[int]int, len(g.adj))
	for v, nbrs := range g.adj {
		deg[v] = len(nbrs)
	}
	var queue []int
	for v, d := range deg {
		if d < 2 {
			queue = append(queue, v)
		}
	}
	removed := make(map[int]bool, len(g.adj))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if removed[v] {
			continue
		}
		removed[v] = true
		for w := range g.adj[v] {
			if removed[w] {
				continue
			}
			deg[w]--
			if deg[w] < 2 {
				queue = append(queue, w)
			}
		}
	}
	core := make(map[int]bool, len(g.adj))
	for v := range g.adj {
		if !removed[v] {
			core[v] = true
		}
	}
	return core
}

// IsIn2Core reports whether v survives leaf-peeling.
func (g *Graph) IsIn2Core(v int) bool { return g.TwoCore()[v] }
