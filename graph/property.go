package graph

import "sort"

// PropertyGraph is a directed graph with a value of type T on every node and
// a value of type U on every edge.
//
// The zero value is an empty graph ready for use. A PropertyGraph is not safe
// for concurrent use; build it completely before reading it.
type PropertyGraph[T Mergeable[T], U Mergeable[U]] struct {
	nodes   []T
	adj     [][]Edge[U]
	parents [][]NodeID // sorted, distinct
	levels  []int
}

// New returns an empty graph.
func New[T Mergeable[T], U Mergeable[U]]() *PropertyGraph[T, U] {
	return &PropertyGraph[T, U]{}
}

// AddNode appends a node and returns its id, which equals the number of
// nodes added before it.
func (g *PropertyGraph[T, U]) AddNode(value T) NodeID {
	g.nodes = append(g.nodes, value)
	g.adj = append(g.adj, nil)
	g.parents = append(g.parents, nil)
	g.levels = append(g.levels, 0)
	return NodeID(len(g.nodes) - 1)
}

// AddEdge appends an edge from -> to. An existing edge between the same
// nodes is not merged; use UpdateEdgeIfPresent for that. Both ids must come
// from AddNode.
func (g *PropertyGraph[T, U]) AddEdge(from, to NodeID, info U) {
	g.adj[from] = append(g.adj[from], Edge[U]{To: to, Info: info})
	g.parents[to] = insertSorted(g.parents[to], from)
	g.levels[to]++
}

// UpdateNode merges value into the node stored at id.
func (g *PropertyGraph[T, U]) UpdateNode(id NodeID, value T) error {
	if !g.has(id) {
		return &NodeError{ID: id}
	}
	g.nodes[id] = g.nodes[id].Merge(value)
	return nil
}

// UpdateEdgeIfPresent merges info into the first edge from -> to and reports
// whether such an edge existed. When it returns false the graph is unchanged.
func (g *PropertyGraph[T, U]) UpdateEdgeIfPresent(from, to NodeID, info U) bool {
	if !g.has(from) {
		return false
	}
	edges := g.adj[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Info = edges[i].Info.Merge(info)
			return true
		}
	}
	return false
}

// Len returns the number of nodes.
func (g *PropertyGraph[T, U]) Len() int {
	return len(g.nodes)
}

// Node returns the value stored at id.
func (g *PropertyGraph[T, U]) Node(id NodeID) (T, error) {
	if !g.has(id) {
		var zero T
		return zero, &NodeError{ID: id}
	}
	return g.nodes[id], nil
}

// Nodes returns all node values indexed by id. The slice must not be modified.
func (g *PropertyGraph[T, U]) Nodes() []T {
	return g.nodes
}

// Edges returns the outgoing edges of id in insertion order.
func (g *PropertyGraph[T, U]) Edges(id NodeID) ([]Edge[U], error) {
	if !g.has(id) {
		return nil, &NodeError{ID: id}
	}
	return g.adj[id], nil
}

// Parents returns the distinct sources of edges into id, ascending.
func (g *PropertyGraph[T, U]) Parents(id NodeID) []NodeID {
	if id < 0 || int(id) >= len(g.parents) {
		return nil
	}
	return g.parents[id]
}

// Level returns the number of AddEdge calls that targeted id, or -1 for an
// unknown id.
func (g *PropertyGraph[T, U]) Level(id NodeID) int {
	if !g.has(id) {
		return -1
	}
	return g.levels[id]
}

// Roots returns every node that has never been the target of an edge, in
// ascending id order.
func (g *PropertyGraph[T, U]) Roots() []NodeID {
	var roots []NodeID
	for i, level := range g.levels {
		if level == 0 {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

func (g *PropertyGraph[T, U]) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func insertSorted(ids []NodeID, id NodeID) []NodeID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
