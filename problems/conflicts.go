package problems

import (
	"sort"

	"github.com/albertocavalcante/go-solvexplain/graph"
)

// Conflicts is a symmetric adjacency of nodes whose contents cannot be
// installed together.
type Conflicts map[graph.NodeID]map[graph.NodeID]struct{}

// Add records that a and b conflict.
func (c Conflicts) Add(a, b graph.NodeID) {
	c.link(a, b)
	c.link(b, a)
}

func (c Conflicts) link(from, to graph.NodeID) {
	if c[from] == nil {
		c[from] = make(map[graph.NodeID]struct{})
	}
	c[from][to] = struct{}{}
}

// Has reports whether a and b conflict.
func (c Conflicts) Has(a, b graph.NodeID) bool {
	_, ok := c[a][b]
	return ok
}

// Of returns the nodes in conflict with id, ascending.
func (c Conflicts) Of(id graph.NodeID) []graph.NodeID {
	ids := make([]graph.NodeID, 0, len(c[id]))
	for other := range c[id] {
		ids = append(ids, other)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of nodes involved in at least one conflict.
func (c Conflicts) Len() int {
	return len(c)
}
