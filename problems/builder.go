package problems

import (
	"github.com/albertocavalcante/go-solvexplain/graph"
)

// Builder constructs a problems graph the way a solver integration does:
// nodes and edges are only ever added or merged, and repeated requirements
// between the same pair of groups fold into one edge.
type Builder struct {
	g         *Graph
	conflicts Conflicts
}

// NewBuilder creates a builder over an empty graph.
func NewBuilder() *Builder {
	return &Builder{
		g:         NewGraph(),
		conflicts: make(Conflicts),
	}
}

// AddPackage adds a group for name holding the given versions.
func (b *Builder) AddPackage(name string, versions ...string) graph.NodeID {
	return b.g.AddNode(GroupNode{Name: name, Versions: appendUnique(nil, versions...)})
}

// AddProblem adds a group that is itself the reason the request failed.
func (b *Builder) AddProblem(name string, rule RuleKind, versions ...string) graph.NodeID {
	return b.g.AddNode(GroupNode{Name: name, Versions: appendUnique(nil, versions...), Problem: rule})
}

// UpdatePackage merges node into the group at id.
func (b *Builder) UpdatePackage(id graph.NodeID, node GroupNode) error {
	return b.g.UpdateNode(id, node)
}

// Require records that from depends on to through the given specs. An
// existing edge between the two groups absorbs the specs; otherwise a new
// edge is added.
func (b *Builder) Require(from, to graph.NodeID, deps ...string) {
	info := NewEdgeInfo(deps...)
	if !b.g.UpdateEdgeIfPresent(from, to, info) {
		b.g.AddEdge(from, to, info)
	}
}

// MarkConflict records that x and y cannot be installed together and flags
// both groups as conflicting.
func (b *Builder) MarkConflict(x, y graph.NodeID) error {
	ids := []graph.NodeID{x, y}
	for _, id := range ids {
		if _, err := b.g.Node(id); err != nil {
			return err
		}
	}
	for _, id := range ids {
		if err := b.g.UpdateNode(id, GroupNode{Conflict: true}); err != nil {
			return err
		}
	}
	b.conflicts.Add(x, y)
	return nil
}

// Graph returns the graph built so far.
func (b *Builder) Graph() *Graph {
	return b.g
}

// Conflicts returns the conflicts recorded so far.
func (b *Builder) Conflicts() Conflicts {
	return b.conflicts
}
