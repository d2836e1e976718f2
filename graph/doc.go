// Package graph provides a generic directed property graph used to record
// why a dependency request could not be satisfied.
//
// Nodes are identified by dense integer ids handed out by AddNode and carry
// an arbitrary value; edges carry per-edge metadata. Both payload types must
// know how to merge with another value of the same type, which is how the
// graph folds repeated information into existing nodes and edges instead of
// duplicating them.
//
// # Building a Graph
//
// A graph is built incrementally and then read:
//
//	g := graph.New[MyNode, MyEdge]()
//	root := g.AddNode(MyNode{...})
//	dep := g.AddNode(MyNode{...})
//	if !g.UpdateEdgeIfPresent(root, dep, MyEdge{...}) {
//	    g.AddEdge(root, dep, MyEdge{...})
//	}
//
// AddEdge always appends, so parallel edges between the same pair of nodes
// are kept and each one counts towards the target's level. Only
// UpdateEdgeIfPresent merges into an existing edge.
//
// # Querying the Graph
//
// A node whose level is zero has never been the target of an edge and is a
// root. The root-to-leaf record returned by ParentsToLeaves is keyed by the
// immediate children of the roots:
//
//	paths, err := g.ParentsToLeaves()
//	for _, child := range paths.Keys() {
//	    edges := paths[child] // edges[0] is the root edge
//	}
//
// Traversals expect an acyclic graph. A cycle is reported as ErrCycle
// rather than recursing forever.
//
// # Output Formats
//
//	dot := g.ToDOT(label)  // Graphviz
//	txt := g.ToText(label) // indented tree from every root
package graph
