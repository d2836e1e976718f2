package graph

// PathsFrom builds the root-to-leaf record for a single node: one entry per
// outgoing edge of id, keyed by the edge target, holding the edge itself
// followed by every leaf edge reachable through it.
func (g *PropertyGraph[T, U]) PathsFrom(id NodeID) (NodePath[U], error) {
	edges, err := g.Edges(id)
	if err != nil {
		return nil, err
	}
	paths := make(NodePath[U])
	for _, edge := range edges {
		if err := g.appendPath(paths, id, edge); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// ParentsToLeaves builds the root-to-leaf record for every root. Entries are
// keyed by the child of the root rather than by the root, so that two roots
// sharing a child contribute to the same entry, one after the other.
func (g *PropertyGraph[T, U]) ParentsToLeaves() (NodePath[U], error) {
	paths := make(NodePath[U])
	for _, root := range g.Roots() {
		for _, edge := range g.adj[root] {
			if err := g.appendPath(paths, root, edge); err != nil {
				return nil, err
			}
		}
	}
	return paths, nil
}

func (g *PropertyGraph[T, U]) appendPath(paths NodePath[U], from NodeID, edge Edge[U]) error {
	leaves, err := g.leaves(from, edge)
	if err != nil {
		return err
	}
	paths[edge.To] = append(paths[edge.To], edge)
	paths[edge.To] = append(paths[edge.To], leaves...)
	return nil
}

// leaves returns the edges that end in a childless node below start, in the
// order a depth-first walk over insertion-ordered edges reaches them. If
// start itself ends in a childless node the result is just start. Nodes
// reachable along several routes are reported once per route.
func (g *PropertyGraph[T, U]) leaves(from NodeID, start Edge[U]) ([]Edge[U], error) {
	if !g.has(start.To) {
		return nil, &NodeError{ID: start.To}
	}

	type frame struct {
		edge Edge[U]
		next int
	}

	path := []NodeID{from}
	onPath := map[NodeID]bool{from: true}
	if onPath[start.To] {
		return nil, &CycleError{Path: []NodeID{from, start.To}}
	}
	path = append(path, start.To)
	onPath[start.To] = true

	var result []Edge[U]
	stack := []frame{{edge: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := g.adj[top.edge.To]

		if len(children) == 0 {
			result = append(result, top.edge)
		}
		if top.next >= len(children) {
			stack = stack[:len(stack)-1]
			delete(onPath, path[len(path)-1])
			path = path[:len(path)-1]
			continue
		}

		child := children[top.next]
		top.next++
		if onPath[child.To] {
			cycle := make([]NodeID, len(path), len(path)+1)
			copy(cycle, path)
			return nil, &CycleError{Path: append(cycle, child.To)}
		}
		stack = append(stack, frame{edge: child})
		path = append(path, child.To)
		onPath[child.To] = true
	}
	return result, nil
}
