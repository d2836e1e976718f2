package graph

import (
	"bytes"
	"fmt"
)

// ToDOT outputs the graph in Graphviz DOT format. label renders a node
// value; edge payloads are rendered with fmt. Roots are drawn in bold.
func (g *PropertyGraph[T, U]) ToDOT(label func(T) string) string {
	var buf bytes.Buffer

	buf.WriteString("digraph problems {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n\n")

	for i, value := range g.nodes {
		attrs := fmt.Sprintf("label=%q", label(value))
		if g.levels[i] == 0 {
			attrs += ", style=bold"
		}
		buf.WriteString(fmt.Sprintf("  n%d [%s];\n", i, attrs))
	}

	buf.WriteString("\n")

	for from, edges := range g.adj {
		for _, edge := range edges {
			buf.WriteString(fmt.Sprintf("  n%d -> n%d [label=%q];\n", from, edge.To, fmt.Sprint(edge.Info)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ToText outputs an indented tree below every root. A node reached again
// along its own branch is marked "(circular)" and not expanded.
func (g *PropertyGraph[T, U]) ToText(label func(T) string) string {
	var buf bytes.Buffer
	visited := make(map[NodeID]bool)
	for _, root := range g.Roots() {
		g.printTree(&buf, root, nil, "", true, label, visited)
	}
	return buf.String()
}

func (g *PropertyGraph[T, U]) printTree(buf *bytes.Buffer, id NodeID, via *Edge[U], prefix string, isLast bool, label func(T) string, visited map[NodeID]bool) {
	line := label(g.nodes[id])
	if via != nil {
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		line = prefix + connector + line + fmt.Sprintf(" [%v]", via.Info)
	}
	buf.WriteString(line)

	if visited[id] {
		buf.WriteString(" (circular)\n")
		return
	}
	buf.WriteString("\n")

	visited[id] = true
	defer func() { visited[id] = false }()

	childPrefix := prefix
	if via != nil {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}
	edges := g.adj[id]
	for i := range edges {
		g.printTree(buf, edges[i].To, &edges[i], childPrefix, i == len(edges)-1, label, visited)
	}
}
