package graph

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testNode struct {
	Name string
	Tags []string
}

func (n testNode) Merge(other testNode) testNode {
	merged := testNode{Name: n.Name, Tags: slices.Clone(n.Tags)}
	if merged.Name == "" {
		merged.Name = other.Name
	}
	merged.Tags = append(merged.Tags, other.Tags...)
	return merged
}

type testEdge struct {
	Deps []string
}

func (e testEdge) Merge(other testEdge) testEdge {
	merged := testEdge{Deps: slices.Clone(e.Deps)}
	for _, d := range other.Deps {
		if !slices.Contains(merged.Deps, d) {
			merged.Deps = append(merged.Deps, d)
		}
	}
	return merged
}

func (e testEdge) String() string {
	return strings.Join(e.Deps, ", ")
}

func dep(specs ...string) testEdge {
	return testEdge{Deps: specs}
}

func label(n testNode) string {
	return n.Name
}

// Helper to create a test graph:
//
//	p
//	├── a (x>=2)
//	│   └── x2 (x 2.*)
//	└── b (x<2)
//	    ├── c (c)
//	    │   └── x1 (x 1.*)
//	    └── x1 (x 1.0)
func createTestGraph(t *testing.T) (*PropertyGraph[testNode, testEdge], map[string]NodeID) {
	t.Helper()
	g := New[testNode, testEdge]()
	ids := make(map[string]NodeID)
	for _, name := range []string{"p", "a", "b", "c", "x1", "x2"} {
		ids[name] = g.AddNode(testNode{Name: name})
	}
	g.AddEdge(ids["p"], ids["a"], dep("x>=2"))
	g.AddEdge(ids["p"], ids["b"], dep("x<2"))
	g.AddEdge(ids["a"], ids["x2"], dep("x 2.*"))
	g.AddEdge(ids["b"], ids["c"], dep("c"))
	g.AddEdge(ids["c"], ids["x1"], dep("x 1.*"))
	g.AddEdge(ids["b"], ids["x1"], dep("x 1.0"))
	return g, ids
}

func TestAddNode_DenseIDs(t *testing.T) {
	g := New[testNode, testEdge]()
	for i := 0; i < 5; i++ {
		if got := g.AddNode(testNode{Name: "n"}); got != NodeID(i) {
			t.Errorf("AddNode() = %d, want %d", got, i)
		}
	}
	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}
	for i := 0; i < 5; i++ {
		if lvl := g.Level(NodeID(i)); lvl != 0 {
			t.Errorf("Level(%d) = %d, want 0", i, lvl)
		}
	}
}

func TestZeroValueGraph(t *testing.T) {
	var g PropertyGraph[testNode, testEdge]
	if id := g.AddNode(testNode{Name: "a"}); id != 0 {
		t.Errorf("AddNode() = %d, want 0", id)
	}
	if roots := g.Roots(); !slices.Equal(roots, []NodeID{0}) {
		t.Errorf("Roots() = %v, want [0]", roots)
	}
}

func TestUpdateNode(t *testing.T) {
	g := New[testNode, testEdge]()
	id := g.AddNode(testNode{Name: "x", Tags: []string{"1.0"}})

	if err := g.UpdateNode(id, testNode{Tags: []string{"2.0"}}); err != nil {
		t.Fatalf("UpdateNode() error = %v", err)
	}

	got, err := g.Node(id)
	if err != nil {
		t.Fatalf("Node() error = %v", err)
	}
	want := testNode{Name: "x", Tags: []string{"1.0", "2.0"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Node() mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeLookup_OutOfRange(t *testing.T) {
	g := New[testNode, testEdge]()
	g.AddNode(testNode{Name: "only"})

	for _, id := range []NodeID{-1, 1, 42} {
		if _, err := g.Node(id); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("Node(%d) error = %v, want ErrNodeNotFound", id, err)
		}
		if _, err := g.Edges(id); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("Edges(%d) error = %v, want ErrNodeNotFound", id, err)
		}
		if err := g.UpdateNode(id, testNode{}); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("UpdateNode(%d) error = %v, want ErrNodeNotFound", id, err)
		}
		if _, err := g.PathsFrom(id); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("PathsFrom(%d) error = %v, want ErrNodeNotFound", id, err)
		}
		if lvl := g.Level(id); lvl != -1 {
			t.Errorf("Level(%d) = %d, want -1", id, lvl)
		}
	}

	var nodeErr *NodeError
	_, err := g.Node(7)
	if !errors.As(err, &nodeErr) || nodeErr.ID != 7 {
		t.Errorf("Node(7) error = %v, want *NodeError{ID: 7}", err)
	}
}

func TestAddEdge_KeepsParallelEdges(t *testing.T) {
	g := New[testNode, testEdge]()
	a := g.AddNode(testNode{Name: "a"})
	b := g.AddNode(testNode{Name: "b"})

	g.AddEdge(a, b, dep("b>=1"))
	g.AddEdge(a, b, dep("b>=1"))

	edges, _ := g.Edges(a)
	if len(edges) != 2 {
		t.Fatalf("len(Edges(a)) = %d, want 2", len(edges))
	}
	if lvl := g.Level(b); lvl != 2 {
		t.Errorf("Level(b) = %d, want 2", lvl)
	}
	if parents := g.Parents(b); !slices.Equal(parents, []NodeID{a}) {
		t.Errorf("Parents(b) = %v, want [%d]", parents, a)
	}
}

func TestAddEdge_LongChain(t *testing.T) {
	var g PropertyGraph[testNode, testEdge]
	const n = 100000
	prev := g.AddNode(testNode{})
	for i := 1; i < n; i++ {
		next := g.AddNode(testNode{})
		if len(g.parents) != g.Len() {
			t.Fatalf("after AddNode: len(parents) = %d, want %d", len(g.parents), g.Len())
		}
		parents := cap(g.parents)
		g.AddEdge(prev, next, dep())
		if cap(g.parents) != parents {
			t.Fatalf("AddEdge(%d, %d) reallocated parents", prev, next)
		}
		prev = next
	}

	for _, id := range []NodeID{1, n / 2, n - 1} {
		if got := g.Parents(id); !slices.Equal(got, []NodeID{id - 1}) {
			t.Errorf("Parents(%d) = %v, want [%d]", id, got, id-1)
		}
		if lvl := g.Level(id); lvl != 1 {
			t.Errorf("Level(%d) = %d, want 1", id, lvl)
		}
	}
	if roots := g.Roots(); !slices.Equal(roots, []NodeID{0}) {
		t.Errorf("Roots() = %v, want [0]", roots)
	}
}

func BenchmarkAddEdge_Chain(b *testing.B) {
	for b.Loop() {
		g := New[testNode, testEdge]()
		prev := g.AddNode(testNode{})
		for range 10000 {
			next := g.AddNode(testNode{})
			g.AddEdge(prev, next, dep())
			prev = next
		}
	}
}

func TestParents_SortedDistinct(t *testing.T) {
	g := New[testNode, testEdge]()
	ids := make([]NodeID, 4)
	for i := range ids {
		ids[i] = g.AddNode(testNode{})
	}
	g.AddEdge(ids[2], ids[3], dep())
	g.AddEdge(ids[0], ids[3], dep())
	g.AddEdge(ids[2], ids[3], dep())
	g.AddEdge(ids[1], ids[3], dep())

	want := []NodeID{0, 1, 2}
	if got := g.Parents(ids[3]); !slices.Equal(got, want) {
		t.Errorf("Parents() = %v, want %v", got, want)
	}
	if got := g.Parents(ids[0]); len(got) != 0 {
		t.Errorf("Parents(root) = %v, want empty", got)
	}
}

func TestUpdateEdgeIfPresent(t *testing.T) {
	t.Run("merges into existing edge", func(t *testing.T) {
		g := New[testNode, testEdge]()
		a := g.AddNode(testNode{Name: "a"})
		b := g.AddNode(testNode{Name: "b"})
		g.AddEdge(a, b, dep("b>=1"))

		if !g.UpdateEdgeIfPresent(a, b, dep("b>=1", "b<3")) {
			t.Fatal("UpdateEdgeIfPresent() = false, want true")
		}

		edges, _ := g.Edges(a)
		want := []Edge[testEdge]{{To: b, Info: dep("b>=1", "b<3")}}
		if diff := cmp.Diff(want, edges); diff != "" {
			t.Errorf("Edges(a) mismatch (-want +got):\n%s", diff)
		}
		if lvl := g.Level(b); lvl != 1 {
			t.Errorf("Level(b) = %d, want 1", lvl)
		}
	})

	t.Run("missing edge leaves graph untouched", func(t *testing.T) {
		g := New[testNode, testEdge]()
		a := g.AddNode(testNode{Name: "a"})
		b := g.AddNode(testNode{Name: "b"})
		c := g.AddNode(testNode{Name: "c"})
		g.AddEdge(a, b, dep("b"))

		if g.UpdateEdgeIfPresent(a, c, dep("c")) {
			t.Fatal("UpdateEdgeIfPresent() = true, want false")
		}

		edges, _ := g.Edges(a)
		want := []Edge[testEdge]{{To: b, Info: dep("b")}}
		if diff := cmp.Diff(want, edges); diff != "" {
			t.Errorf("Edges(a) mismatch (-want +got):\n%s", diff)
		}
		if lvl := g.Level(c); lvl != 0 {
			t.Errorf("Level(c) = %d, want 0", lvl)
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		g := New[testNode, testEdge]()
		a := g.AddNode(testNode{Name: "a"})
		if g.UpdateEdgeIfPresent(a+1, a, dep("a")) {
			t.Error("UpdateEdgeIfPresent() = true for unknown source")
		}
	})
}

func TestRoots(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]NodeID
		want  []NodeID
	}{
		{"no edges", nil, []NodeID{0, 1, 2, 3}},
		{"chain", [][2]NodeID{{0, 1}, {1, 2}, {2, 3}}, []NodeID{0}},
		{"chain reversed insertion", [][2]NodeID{{2, 3}, {1, 2}, {0, 1}}, []NodeID{0}},
		{"two roots", [][2]NodeID{{3, 1}, {0, 2}}, []NodeID{0, 3}},
		{"all targeted", [][2]NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[testNode, testEdge]()
			for i := 0; i < 4; i++ {
				g.AddNode(testNode{})
			}
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1], dep())
			}
			if got := g.Roots(); !slices.Equal(got, tt.want) {
				t.Errorf("Roots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeaves_ChildlessTarget(t *testing.T) {
	g := New[testNode, testEdge]()
	a := g.AddNode(testNode{Name: "a"})
	l := g.AddNode(testNode{Name: "leaf"})
	g.AddEdge(a, l, dep("leaf"))

	edge := Edge[testEdge]{To: l, Info: dep("leaf")}
	got, err := g.leaves(a, edge)
	if err != nil {
		t.Fatalf("leaves() error = %v", err)
	}
	if diff := cmp.Diff([]Edge[testEdge]{edge}, got); diff != "" {
		t.Errorf("leaves() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathsFrom_Chain(t *testing.T) {
	g := New[testNode, testEdge]()
	a := g.AddNode(testNode{Name: "a"})
	b := g.AddNode(testNode{Name: "b"})
	c := g.AddNode(testNode{Name: "c"})
	g.AddEdge(a, b, dep("b"))
	g.AddEdge(b, c, dep("c"))

	got, err := g.PathsFrom(a)
	if err != nil {
		t.Fatalf("PathsFrom() error = %v", err)
	}
	want := NodePath[testEdge]{
		b: {{To: b, Info: dep("b")}, {To: c, Info: dep("c")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PathsFrom() mismatch (-want +got):\n%s", diff)
	}

	leaf, err := g.PathsFrom(c)
	if err != nil {
		t.Fatalf("PathsFrom(leaf) error = %v", err)
	}
	if len(leaf) != 0 {
		t.Errorf("PathsFrom(leaf) = %v, want empty", leaf)
	}
}

func TestParentsToLeaves(t *testing.T) {
	g, ids := createTestGraph(t)

	got, err := g.ParentsToLeaves()
	if err != nil {
		t.Fatalf("ParentsToLeaves() error = %v", err)
	}

	want := NodePath[testEdge]{
		ids["a"]: {
			{To: ids["a"], Info: dep("x>=2")},
			{To: ids["x2"], Info: dep("x 2.*")},
		},
		ids["b"]: {
			{To: ids["b"], Info: dep("x<2")},
			{To: ids["x1"], Info: dep("x 1.*")},
			{To: ids["x1"], Info: dep("x 1.0")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParentsToLeaves() mismatch (-want +got):\n%s", diff)
	}

	if keys := got.Keys(); !slices.Equal(keys, []NodeID{ids["a"], ids["b"]}) {
		t.Errorf("Keys() = %v, want [%d %d]", keys, ids["a"], ids["b"])
	}
}

func TestParentsToLeaves_SharedChild(t *testing.T) {
	// r1 and r2 both require s, which requires leaf.
	g := New[testNode, testEdge]()
	r1 := g.AddNode(testNode{Name: "r1"})
	r2 := g.AddNode(testNode{Name: "r2"})
	s := g.AddNode(testNode{Name: "s"})
	leaf := g.AddNode(testNode{Name: "leaf"})
	g.AddEdge(r1, s, dep("s>=1"))
	g.AddEdge(r2, s, dep("s<1"))
	g.AddEdge(s, leaf, dep("leaf"))

	got, err := g.ParentsToLeaves()
	if err != nil {
		t.Fatalf("ParentsToLeaves() error = %v", err)
	}
	want := NodePath[testEdge]{
		s: {
			{To: s, Info: dep("s>=1")},
			{To: leaf, Info: dep("leaf")},
			{To: s, Info: dep("s<1")},
			{To: leaf, Info: dep("leaf")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParentsToLeaves() mismatch (-want +got):\n%s", diff)
	}
}

func TestParentsToLeaves_Cycle(t *testing.T) {
	g := New[testNode, testEdge]()
	a := g.AddNode(testNode{Name: "a"})
	b := g.AddNode(testNode{Name: "b"})
	c := g.AddNode(testNode{Name: "c"})
	g.AddEdge(a, b, dep("b"))
	g.AddEdge(b, c, dep("c"))
	g.AddEdge(c, b, dep("b"))

	_, err := g.ParentsToLeaves()
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("ParentsToLeaves() error = %v, want ErrCycle", err)
	}
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error %T is not a *CycleError", err)
	}
	if want := []NodeID{a, b, c, b}; !slices.Equal(cycleErr.Path, want) {
		t.Errorf("CycleError.Path = %v, want %v", cycleErr.Path, want)
	}
	if !strings.Contains(err.Error(), "0 -> 1 -> 2 -> 1") {
		t.Errorf("Error() = %q, want the cycle path", err.Error())
	}

	if _, err := g.PathsFrom(b); !errors.Is(err, ErrCycle) {
		t.Errorf("PathsFrom(b) error = %v, want ErrCycle", err)
	}
}

func TestLeaves_DeepChain(t *testing.T) {
	g := New[testNode, testEdge]()
	const depth = 100000
	prev := g.AddNode(testNode{})
	for i := 0; i < depth; i++ {
		next := g.AddNode(testNode{})
		g.AddEdge(prev, next, dep())
		prev = next
	}

	paths, err := g.ParentsToLeaves()
	if err != nil {
		t.Fatalf("ParentsToLeaves() error = %v", err)
	}
	got := paths[1]
	if len(got) != 2 {
		t.Fatalf("len(ParentsToLeaves()[1]) = %d, want 2", len(got))
	}
	if got[1].To != prev {
		t.Errorf("leaf edge ends at %d, want %d", got[1].To, prev)
	}
}

func TestToDOT(t *testing.T) {
	g, _ := createTestGraph(t)
	dot := g.ToDOT(label)

	for _, want := range []string{
		"digraph problems {",
		`n0 [label="p", style=bold];`,
		`n1 [label="a"];`,
		`n0 -> n1 [label="x>=2"];`,
		`n3 -> n4 [label="x 1.*"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToText(t *testing.T) {
	g, _ := createTestGraph(t)

	want := strings.Join([]string{
		"p",
		"├── a [x>=2]",
		"│   └── x2 [x 2.*]",
		"└── b [x<2]",
		"    ├── c [c]",
		"    │   └── x1 [x 1.*]",
		"    └── x1 [x 1.0]",
		"",
	}, "\n")
	if got := g.ToText(label); got != want {
		t.Errorf("ToText() =\n%s\nwant:\n%s", got, want)
	}
}

func TestToText_Circular(t *testing.T) {
	g := New[testNode, testEdge]()
	r := g.AddNode(testNode{Name: "r"})
	a := g.AddNode(testNode{Name: "a"})
	b := g.AddNode(testNode{Name: "b"})
	g.AddEdge(r, a, dep("a"))
	g.AddEdge(a, b, dep("b"))
	g.AddEdge(b, a, dep("a"))

	if got := g.ToText(label); !strings.Contains(got, "a [a] (circular)") {
		t.Errorf("ToText() = %q, want a circular marker", got)
	}
}
