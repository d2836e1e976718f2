// Package problems holds the domain types stored in a problems graph: one
// node per package name grouping every version the solver looked at, and
// one edge per requirement carrying the dependency specs behind it.
package problems

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-solvexplain/graph"
)

// Graph is the property graph instantiated with the problem domain types.
type Graph = graph.PropertyGraph[GroupNode, GroupEdgeInfo]

// NewGraph returns an empty problems graph.
func NewGraph() *Graph {
	return graph.New[GroupNode, GroupEdgeInfo]()
}

// GroupNode represents one package name across all of the versions that
// were merged into it.
type GroupNode struct {
	// Name is the package name shared by every version in the group.
	Name string

	// Versions lists the merged package versions in first-seen order.
	Versions []string

	// Conflict is true when the group holds mutually incompatible versions,
	// as opposed to a single package that cannot be installed.
	Conflict bool

	// Problem is the rule that made this group unsatisfiable, or RuleNone.
	Problem RuleKind
}

// Merge returns the union of n and other. Versions are unioned in order,
// the name and problem of n win unless unset, and the conflict flags are
// combined.
func (n GroupNode) Merge(other GroupNode) GroupNode {
	merged := GroupNode{
		Name:     n.Name,
		Versions: appendUnique(slices.Clone(n.Versions), other.Versions...),
		Conflict: n.Conflict || other.Conflict,
		Problem:  n.Problem,
	}
	if merged.Name == "" {
		merged.Name = other.Name
	}
	if merged.Problem == RuleNone {
		merged.Problem = other.Problem
	}
	return merged
}

// PackageName returns the group name.
func (n GroupNode) PackageName() string {
	return n.Name
}

// PackageVersions returns the merged versions.
func (n GroupNode) PackageVersions() []string {
	return n.Versions
}

// IsConflict reports whether the group holds incompatible versions.
func (n GroupNode) IsConflict() bool {
	return n.Conflict
}

// ProblemType returns the recorded rule and whether one was recorded.
func (n GroupNode) ProblemType() (RuleKind, bool) {
	return n.Problem, n.Problem != RuleNone
}

func (n GroupNode) String() string {
	s := fmt.Sprintf("%s [%s]", n.Name, strings.Join(n.Versions, ", "))
	if n.Problem != RuleNone {
		s += " (" + n.Problem.String() + ")"
	}
	return s
}

// GroupEdgeInfo carries the dependency specs that connect two groups.
type GroupEdgeInfo struct {
	// Deps is an ordered set of dependency specs, such as "numpy >=1.20".
	Deps []string
}

// NewEdgeInfo returns edge info holding the given specs, without duplicates.
func NewEdgeInfo(deps ...string) GroupEdgeInfo {
	return GroupEdgeInfo{Deps: appendUnique(nil, deps...)}
}

// Merge returns the union of both spec sets.
func (e GroupEdgeInfo) Merge(other GroupEdgeInfo) GroupEdgeInfo {
	return GroupEdgeInfo{Deps: appendUnique(slices.Clone(e.Deps), other.Deps...)}
}

// Specs returns the dependency specs.
func (e GroupEdgeInfo) Specs() []string {
	return e.Deps
}

func (e GroupEdgeInfo) String() string {
	return strings.Join(e.Deps, ", ")
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
