// Package explain turns a problems graph into the text shown to a user
// whose dependency request could not be satisfied.
//
// The report is bottom-line-up-front: every path from a requested package
// down to a leaf is grouped by the name of the package it ends in, and each
// name gets one paragraph listing the requests that led there and why the
// package cannot be installed.
package explain

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/albertocavalcante/go-solvexplain/graph"
	"github.com/albertocavalcante/go-solvexplain/problems"
)

// Group is the node payload an explainer can render.
type Group[T any] interface {
	graph.Mergeable[T]
	PackageName() string
	PackageVersions() []string
	IsConflict() bool
	ProblemType() (problems.RuleKind, bool)
}

// Deps is the edge payload an explainer can render.
type Deps[U any] interface {
	graph.Mergeable[U]
	Specs() []string
	String() string
}

// ProblemsExplainer renders explanations for a finished problems graph. It
// only reads the graph and holds no state between calls.
type ProblemsExplainer[T Group[T], U Deps[U]] struct {
	g         *graph.PropertyGraph[T, U]
	conflicts problems.Conflicts
	log       *slog.Logger
}

// New creates an explainer over g. conflicts is carried along for callers
// that want to inspect it; the explanation itself is derived from g.
func New[T Group[T], U Deps[U]](g *graph.PropertyGraph[T, U], conflicts problems.Conflicts, opts ...Option) *ProblemsExplainer[T, U] {
	o := newOptions(opts)
	return &ProblemsExplainer[T, U]{
		g:         g,
		conflicts: conflicts,
		log:       o.logger,
	}
}

// Conflicts returns the conflicts passed to New.
func (e *ProblemsExplainer[T, U]) Conflicts() problems.Conflicts {
	return e.conflicts
}

type nodeEdge[T, U any] struct {
	node T
	info U
}

// depBuckets groups entries by dependency string, remembering the order in
// which strings were first seen.
type depBuckets[T, U any] struct {
	keys    []string
	entries map[string][]nodeEdge[T, U]
}

func (b *depBuckets[T, U]) add(key string, entry nodeEdge[T, U]) {
	if b.entries == nil {
		b.entries = make(map[string][]nodeEdge[T, U])
	}
	if _, ok := b.entries[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = append(b.entries[key], entry)
}

// Explain renders one paragraph per package name reached at the bottom of a
// root-to-leaf path. Paragraphs are ordered by package name; within a
// paragraph, specs and detail lines keep the order in which the paths
// produced them, with paths visited by ascending root child id.
func (e *ProblemsExplainer[T, U]) Explain() (string, error) {
	rootToLeaves, err := e.g.ParentsToLeaves()
	if err != nil {
		return "", fmt.Errorf("collecting root to leaf paths: %w", err)
	}

	summary := make(map[string][]nodeEdge[T, U])
	details := make(map[string]*depBuckets[T, U])

	for _, child := range rootToLeaves.Keys() {
		path := rootToLeaves[child]
		rootNode, err := e.g.Node(child)
		if err != nil {
			return "", err
		}
		// The first edge is the one from the root; the rest end in leaves.
		rootInfo := path[0].Info
		e.log.Debug("root", "node", child, "deps", rootInfo.String())

		for _, leaf := range path[1:] {
			conflictNode, err := e.g.Node(leaf.To)
			if err != nil {
				return "", err
			}
			name := conflictNode.PackageName()
			e.log.Debug("conflict", "node", leaf.To, "name", name, "deps", leaf.Info.String())

			if details[name] == nil {
				details[name] = &depBuckets[T, U]{}
			}
			details[name].add(strings.Join(leaf.Info.Specs(), ", "), nodeEdge[T, U]{node: rootNode, info: rootInfo})
			summary[name] = append(summary[name], nodeEdge[T, U]{node: conflictNode, info: rootInfo})
		}
	}

	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		entries := summary[name]
		conflictNode := entries[0].node

		var requested []string
		for _, entry := range entries {
			for _, spec := range entry.info.Specs() {
				if !slices.Contains(requested, spec) {
					requested = append(requested, spec)
				}
			}
		}

		sb.WriteString("Requested packages ")
		sb.WriteString(e.ExplainRequested(requested))
		sb.WriteString(" cannot be installed because they depend on")

		if !conflictNode.IsConflict() {
			sb.WriteString(" " + e.ExplainProblem(conflictNode) + "\n")
			continue
		}

		sb.WriteString(" different versions of " + name + "\n")
		var lines []string
		buckets := details[name]
		for _, dep := range buckets.keys {
			for _, entry := range buckets.entries[dep] {
				line := e.ExplainDependency(entry.node, entry.info, dep)
				if !slices.Contains(lines, line) {
					lines = append(lines, line)
				}
			}
		}
		for _, line := range lines {
			sb.WriteString("\t" + line + "\n")
		}
	}
	return sb.String(), nil
}

// ExplainProblem describes why a single, non-conflicting package cannot be
// installed, based on the rule recorded on the node.
func (e *ProblemsExplainer[T, U]) ExplainProblem(node T) string {
	name := node.PackageName()
	kind, ok := node.ProblemType()
	if !ok {
		e.log.Warn("node has no problem type", "name", name, "versions", node.PackageVersions())
		return name + " which is problematic"
	}

	switch kind {
	case problems.RuleJobNothingProvidesDep, problems.RulePkgNothingProvidesDep, problems.RuleJobUnknownPackage:
		return name + " which can't be found in the configured channels"
	case problems.RuleBest:
		return name + " that can not be installed"
	case problems.RuleBlack:
		return name + " that can only be installed by a direct request"
	case problems.RuleDistupgrade:
		return name + " that does not belong to a distupgrade repository"
	case problems.RuleInfarch:
		return name + " that has an inferior architecture"
	case problems.RuleUpdate, problems.RulePkgNotInstallable:
		return name + " that is disabled/has incompatible arch/is not installable"
	case problems.RuleStrictRepoPriority:
		return name + " that is excluded by strict repo priority"
	default:
		e.log.Warn("unexpected problem type", "name", name, "rule", kind.String())
		return name + " which is problematic"
	}
}

// ExplainRequested joins requested package specs for display.
func (e *ProblemsExplainer[T, U]) ExplainRequested(specs []string) string {
	return strings.Join(specs, ",")
}

// ExplainDependency describes the versions of node that, through the specs
// in info, depend on dep.
func (e *ProblemsExplainer[T, U]) ExplainDependency(node T, info U, dep string) string {
	return fmt.Sprintf("%s versions: [%s] depend on %s", info.String(), strings.Join(node.PackageVersions(), ", "), dep)
}
