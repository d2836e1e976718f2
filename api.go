// Package solvexplain turns a failed dependency solve into a short,
// human-readable explanation.
//
// A solver that cannot satisfy a request reports a set of problems: packages
// that do not exist, rules that exclude every candidate, or groups of
// versions that cannot be installed together. Those problems are collected
// into a problems graph whose roots are the requested packages. Explain walks
// every root-to-leaf path of that graph and renders one paragraph per
// requested package set, bottom line up front:
//
//	Requested packages x>=2,x<2 cannot be installed because they depend on different versions of x
//		x>=2 versions: [3.0] depend on x 2.*
//		x<2 versions: [4.1] depend on x 1.*
//
// # Quick Start
//
// Build a graph with a problems.Builder:
//
//	b := problems.NewBuilder()
//	env := b.AddPackage("env")
//	q := b.AddProblem("quux", problems.RuleJobUnknownPackage)
//	b.Require(env, q, "quux>=1")
//
//	text, err := solvexplain.Explain(b.Graph(), b.Conflicts())
//
// Or load one from a Starlark or YAML document:
//
//	text, err := solvexplain.ExplainFile("problems.bzl")
//
// # Thread Safety
//
// Graphs are not safe for concurrent mutation. A fully built graph may be
// explained from several goroutines.
package solvexplain

import (
	"fmt"

	"github.com/albertocavalcante/go-solvexplain/explain"
	"github.com/albertocavalcante/go-solvexplain/loader"
	"github.com/albertocavalcante/go-solvexplain/problems"
)

// Explain renders the explanation for a problems graph.
func Explain(g *problems.Graph, conflicts problems.Conflicts, opts ...Option) (string, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	if g == nil || g.Len() == 0 {
		return "", ErrEmptyGraph
	}

	logger := cfg.log()
	logger.Debug("explaining problems graph",
		"nodes", g.Len(),
		"roots", len(g.Roots()),
		"conflicting", conflicts.Len())

	e := explain.New(g, conflicts, explain.WithLogger(logger))
	text, err := e.Explain()
	if err != nil {
		return "", fmt.Errorf("explain problems graph: %w", err)
	}
	return text, nil
}

// ExplainFile loads a problem document and renders its explanation.
// The format is chosen from the file extension, see loader.DetectFormat.
func ExplainFile(path string, opts ...Option) (string, error) {
	g, conflicts, err := loader.LoadFile(path)
	if err != nil {
		return "", fmt.Errorf("load problem document: %w", err)
	}
	return Explain(g, conflicts, opts...)
}

// ExplainDocument builds and explains an already decoded document.
func ExplainDocument(doc *loader.Document, opts ...Option) (string, error) {
	g, conflicts, err := doc.Build()
	if err != nil {
		return "", fmt.Errorf("build problem document: %w", err)
	}
	return Explain(g, conflicts, opts...)
}
