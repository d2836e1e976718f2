// Package loader reads problem graph documents from disk.
//
// A document lists packages, the requirements between them and the pairs of
// packages that conflict. It is the serialized form of what a solver
// integration would feed into a problems.Builder, and is mostly useful for
// reproducing a solver failure outside of the solver.
//
// Two formats are supported. The Starlark form reads like a BUILD file:
//
//	package(id = "env", name = "env")
//	package(id = "a", name = "a", versions = ["3.0"])
//	package(id = "x2", name = "x", versions = ["2.0"])
//	package(id = "q", name = "quux", problem = "job_unknown_package")
//	requires("env", "a", deps = ["x>=2"])
//	requires(src = "a", dst = "x2", deps = "x 2.*")
//	conflict("x1", "x2")
//
// The YAML form (JSON is accepted as well) carries the same fields:
//
//	packages:
//	  - {id: env, name: env}
//	  - {id: a, name: a, versions: ["3.0"]}
//	requires:
//	  - {from: env, to: a, deps: ["x>=2"]}
//	conflicts:
//	  - [x1, x2]
package loader

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-solvexplain/graph"
	"github.com/albertocavalcante/go-solvexplain/problems"
)

var (
	// ErrMissingID indicates a package with neither an id nor a name.
	ErrMissingID = errors.New("package has no id")

	// ErrDuplicateID indicates two packages declared with the same id.
	ErrDuplicateID = errors.New("duplicate package id")

	// ErrUnknownID indicates a requirement or conflict naming an undeclared package.
	ErrUnknownID = errors.New("unknown package id")

	// ErrInvalidConflict indicates a conflict entry that is not a pair.
	ErrInvalidConflict = errors.New("conflict must name exactly two packages")

	// ErrUnsupportedFormat indicates a file extension with no known decoder.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Document is a serialized problem graph.
type Document struct {
	Packages  []Package     `yaml:"packages"`
	Requires  []Requirement `yaml:"requires"`
	Conflicts [][]string    `yaml:"conflicts"`
}

// Package declares one package group. ID defaults to Name and Name to ID.
type Package struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
	Problem  string   `yaml:"problem"`
	Conflict bool     `yaml:"conflict"`
}

// Requirement declares that From depends on To through Deps.
type Requirement struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Deps []string `yaml:"deps"`
}

// Build replays the document into a problems graph, in declaration order.
// Repeated requirements between the same packages merge into one edge.
func (d *Document) Build() (*problems.Graph, problems.Conflicts, error) {
	b := problems.NewBuilder()
	ids := make(map[string]graph.NodeID, len(d.Packages))

	for i, p := range d.Packages {
		key := p.ID
		if key == "" {
			key = p.Name
		}
		if key == "" {
			return nil, nil, fmt.Errorf("package #%d: %w", i+1, ErrMissingID)
		}
		if _, ok := ids[key]; ok {
			return nil, nil, fmt.Errorf("package %q: %w", key, ErrDuplicateID)
		}
		rule, err := problems.ParseRuleKind(p.Problem)
		if err != nil {
			return nil, nil, fmt.Errorf("package %q: %w", key, err)
		}

		name := p.Name
		if name == "" {
			name = key
		}
		id := b.AddProblem(name, rule, p.Versions...)
		if p.Conflict {
			if err := b.UpdatePackage(id, problems.GroupNode{Conflict: true}); err != nil {
				return nil, nil, err
			}
		}
		ids[key] = id
	}

	lookup := func(key string) (graph.NodeID, error) {
		id, ok := ids[key]
		if !ok {
			return 0, fmt.Errorf("%q: %w", key, ErrUnknownID)
		}
		return id, nil
	}

	for _, r := range d.Requires {
		from, err := lookup(r.From)
		if err != nil {
			return nil, nil, fmt.Errorf("requirement %s -> %s: %w", r.From, r.To, err)
		}
		to, err := lookup(r.To)
		if err != nil {
			return nil, nil, fmt.Errorf("requirement %s -> %s: %w", r.From, r.To, err)
		}
		b.Require(from, to, r.Deps...)
	}

	for _, pair := range d.Conflicts {
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("conflict %v: %w", pair, ErrInvalidConflict)
		}
		x, err := lookup(pair[0])
		if err != nil {
			return nil, nil, fmt.Errorf("conflict: %w", err)
		}
		y, err := lookup(pair[1])
		if err != nil {
			return nil, nil, fmt.Errorf("conflict: %w", err)
		}
		if err := b.MarkConflict(x, y); err != nil {
			return nil, nil, err
		}
	}

	return b.Graph(), b.Conflicts(), nil
}
