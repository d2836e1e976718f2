package loader

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-solvexplain/internal/buildutil"
	"github.com/bazelbuild/buildtools/build"
)

// Position is a location in a Starlark document.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// ParseError is a syntax or structural error in a Starlark document.
type ParseError struct {
	Pos     Position
	Message string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Pos.Filename, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

type starlarkParser struct {
	filename string
	doc      Document
	errs     []error
}

// ParseStarlark decodes a Starlark problem document. Every malformed
// statement is reported; the returned error joins them.
func ParseStarlark(filename string, content []byte) (*Document, error) {
	f, err := build.ParseDefault(filename, content)
	if err != nil {
		return nil, &ParseError{
			Pos:     Position{Filename: filename},
			Message: fmt.Sprintf("syntax error: %v", err),
			Wrapped: err,
		}
	}

	p := &starlarkParser{filename: filename}
	for _, stmt := range f.Stmt {
		p.parseStatement(stmt)
	}
	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	return &p.doc, nil
}

func (p *starlarkParser) parseStatement(stmt build.Expr) {
	if _, ok := stmt.(*build.CommentBlock); ok {
		return
	}

	call, ok := stmt.(*build.CallExpr)
	if !ok {
		p.addError(stmt, "unexpected statement, want package(), requires() or conflict()")
		return
	}

	switch name := buildutil.FuncName(call); name {
	case "package":
		p.parsePackage(call)
	case "requires":
		p.parseRequires(call)
	case "conflict":
		p.parseConflict(call)
	default:
		p.addError(call, "unknown function %q", name)
	}
}

func (p *starlarkParser) parsePackage(call *build.CallExpr) {
	pkg := Package{}
	var ok bool

	if expr := buildutil.Attr(call, "id"); expr != nil {
		if pkg.ID, ok = buildutil.String(expr); !ok {
			p.addError(expr, "package id must be a string")
		}
	}
	if expr := buildutil.ArgOrAttr(call, 0, "name"); expr != nil {
		if pkg.Name, ok = buildutil.String(expr); !ok {
			p.addError(expr, "package name must be a string")
		}
	}
	if expr := buildutil.Attr(call, "versions"); expr != nil {
		if pkg.Versions, ok = buildutil.Strings(expr); !ok {
			p.addError(expr, "package versions must be a string or a list of strings")
		}
	}
	if expr := buildutil.Attr(call, "problem"); expr != nil {
		if pkg.Problem, ok = buildutil.String(expr); !ok {
			p.addError(expr, "package problem must be a string")
		}
	}
	if expr := buildutil.Attr(call, "conflict"); expr != nil {
		if pkg.Conflict, ok = buildutil.Bool(expr); !ok {
			p.addError(expr, "package conflict must be True or False")
		}
	}

	if pkg.ID == "" && pkg.Name == "" {
		p.addError(call, "package() needs an id or a name")
		return
	}
	p.doc.Packages = append(p.doc.Packages, pkg)
}

func (p *starlarkParser) parseRequires(call *build.CallExpr) {
	src, srcOK := buildutil.String(buildutil.ArgOrAttr(call, 0, "src"))
	dst, dstOK := buildutil.String(buildutil.ArgOrAttr(call, 1, "dst"))
	if !srcOK || !dstOK {
		p.addError(call, "requires() needs string src and dst")
		return
	}

	req := Requirement{From: src, To: dst}
	if expr := buildutil.Attr(call, "deps"); expr != nil {
		deps, ok := buildutil.Strings(expr)
		if !ok {
			p.addError(expr, "requires deps must be a string or a list of strings")
			return
		}
		req.Deps = deps
	}
	p.doc.Requires = append(p.doc.Requires, req)
}

func (p *starlarkParser) parseConflict(call *build.CallExpr) {
	a, aOK := buildutil.String(buildutil.Arg(call, 0))
	b, bOK := buildutil.String(buildutil.Arg(call, 1))
	if !aOK || !bOK || buildutil.Arg(call, 2) != nil {
		p.addError(call, "conflict() needs exactly two package ids")
		return
	}
	p.doc.Conflicts = append(p.doc.Conflicts, []string{a, b})
}

func (p *starlarkParser) addError(expr build.Expr, format string, args ...any) {
	start, _ := expr.Span()
	p.errs = append(p.errs, &ParseError{
		Pos: Position{
			Filename: p.filename,
			Line:     start.Line,
			Column:   start.LineRune,
		},
		Message: fmt.Sprintf(format, args...),
	})
}
