// Package buildutil extracts argument values from buildtools call
// expressions.
package buildutil

import (
	"github.com/bazelbuild/buildtools/build"
)

// Attr returns the value of the keyword argument name, or nil if the call
// does not set it.
func Attr(call *build.CallExpr, name string) build.Expr {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		if lhs, ok := assign.LHS.(*build.Ident); ok && lhs.Name == name {
			return assign.RHS
		}
	}
	return nil
}

// Arg returns the i-th positional argument, ignoring keyword arguments, or
// nil if there are not enough of them.
func Arg(call *build.CallExpr, i int) build.Expr {
	n := 0
	for _, arg := range call.List {
		if _, ok := arg.(*build.AssignExpr); ok {
			continue
		}
		if n == i {
			return arg
		}
		n++
	}
	return nil
}

// ArgOrAttr returns the keyword argument name if present, otherwise the
// i-th positional argument.
func ArgOrAttr(call *build.CallExpr, i int, name string) build.Expr {
	if expr := Attr(call, name); expr != nil {
		return expr
	}
	return Arg(call, i)
}

// String reports the value of a string literal.
func String(expr build.Expr) (string, bool) {
	str, ok := expr.(*build.StringExpr)
	if !ok {
		return "", false
	}
	return str.Value, true
}

// Strings reports the values of a list of string literals. A single string
// literal is accepted as a one-element list. Any other element makes the
// whole expression invalid.
func Strings(expr build.Expr) ([]string, bool) {
	switch e := expr.(type) {
	case *build.StringExpr:
		return []string{e.Value}, true
	case *build.ListExpr:
		result := make([]string, 0, len(e.List))
		for _, item := range e.List {
			str, ok := item.(*build.StringExpr)
			if !ok {
				return nil, false
			}
			result = append(result, str.Value)
		}
		return result, true
	default:
		return nil, false
	}
}

// Bool reports the value of a True or False identifier.
func Bool(expr build.Expr) (value, ok bool) {
	ident, isIdent := expr.(*build.Ident)
	if !isIdent {
		return false, false
	}
	switch ident.Name {
	case "True":
		return true, true
	case "False":
		return false, true
	default:
		return false, false
	}
}

// FuncName returns the name of a plain function call, or "" for method
// calls such as foo.bar().
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}
