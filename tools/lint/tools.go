//go:build tools

// Package lint pins golangci-lint for go-solvexplain. It is a separate
// module so the library's go.mod carries only runtime dependencies. The
// enabled linters are listed in .golangci.yml at the repository root;
// staticcheck and unused run inside golangci-lint.
//
// Usage from the repository root:
//
//	go tool -modfile=tools/lint/go.mod golangci-lint run ./...
package lint
