package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NodeID identifies a node. Ids are dense and assigned in creation order,
// starting at zero.
type NodeID int

// Mergeable is implemented by node and edge payloads. Merge returns the
// combination of the receiver and other; it must be additive, never
// discarding information already held by the receiver.
type Mergeable[T any] interface {
	Merge(other T) T
}

// Edge is an outgoing edge: the target node and the edge payload.
type Edge[U any] struct {
	To   NodeID
	Info U
}

// NodePath maps the immediate child of a root (or of the node passed to
// PathsFrom) to the edge leading into it followed by every leaf edge
// reachable below it, in depth-first order.
type NodePath[U any] map[NodeID][]Edge[U]

// Keys returns the record keys in ascending order.
func (p NodePath[U]) Keys() []NodeID {
	keys := make([]NodeID, 0, len(p))
	for id := range p {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

var (
	// ErrNodeNotFound indicates an id that was never returned by AddNode.
	ErrNodeNotFound = errors.New("node not found")

	// ErrCycle indicates a traversal reached a node already on its own path.
	ErrCycle = errors.New("dependency cycle")
)

// NodeError reports an out-of-range node id.
type NodeError struct {
	ID NodeID
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d: %v", e.ID, ErrNodeNotFound)
}

func (e *NodeError) Unwrap() error {
	return ErrNodeNotFound
}

// CycleError reports the descent path that closed a cycle. The last element
// of Path is the node that was revisited.
type CycleError struct {
	Path []NodeID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(parts, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
