package solvexplain

import "errors"

// ErrEmptyGraph indicates a problems graph with no nodes, which has
// nothing to explain.
var ErrEmptyGraph = errors.New("problems graph is empty")
