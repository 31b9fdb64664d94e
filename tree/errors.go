package tree

import (
	"errors"
	"fmt"
)

// The two kinds of failures reported by the tree packages. Callers
// distinguish them with errors.Is.
var (
	// ErrPrecondition signals a violated caller contract. The tree is left
	// unchanged whenever it is reported.
	ErrPrecondition = errors.New("tree: precondition violated")
	// ErrInvalidConfig signals an invalid tree configuration. It is reported by
	// constructors, never by operations on a constructed tree.
	ErrInvalidConfig = errors.New("tree: invalid configuration")
)

// Refinements of ErrPrecondition.
var (
	ErrSlotOccupied  = fmt.Errorf("%w: child slot occupied", ErrPrecondition)
	ErrMissingChild  = fmt.Errorf("%w: required child absent", ErrPrecondition)
	ErrForeignHandle = fmt.Errorf("%w: handle does not belong to tree", ErrPrecondition)
	ErrStaleHandle   = fmt.Errorf("%w: handle is stale", ErrPrecondition)
	ErrCycle         = fmt.Errorf("%w: subtree already part of destination", ErrPrecondition)
	ErrNotEmpty      = fmt.Errorf("%w: tree is not empty", ErrPrecondition)
	ErrEmptyTree     = fmt.Errorf("%w: tree is empty", ErrPrecondition)
	ErrCursorAtEnd   = fmt.Errorf("%w: cursor is at end", ErrPrecondition)
)
