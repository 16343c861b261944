package chain

import "errors"

// Sentinel errors for body construction and tree operations. All public APIs
// return these (optionally wrapped with context); tests and callers match
// them via errors.Is. No user-triggered condition panics.
var (
	// ErrBadGeometry indicates a non-finite parameter or a non-positive link
	// length passed to a body factory or SetBaseFrame.
	ErrBadGeometry = errors.New("chain: invalid geometry parameter")

	// ErrBadAxis indicates a zero or non-finite joint axis.
	ErrBadAxis = errors.New("chain: joint axis must be a finite non-zero vector")

	// ErrNilBody indicates a nil *Body passed to Append or Attach.
	ErrNilBody = errors.New("chain: nil body")

	// ErrBodyConsumed indicates the body is already owned by a tree; bodies
	// transfer ownership on addition and cannot be shared or re-added.
	ErrBodyConsumed = errors.New("chain: body already consumed by a tree")

	// ErrBodyNotFound indicates a parent index outside the tree's body range.
	ErrBodyNotFound = errors.New("chain: body index out of range")

	// ErrBadOutputIndex indicates an output connector index outside the
	// body's connector range.
	ErrBadOutputIndex = errors.New("chain: output index out of range")

	// ErrConnectorInUse indicates the addressed output connector already has
	// a child attached.
	ErrConnectorInUse = errors.New("chain: output connector already in use")

	// ErrNoFreeConnector indicates the chain tip has no unconsumed output
	// connector left for Append.
	ErrNoFreeConnector = errors.New("chain: no free output connector")

	// ErrDimensionMismatch indicates len(joint vector) ≠ Tree.DoFs().
	ErrDimensionMismatch = errors.New("chain: joint vector length does not match DoF count")

	// ErrEmptyTree indicates a leaf query on a tree with no bodies.
	ErrEmptyTree = errors.New("chain: tree has no bodies")

	// ErrMultipleLeaves indicates a single-leaf query (EndEffector) on a tree
	// with more than one leaf.
	ErrMultipleLeaves = errors.New("chain: tree has more than one leaf")
)
