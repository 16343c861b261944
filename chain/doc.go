// Package chain defines the kinematic data model, Body and Tree, and the
// forward-kinematics queries built on it.
//
// What:
//
//   - Body: a single kinematic element created by a factory (NewRotary,
//     NewPrismatic, NewLink, NewFixed, NewBranch). Each body produces a local
//     4×4 homogeneous transform, parameterized by at most one joint variable.
//   - Tree: an append-only, exclusively owning collection of bodies connected
//     output-to-input, with a configurable base frame. Bodies are stored in an
//     index arena (parent/child indices, never pointers).
//   - Forward: absolute frame poses by depth-first composition; a parent is
//     visited before its children, and a multi-output parent's connectors are
//     visited in ascending index order before descending into each subtree.
//   - Joints / FrameAncestry: world joint geometry and per-frame ancestor DoF
//     columns, the inputs the jacobian package builds on.
//
// Ownership:
//
//	Append and Attach transfer ownership: on success the tree owns the body
//	exclusively and the original *Body handle is consumed; re-adding it
//	anywhere returns ErrBodyConsumed. Trees are built once, then queried.
//
// Frame types:
//
//   - FrameCoM: one frame per body, at the body's reference offset by its
//     center-of-mass vector.
//   - FrameOutput: one frame per output connector per body.
//
// Concurrency:
//
//	Construction (Append, Attach, SetBaseFrame) must finish before queries
//	begin; afterwards Forward, EndEffector, Joints and all counters are pure
//	read-only functions and may run concurrently from many goroutines.
//
// Errors:
//
//   - ErrBadGeometry, ErrBadAxis: invalid factory parameters (body not created).
//   - ErrBodyConsumed, ErrConnectorInUse, ErrNoFreeConnector, ErrBodyNotFound,
//     ErrBadOutputIndex: structural violations (tree unchanged).
//   - ErrDimensionMismatch: joint vector length ≠ DoF count (no partial work).
//   - ErrEmptyTree, ErrMultipleLeaves: leaf queries on unsuitable trees.
package chain
