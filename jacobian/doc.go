// Package jacobian builds geometric Jacobians for frames of a chain.Tree:
// the 6×DoF matrices mapping joint-variable velocities to a frame's linear
// and angular velocity in world coordinates.
//
// Construction (standard geometric Jacobian): for a target frame T and a
// joint at column j with world-space origin p_j and unit axis a_j, evaluated
// at the current joint vector,
//
//	rotary:    column = [ a_j × (p_T − p_j) ; a_j ]
//	prismatic: column = [ a_j               ; 0   ]
//
// Columns of joints that do not kinematically precede T (joints appearing
// after T in depth-first order, or in a different branch) are zero.
// Column order follows the tree's joint-variable order.
//
// Matrices are gonum *mat.Dense values (rows 0–2 linear, rows 3–5 angular).
// Positional extracts the 3×DoF linear block used by position-only IK.
//
// Complexity: O(F·N) per call after one O(F) forward pass
// (F frames, N DoFs). All functions are pure and safe for concurrent use
// against a fully constructed tree.
//
// Errors:
//
//   - ErrNilTree: nil tree argument.
//   - ErrNoDoF: the tree has no joint variables (a 6×0 Jacobian has no
//     meaningful shape).
//   - chain.ErrDimensionMismatch, chain.ErrEmptyTree, chain.ErrMultipleLeaves
//     surface unchanged from the underlying queries.
package jacobian
