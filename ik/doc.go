// Package ik solves position-target inverse kinematics for a chain.Tree
// with a damped-least-squares (Levenberg–Marquardt-style) iteration.
//
// What:
//
//	Solve drives the end effector of a single-leaf tree toward a target
//	position, starting from a seed joint vector:
//
//	  1. evaluate the end-effector position via forward kinematics;
//	  2. if ‖target − position‖ ≤ Tolerance, stop (Converged);
//	  3. otherwise take the damped step
//	       Δq = Jᵀ (J·Jᵀ + λ²I)⁻¹ · (target − position)
//	     with J the 3×DoF positional sub-Jacobian, clamp its norm to
//	     StepLimit, apply, and iterate;
//	  4. when the iteration budget runs out, return the best (lowest
//	     residual) joint vector found with Status MaxIterations and
//	     ErrNotConverged: non-convergence is an expected outcome, never a
//	     silent success.
//
// Why damped least squares:
//
//	Plain pseudo-inverse Jacobian IK explodes near singular configurations
//	(a fully extended arm). The λ²I term keeps J·Jᵀ + λ²I positive definite
//	and the step bounded; with AdaptiveDamping the solver shrinks λ while
//	steps keep paying off and grows it when they stop (reject-and-retry).
//	Damping activity is reported on Result.Damped so callers can tune λ.
//
// Cancellation:
//
//	The context is checked every iteration, so a real-time caller can bound
//	a solve by deadline or cancellation; the best-effort result is still
//	returned.
//
// Diagnostics:
//
//	Options.Logger accepts a golog.Logger; when set, per-iteration residual
//	and damping are logged at debug level. Nil disables logging.
//
// Errors:
//
//   - ErrNilTree, ErrBadTarget, ErrBadOptions: argument validation.
//   - ErrNotConverged: iteration budget exhausted (best-effort result
//     attached).
//   - chain.ErrDimensionMismatch, chain.ErrEmptyTree,
//     chain.ErrMultipleLeaves, jacobian.ErrNoDoF surface unchanged.
//   - a cancelled context surfaces wrapped, matching errors.Is with
//     context.Canceled / context.DeadlineExceeded.
package ik
