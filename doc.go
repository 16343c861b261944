// Package kinetra models articulated rigid-body chains (robot arms built
// from actuators, tube links and fixed transforms) and computes their
// forward kinematics, geometric Jacobians and inverse-kinematics solutions.
//
// 🚀 What is kinetra?
//
//	A pure-computation library that translates between joint space
//	(actuator angles) and task space (end-effector pose):
//		• Body factories: rotary & prismatic actuators, tube links, fixed transforms
//		• Tree: an owned, append-only kinematic chain/tree of bodies
//		• Forward kinematics: absolute frame poses by depth-first composition
//		• Jacobians: per-frame 6×DoF velocity maps (geometric construction)
//		• Inverse kinematics: damped-least-squares position solver with
//		  iteration budget, adaptive damping and cooperative cancellation
//
// ✨ Why choose kinetra?
//
//   - Singularity-safe IK: Levenberg-Marquardt-style damping instead of a
//     naive pseudo-inverse that explodes on a fully extended arm
//   - Loud failure modes: sentinel errors for dimension mismatches and
//     structural violations, a distinct non-convergence status for IK
//   - Concurrency-friendly: trees are built once, then safely queried from
//     many goroutines at once
//
// The library is organized into four subpackages:
//
//	spatial/  - 4×4 homogeneous transforms and rotation constructors
//	chain/    - Body & Tree data model, ownership, forward kinematics
//	jacobian/ - geometric Jacobian construction over a chain.Tree
//	ik/       - damped-least-squares inverse-kinematics solver
//
// Quick ASCII example of a branching tree and its depth-first frame order:
//
//	(BASE) A ─ B(1) ─ C ─ D
//	          (2)
//	           │
//	           E
//
//	center-of-mass frames:  A, B, C, D, E
//	output frames:          A, B(1), C, D, B(2), E
//
// Dynamics (forces/torques), collision checking and trajectory planning are
// out of scope: the engine only computes static or per-sample pose/velocity
// relationships.
//
//	go get github.com/kinetra/kinetra
package kinetra
