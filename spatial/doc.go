// Package spatial provides the 4×4 homogeneous transform value type used
// throughout kinetra, plus the rotation and translation constructors needed
// to describe rigid-body geometry.
//
// What:
//
//   - Transform: a fixed-size 4×4 homogeneous matrix (rotation + translation),
//     a plain comparable value type with no hidden allocation.
//   - Constructors: Identity, Translate, RotX/RotY/RotZ, AxisAngle (Rodrigues).
//   - Operations: Mul (composition), Apply (point mapping), Rotate
//     (direction mapping), Translation (origin extraction), Equal, IsFinite.
//   - Dense: conversion to a gonum *mat.Dense for callers that want to feed
//     transforms into general linear-algebra routines.
//
// Why a dedicated type:
//
//   - Per-body transform composition is the hot path of forward kinematics;
//     a stack-allocated [4][4]float64 keeps it allocation-free.
//   - gonum has no fixed-size 4×4 type; variable-size mat.Dense would force
//     error handling on operations that are total for this shape.
//
// All 3-vector values use gonum's r3.Vec.
//
// Complexity: every operation is O(1); Mul is 64 multiply-adds.
package spatial
