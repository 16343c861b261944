package chain

import (
	"github.com/kinetra/kinetra/spatial"
)

// Forward computes the absolute transform of every frame of the requested
// type, relative to the base frame, at the given joint vector.
//
// Frames are reported in depth-first order: a parent before any of its
// children, and for a multi-output parent the frame at output 1 (and
// everything beneath it) precedes output 2 and its subtree. For FrameCoM
// each body contributes exactly one frame regardless of output count.
//
// A tree with zero bodies returns only the base frame.
//
// Returns ErrDimensionMismatch when len(q) != DoFs(); no partial result is
// produced. The call is a pure function of (tree structure, base frame, q)
// and is safe for concurrent use.
func (t *Tree) Forward(ft FrameType, q []float64) ([]spatial.Transform, error) {
	if err := t.checkJoint(q); err != nil {
		return nil, err
	}
	if len(t.records) == 0 {
		return []spatial.Transform{t.base}, nil
	}

	frames := make([]spatial.Transform, 0, t.Frames(ft))
	var walk func(idx int, in spatial.Transform)
	walk = func(idx int, in spatial.Transform) {
		rec := &t.records[idx]
		if ft == FrameCoM {
			frames = append(frames, in.Mul(spatial.Translate(rec.body.com)))
		}
		for out, child := range rec.children {
			abs := in.Mul(rec.body.localTransform(t.jointValue(rec, q), out))
			if ft == FrameOutput {
				frames = append(frames, abs)
			}
			if child >= 0 {
				walk(child, abs)
			}
		}
	}
	walk(0, t.base)
	return frames, nil
}

// EndEffector returns the last frame in depth-first order, the pose of the
// single leaf. It is the single-chain specialization of Forward and is only
// valid when the tree has exactly one leaf.
//
// Errors: ErrEmptyTree, ErrMultipleLeaves, ErrDimensionMismatch.
func (t *Tree) EndEffector(ft FrameType, q []float64) (spatial.Transform, error) {
	if len(t.records) == 0 {
		return spatial.Transform{}, ErrEmptyTree
	}
	if len(t.Leaves()) != 1 {
		return spatial.Transform{}, ErrMultipleLeaves
	}
	frames, err := t.Forward(ft, q)
	if err != nil {
		return spatial.Transform{}, err
	}
	return frames[len(frames)-1], nil
}

// Joints evaluates the world-space geometry of every joint variable at the
// given joint vector: a point on each joint axis and the axis direction, in
// base coordinates. The result is ordered by DoF column and is what the
// Jacobian construction consumes.
//
// Returns ErrDimensionMismatch when len(q) != DoFs().
func (t *Tree) Joints(q []float64) ([]JointGeometry, error) {
	if err := t.checkJoint(q); err != nil {
		return nil, err
	}
	joints := make([]JointGeometry, t.dofs)
	var walk func(idx int, in spatial.Transform)
	walk = func(idx int, in spatial.Transform) {
		rec := &t.records[idx]
		for out, child := range rec.children {
			abs := in.Mul(rec.body.localTransform(t.jointValue(rec, q), out))
			if rec.dof >= 0 && out == 0 {
				// The joint acts at output 0: its origin is invariant under
				// the joint motion for rotary bodies, and the axis maps
				// through the frame's rotation.
				joints[rec.dof] = JointGeometry{
					Body:   idx,
					Kind:   rec.body.kind,
					Origin: abs.Translation(),
					Axis:   abs.Rotate(rec.body.axis),
				}
			}
			if child >= 0 {
				walk(child, abs)
			}
		}
	}
	walk(0, t.base)
	return joints, nil
}

// FrameAncestry returns, for each frame of the requested type in depth-first
// order, the DoF columns that kinematically precede it: the joint variables
// whose motion moves that frame. Joints appearing after the frame in
// traversal order, or in a different branch, are absent.
//
// A body's own joint moves its output frames but not its center-of-mass
// frame (the joint acts at the output connector).
//
// The result depends only on tree structure, never on joint values.
func (t *Tree) FrameAncestry(ft FrameType) [][]int {
	if len(t.records) == 0 {
		return nil
	}
	ancestry := make([][]int, 0, t.Frames(ft))
	var walk func(idx int, path []int)
	walk = func(idx int, path []int) {
		rec := &t.records[idx]
		if ft == FrameCoM {
			ancestry = append(ancestry, cloneInts(path))
		}
		if rec.dof >= 0 {
			path = append(path, rec.dof)
		}
		for _, child := range rec.children {
			if ft == FrameOutput {
				ancestry = append(ancestry, cloneInts(path))
			}
			if child >= 0 {
				walk(child, path)
			}
		}
	}
	walk(0, nil)
	return ancestry
}

// jointValue picks the record's joint variable out of q (0 for 0-DoF bodies).
func (t *Tree) jointValue(rec *record, q []float64) float64 {
	if rec.dof < 0 {
		return 0
	}
	return q[rec.dof]
}

func cloneInts(s []int) []int {
	if len(s) == 0 {
		return []int{}
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}
