package jacobian

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kinetra/kinetra/chain"
)

// Sentinel errors for Jacobian construction.
var (
	// ErrNilTree indicates a nil *chain.Tree argument.
	ErrNilTree = errors.New("jacobian: tree is nil")

	// ErrNoDoF indicates the tree has no joint variables to differentiate by.
	ErrNoDoF = errors.New("jacobian: tree has no degrees of freedom")
)

// Compute returns one 6×DoF Jacobian per frame of the requested type, in the
// same depth-first order as Tree.Forward. Rows 0–2 carry the linear-velocity
// contribution, rows 3–5 the angular one; column j corresponds to the tree's
// j-th joint variable.
//
// Errors: ErrNilTree, ErrNoDoF, chain.ErrDimensionMismatch.
func Compute(t *chain.Tree, ft chain.FrameType, q []float64) ([]*mat.Dense, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	n := t.DoFs()
	if n == 0 {
		return nil, ErrNoDoF
	}
	frames, err := t.Forward(ft, q)
	if err != nil {
		return nil, err
	}
	joints, err := t.Joints(q)
	if err != nil {
		return nil, err
	}
	ancestry := t.FrameAncestry(ft)

	jacs := make([]*mat.Dense, len(frames))
	for i, frame := range frames {
		jac := mat.NewDense(6, n, nil)
		pT := frame.Translation()
		for _, col := range ancestry[i] {
			jg := joints[col]
			switch jg.Kind {
			case chain.KindRotary:
				setColumn(jac, col, r3.Cross(jg.Axis, r3.Sub(pT, jg.Origin)), jg.Axis)
			case chain.KindPrismatic:
				setColumn(jac, col, jg.Axis, r3.Vec{})
			}
		}
		jacs[i] = jac
	}
	return jacs, nil
}

// EndEffector returns the Jacobian of the last frame in depth-first order,
// the single leaf. Valid only for trees with exactly one leaf.
//
// Errors: ErrNilTree, ErrNoDoF, chain.ErrEmptyTree, chain.ErrMultipleLeaves,
// chain.ErrDimensionMismatch.
func EndEffector(t *chain.Tree, ft chain.FrameType, q []float64) (*mat.Dense, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if t.Len() == 0 {
		return nil, chain.ErrEmptyTree
	}
	if len(t.Leaves()) != 1 {
		return nil, chain.ErrMultipleLeaves
	}
	jacs, err := Compute(t, ft, q)
	if err != nil {
		return nil, err
	}
	return jacs[len(jacs)-1], nil
}

// Positional returns a copy of the top three rows of jac: the 3×DoF linear
// sub-Jacobian used by position-only inverse kinematics. jac must be a
// matrix produced by this package (6×DoF).
func Positional(jac *mat.Dense) *mat.Dense {
	_, c := jac.Dims()
	return mat.DenseCopyOf(jac.Slice(0, 3, 0, c))
}

// setColumn writes the linear (rows 0–2) and angular (rows 3–5) parts of one
// Jacobian column.
func setColumn(jac *mat.Dense, col int, lin, ang r3.Vec) {
	jac.Set(0, col, lin.X)
	jac.Set(1, col, lin.Y)
	jac.Set(2, col, lin.Z)
	jac.Set(3, col, ang.X)
	jac.Set(4, col, ang.Y)
	jac.Set(5, col, ang.Z)
}
