package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kinetra/kinetra/chain"
	"github.com/kinetra/kinetra/spatial"
)

// Link lengths of the planar test arm, reused across chain, jacobian and ik
// tests (each package builds its own copy).
const (
	upperArm = 0.4
	foreArm  = 0.3
)

// buildPlanarArm constructs a two-revolute planar arm in the XY plane:
//
//	base ─ R1(z) ─ [0.4 along X] ─ R2(z) ─ [0.3 along X] ─ end effector
//
// End-effector position: R(q1)·(0.4,0,0) + R(q1+q2)·(0.3,0,0).
func buildPlanarArm(t *testing.T) *chain.Tree {
	t.Helper()

	tree := chain.NewTree()
	shoulder, err := chain.NewRotary()
	require.NoError(t, err)
	upper, err := chain.NewFixed(r3.Vec{X: upperArm / 2}, spatial.Translate(r3.Vec{X: upperArm}))
	require.NoError(t, err)
	elbow, err := chain.NewRotary()
	require.NoError(t, err)
	fore, err := chain.NewFixed(r3.Vec{X: foreArm / 2}, spatial.Translate(r3.Vec{X: foreArm}))
	require.NoError(t, err)

	for _, b := range []*chain.Body{shoulder, upper, elbow, fore} {
		require.NoError(t, tree.Append(b))
	}
	return tree
}

// buildBranchTree constructs the documented branching example:
//
//	(BASE) A ─ B(1) ─ C ─ D
//	          (2)
//	           │
//	           E
//
// A: fixed, output +X. B: two-output branch (+Y, +Z). C: rotary with a +2X
// output offset. D: fixed, output +3Y. E: rotary, identity output.
func buildBranchTree(t *testing.T) *chain.Tree {
	t.Helper()

	tree := chain.NewTree()
	a, err := chain.NewFixed(r3.Vec{}, spatial.Translate(r3.Vec{X: 1}))
	require.NoError(t, err)
	b, err := chain.NewBranch(r3.Vec{},
		spatial.Translate(r3.Vec{Y: 1}),
		spatial.Translate(r3.Vec{Z: 1}),
	)
	require.NoError(t, err)
	c, err := chain.NewRotary(chain.WithOutput(spatial.Translate(r3.Vec{X: 2})))
	require.NoError(t, err)
	d, err := chain.NewFixed(r3.Vec{}, spatial.Translate(r3.Vec{Y: 3}))
	require.NoError(t, err)
	e, err := chain.NewRotary()
	require.NoError(t, err)

	require.NoError(t, tree.Append(a))
	require.NoError(t, tree.Append(b))
	require.NoError(t, tree.Append(c)) // lands on B's output 1
	require.NoError(t, tree.Append(d))
	require.NoError(t, tree.Attach(1, 1, e)) // B's output 2
	return tree
}

// vecInDelta asserts componentwise closeness of two 3-vectors.
func vecInDelta(t *testing.T, want, got r3.Vec, delta float64, msg string) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "%s: X", msg)
	require.InDelta(t, want.Y, got.Y, delta, "%s: Y", msg)
	require.InDelta(t, want.Z, got.Z, delta, "%s: Z", msg)
}
