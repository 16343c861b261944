package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kinetra/kinetra/chain"
	"github.com/kinetra/kinetra/spatial"
)

// TestNewTree_Empty verifies the empty-tree invariants: identity base frame,
// zero DoFs, zero frames of either type.
func TestNewTree_Empty(t *testing.T) {
	tree := chain.NewTree()

	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.DoFs())
	assert.Equal(t, 0, tree.Frames(chain.FrameCoM))
	assert.Equal(t, 0, tree.Frames(chain.FrameOutput))
	assert.True(t, tree.BaseFrame().Equal(spatial.Identity(), 0), "default base frame is identity")
	assert.Empty(t, tree.Leaves())
}

// TestSetBaseFrame_Validation accepts finite transforms and rejects NaN/Inf.
func TestSetBaseFrame_Validation(t *testing.T) {
	tree := chain.NewTree()
	base := spatial.Translate(r3.Vec{Z: 0.2}).Mul(spatial.RotZ(math.Pi / 4))

	require.NoError(t, tree.SetBaseFrame(base))
	assert.True(t, tree.BaseFrame().Equal(base, 0))

	bad := base
	bad[2][3] = math.NaN()
	assert.ErrorIs(t, tree.SetBaseFrame(bad), chain.ErrBadGeometry)
	assert.True(t, tree.BaseFrame().Equal(base, 0), "failed set must leave the base frame unchanged")
}

// TestDoFCount_ActuatorsOnly verifies that DoFs equals the number of
// actuator bodies: k rotary + m links ⇒ k DoFs.
func TestDoFCount_ActuatorsOnly(t *testing.T) {
	const k, m = 3, 4
	tree := chain.NewTree()

	for i := 0; i < k; i++ {
		b, err := chain.NewRotary()
		require.NoError(t, err)
		require.NoError(t, tree.Append(b))

		if i < m-1 {
			l, err := chain.NewLink(0.25, 0)
			require.NoError(t, err)
			require.NoError(t, tree.Append(l))
		}
	}
	l, err := chain.NewLink(0.1, math.Pi/2)
	require.NoError(t, err)
	require.NoError(t, tree.Append(l))

	assert.Equal(t, k, tree.DoFs(), "fixed links contribute no DoF")
	assert.Equal(t, k+m, tree.Len())
	assert.Equal(t, k+m, tree.Frames(chain.FrameCoM))
	assert.Equal(t, k+m, tree.Frames(chain.FrameOutput), "single-output bodies: one output frame each")
}

// TestAppend_ConsumesBody verifies move semantics: after a successful add the
// handle is owned by the tree and cannot be added again, anywhere.
func TestAppend_ConsumesBody(t *testing.T) {
	b, err := chain.NewRotary()
	require.NoError(t, err)

	tree := chain.NewTree()
	require.NoError(t, tree.Append(b))
	assert.True(t, b.Consumed())

	assert.ErrorIs(t, tree.Append(b), chain.ErrBodyConsumed, "re-adding to the same tree")

	other := chain.NewTree()
	assert.ErrorIs(t, other.Append(b), chain.ErrBodyConsumed, "adding to another tree")
	assert.Equal(t, 0, other.Len(), "failed add must leave the tree unchanged")
}

// TestAppend_NilBody rejects nil handles.
func TestAppend_NilBody(t *testing.T) {
	tree := chain.NewTree()
	assert.ErrorIs(t, tree.Append(nil), chain.ErrNilBody)
	assert.ErrorIs(t, tree.Attach(0, 0, nil), chain.ErrNilBody)
}

// TestAttach_ConnectorInUse verifies the structural failure mode: attaching
// to a single-output body whose connector is already consumed fails and
// leaves the DoF and frame counts unchanged.
func TestAttach_ConnectorInUse(t *testing.T) {
	tree := buildPlanarArm(t)
	dofs, comFrames, outFrames := tree.DoFs(), tree.Frames(chain.FrameCoM), tree.Frames(chain.FrameOutput)

	extra, err := chain.NewRotary()
	require.NoError(t, err)
	// Body 0's only connector already feeds body 1.
	assert.ErrorIs(t, tree.Attach(0, 0, extra), chain.ErrConnectorInUse)

	assert.False(t, extra.Consumed(), "failed attach must not consume the body")
	assert.Equal(t, dofs, tree.DoFs())
	assert.Equal(t, comFrames, tree.Frames(chain.FrameCoM))
	assert.Equal(t, outFrames, tree.Frames(chain.FrameOutput))

	// The body is still usable after the failure.
	assert.NoError(t, tree.Append(extra))
}

// TestAttach_IndexValidation covers parent and output range errors.
func TestAttach_IndexValidation(t *testing.T) {
	tree := buildPlanarArm(t)
	b, err := chain.NewRotary()
	require.NoError(t, err)

	assert.ErrorIs(t, tree.Attach(-1, 0, b), chain.ErrBodyNotFound)
	assert.ErrorIs(t, tree.Attach(99, 0, b), chain.ErrBodyNotFound)
	assert.ErrorIs(t, tree.Attach(3, 5, b), chain.ErrBadOutputIndex)
	assert.False(t, b.Consumed())
}

// TestLeaves_ChainAndBranch verifies leaf detection for a chain (single
// leaf) and the documented branch (two leaves).
func TestLeaves_ChainAndBranch(t *testing.T) {
	arm := buildPlanarArm(t)
	assert.Equal(t, []int{3}, arm.Leaves(), "a chain has exactly one leaf: its tip")

	branch := buildBranchTree(t)
	assert.Equal(t, []int{3, 4}, branch.Leaves(), "D and E are the branch leaves")
	assert.Equal(t, 2, branch.DoFs())
	assert.Equal(t, 5, branch.Frames(chain.FrameCoM))
	assert.Equal(t, 6, branch.Frames(chain.FrameOutput), "B contributes two output frames")
}
