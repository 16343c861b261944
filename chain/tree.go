package chain

import "github.com/kinetra/kinetra/spatial"

// record is one arena slot of the tree. Bodies are linked by indices, never
// pointers, so the arena stays self-contained and trivially copyable for
// internal traversal purposes.
type record struct {
	body      *Body
	parent    int   // arena index of the parent record; -1 for the root
	parentOut int   // parent output connector this record hangs off
	children  []int // child record per output connector; -1 while free
	dof       int   // joint-variable column of this body; -1 for 0-DoF bodies
}

// Tree is an ordered, exclusively owning collection of bodies connected
// output-to-input, rooted at a configurable base frame.
//
// A Tree is a non-duplicable resource: always pass it as *Tree; no copy or
// clone API is provided. Construction (Append, Attach, SetBaseFrame) must
// complete before concurrent queries begin; afterwards every method is
// read-only and safe for concurrent use.
type Tree struct {
	base      spatial.Transform
	records   []record
	dofs      int
	outFrames int
}

// NewTree creates an empty tree with an identity base frame.
func NewTree() *Tree {
	return &Tree{base: spatial.Identity()}
}

// SetBaseFrame sets the transform from the world coordinate system to the
// input of the root body. World coordinates are used for all positions,
// axes and transforms reported by queries.
//
// Returns ErrBadGeometry if base contains non-finite entries.
func (t *Tree) SetBaseFrame(base spatial.Transform) error {
	if !base.IsFinite() {
		return ErrBadGeometry
	}
	t.base = base
	return nil
}

// BaseFrame returns the current world-to-root transform.
func (t *Tree) BaseFrame() spatial.Transform { return t.base }

// Len returns the number of bodies in the tree.
func (t *Tree) Len() int { return len(t.records) }

// DoFs returns the number of settable joint variables in the tree
// (the number of actuator bodies added).
func (t *Tree) DoFs() int { return t.dofs }

// Frames returns the number of frames reported for the given frame type:
// one per body for FrameCoM, one per output connector for FrameOutput.
func (t *Tree) Frames(ft FrameType) int {
	if ft == FrameOutput {
		return t.outFrames
	}
	return len(t.records)
}

// Leaves returns the arena indices of all bodies with no children attached,
// in ascending index order.
func (t *Tree) Leaves() []int {
	var leaves []int
	for i := range t.records {
		if t.isLeaf(i) {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

func (t *Tree) isLeaf(i int) bool {
	for _, c := range t.records[i].children {
		if c >= 0 {
			return false
		}
	}
	return true
}

// Append adds b to the end of the chain: the first body becomes the root,
// every later body attaches to the lowest free output connector of the most
// recently added body. On success the tree takes exclusive ownership of b
// (the handle is consumed and cannot be added elsewhere).
//
// Errors (tree unchanged): ErrNilBody, ErrBodyConsumed, ErrNoFreeConnector.
func (t *Tree) Append(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.consumed {
		return ErrBodyConsumed
	}
	parent, parentOut := -1, -1
	if len(t.records) > 0 {
		parent = len(t.records) - 1
		tip := &t.records[parent]
		for out, c := range tip.children {
			if c < 0 {
				parentOut = out
				break
			}
		}
		if parentOut < 0 {
			return ErrNoFreeConnector
		}
	}
	t.attach(parent, parentOut, b)
	return nil
}

// Attach adds b as the child of the given body's output connector. Use it
// for branching trees; Append covers the single-chain case.
//
// Errors (tree unchanged): ErrNilBody, ErrBodyConsumed, ErrBodyNotFound,
// ErrBadOutputIndex, ErrConnectorInUse.
func (t *Tree) Attach(parent, output int, b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.consumed {
		return ErrBodyConsumed
	}
	if parent < 0 || parent >= len(t.records) {
		return ErrBodyNotFound
	}
	p := &t.records[parent]
	if output < 0 || output >= len(p.children) {
		return ErrBadOutputIndex
	}
	if p.children[output] >= 0 {
		return ErrConnectorInUse
	}
	t.attach(parent, output, b)
	return nil
}

// attach commits an already validated addition and updates derived counts.
func (t *Tree) attach(parent, parentOut int, b *Body) {
	b.consumed = true
	children := make([]int, b.Outputs())
	for i := range children {
		children[i] = -1
	}
	dof := -1
	if b.DoFs() > 0 {
		dof = t.dofs
		t.dofs++
	}
	idx := len(t.records)
	t.records = append(t.records, record{
		body:      b,
		parent:    parent,
		parentOut: parentOut,
		children:  children,
		dof:       dof,
	})
	if parent >= 0 {
		t.records[parent].children[parentOut] = idx
	}
	t.outFrames += b.Outputs()
}

// checkJoint validates a joint vector against the tree's DoF count.
func (t *Tree) checkJoint(q []float64) error {
	if len(q) != t.dofs {
		return ErrDimensionMismatch
	}
	return nil
}
