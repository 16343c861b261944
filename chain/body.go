package chain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kinetra/kinetra/spatial"
)

// Body is a single kinematic element: an actuator, a rigid link, or a
// generic fixed transform. Bodies are created by the factory functions below
// and added to exactly one Tree, which then owns them exclusively.
//
// A body with 0 joint variables produces a constant local transform; a body
// with 1 joint variable produces a transform that is a pure function of that
// single scalar.
type Body struct {
	kind     BodyKind
	axis     r3.Vec              // unit joint axis; zero for 0-DoF bodies
	outputs  []spatial.Transform // static transform to each output connector
	com      r3.Vec              // center-of-mass offset from the input frame
	consumed bool                // set when a tree takes ownership
}

// BodyOption configures an actuator factory before construction.
type BodyOption func(*bodyConfig)

type bodyConfig struct {
	axis   r3.Vec
	output spatial.Transform
	com    r3.Vec
}

// WithAxis sets the body-fixed joint axis (default: +Z). The axis is
// normalized during construction; a zero or non-finite axis is rejected
// with ErrBadAxis.
func WithAxis(axis r3.Vec) BodyOption {
	return func(c *bodyConfig) { c.axis = axis }
}

// WithOutput sets the static transform from the joint frame to the body's
// output connector (default: identity). Use it to model actuator housing
// geometry.
func WithOutput(output spatial.Transform) BodyOption {
	return func(c *bodyConfig) { c.output = output }
}

// WithCoM sets the center-of-mass offset relative to the body's input frame
// (default: zero).
func WithCoM(com r3.Vec) BodyOption {
	return func(c *bodyConfig) { c.com = com }
}

// NewRotary creates an actuator body with a single rotational DoF about a
// body-fixed axis. The joint rotation acts at the output connector, so the
// actuator housing (and its center of mass) stays fixed in the input frame.
//
// Returns ErrBadAxis for a zero/non-finite axis and ErrBadGeometry for
// non-finite output or CoM parameters.
func NewRotary(opts ...BodyOption) (*Body, error) {
	return newActuator(KindRotary, opts)
}

// NewPrismatic creates an actuator body with a single translational DoF
// along a body-fixed axis. Same validation rules as NewRotary.
func NewPrismatic(opts ...BodyOption) (*Body, error) {
	return newActuator(KindPrismatic, opts)
}

func newActuator(kind BodyKind, opts []BodyOption) (*Body, error) {
	cfg := bodyConfig{axis: r3.Vec{Z: 1}, output: spatial.Identity()}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := r3.Norm(cfg.axis)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrBadAxis
	}
	if !cfg.output.IsFinite() || !finiteVec(cfg.com) {
		return nil, ErrBadGeometry
	}
	return &Body{
		kind:    kind,
		axis:    r3.Scale(1/n, cfg.axis),
		outputs: []spatial.Transform{cfg.output},
		com:     cfg.com,
	}, nil
}

// NewLink creates a rigid tube link: a center-to-center translation of
// length along +Z, twisted by twist radians about +X. A twist of 0 keeps the
// input and output rotational axes parallel (pure Z offset); a twist of π
// makes them anti-parallel. The center of mass sits at the tube midpoint.
//
// Contributes no DoF. Returns ErrBadGeometry for a non-positive or
// non-finite length, or a non-finite twist.
func NewLink(length, twist float64) (*Body, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, ErrBadGeometry
	}
	if math.IsNaN(twist) || math.IsInf(twist, 0) {
		return nil, ErrBadGeometry
	}
	out := spatial.Translate(r3.Vec{Z: length}).Mul(spatial.RotX(twist))
	return &Body{
		kind:    KindLink,
		outputs: []spatial.Transform{out},
		com:     r3.Vec{Z: length / 2},
	}, nil
}

// NewFixed creates a generic fixed-transform body from a center-of-mass
// vector and an arbitrary homogeneous output transform. Contributes no DoF.
//
// Returns ErrBadGeometry for non-finite parameters.
func NewFixed(com r3.Vec, output spatial.Transform) (*Body, error) {
	if !finiteVec(com) || !output.IsFinite() {
		return nil, ErrBadGeometry
	}
	return &Body{
		kind:    KindFixed,
		outputs: []spatial.Transform{output},
		com:     com,
	}, nil
}

// NewBranch creates a fixed-transform body with one output connector per
// given transform, allowing branching trees to be represented. Contributes
// no DoF. At least one output is required.
//
// Returns ErrBadGeometry for zero outputs or non-finite parameters.
func NewBranch(com r3.Vec, outputs ...spatial.Transform) (*Body, error) {
	if len(outputs) == 0 || !finiteVec(com) {
		return nil, ErrBadGeometry
	}
	outs := make([]spatial.Transform, len(outputs))
	for i, o := range outputs {
		if !o.IsFinite() {
			return nil, ErrBadGeometry
		}
		outs[i] = o
	}
	return &Body{
		kind:    KindFixed,
		outputs: outs,
		com:     com,
	}, nil
}

// Kind returns the body's variant tag.
func (b *Body) Kind() BodyKind { return b.kind }

// DoFs returns the number of joint variables the body contributes (0 or 1).
func (b *Body) DoFs() int {
	if b.kind == KindRotary || b.kind == KindPrismatic {
		return 1
	}
	return 0
}

// Outputs returns the number of output connectors (1 for chain elements,
// ≥1 for branching elements).
func (b *Body) Outputs() int { return len(b.outputs) }

// Axis returns the body-fixed unit joint axis; the zero vector for 0-DoF
// bodies.
func (b *Body) Axis() r3.Vec { return b.axis }

// CoM returns the center-of-mass offset relative to the input frame.
func (b *Body) CoM() r3.Vec { return b.com }

// Consumed reports whether a tree has taken ownership of the body.
func (b *Body) Consumed() bool { return b.consumed }

// LocalTransform returns the homogeneous transform from the body's input
// frame to the given output connector, evaluated at joint value q.
// q is ignored for 0-DoF bodies. Returns ErrBadOutputIndex for an invalid
// connector index.
func (b *Body) LocalTransform(q float64, output int) (spatial.Transform, error) {
	if output < 0 || output >= len(b.outputs) {
		return spatial.Transform{}, ErrBadOutputIndex
	}
	return b.localTransform(q, output), nil
}

// localTransform is the unchecked fast path used during traversal.
func (b *Body) localTransform(q float64, output int) spatial.Transform {
	switch b.kind {
	case KindRotary:
		return b.outputs[output].Mul(spatial.AxisAngle(b.axis, q))
	case KindPrismatic:
		return b.outputs[output].Mul(spatial.Translate(r3.Scale(q, b.axis)))
	default:
		return b.outputs[output]
	}
}

// finiteVec reports whether every component of v is finite.
func finiteVec(v r3.Vec) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
