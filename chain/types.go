package chain

import "gonum.org/v1/gonum/spatial/r3"

// BodyKind tags the variant of a kinematic body.
type BodyKind int

const (
	// KindRotary is an actuator with one rotational DoF about a body-fixed axis.
	KindRotary BodyKind = iota

	// KindPrismatic is an actuator with one translational DoF along a
	// body-fixed axis.
	KindPrismatic

	// KindLink is a rigid tube link described by a center-to-center length
	// and a twist angle; contributes no DoF.
	KindLink

	// KindFixed is a generic fixed transform with a center-of-mass offset;
	// contributes no DoF.
	KindFixed
)

// String returns a human-readable kind name.
func (k BodyKind) String() string {
	switch k {
	case KindRotary:
		return "rotary"
	case KindPrismatic:
		return "prismatic"
	case KindLink:
		return "link"
	case KindFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// FrameType selects which frames forward kinematics and Jacobians report.
// The choice changes the frame count and target set, not the transform
// algebra.
type FrameType int

const (
	// FrameCoM yields one frame per body, attached at the body's reference
	// offset by its center-of-mass vector.
	FrameCoM FrameType = iota

	// FrameOutput yields one frame per output connector per body.
	FrameOutput
)

// String returns a human-readable frame-type name.
func (f FrameType) String() string {
	switch f {
	case FrameCoM:
		return "center-of-mass"
	case FrameOutput:
		return "output"
	default:
		return "unknown"
	}
}

// JointGeometry describes one joint variable evaluated at a concrete joint
// vector, in world (base) coordinates. The slice returned by Tree.Joints is
// ordered by DoF column.
type JointGeometry struct {
	// Body is the arena index of the contributing body.
	Body int

	// Kind is KindRotary or KindPrismatic.
	Kind BodyKind

	// Origin is a world-space point on the joint axis.
	Origin r3.Vec

	// Axis is the world-space unit direction of the joint axis.
	Axis r3.Vec
}
