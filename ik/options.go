package ik

import (
	"errors"
	"math"

	"github.com/edaniels/golog"
)

// Sentinel errors for solver argument validation and outcome reporting.
var (
	// ErrNilTree indicates a nil *chain.Tree argument.
	ErrNilTree = errors.New("ik: tree is nil")

	// ErrBadTarget indicates a non-finite target position.
	ErrBadTarget = errors.New("ik: target position must be finite")

	// ErrBadOptions indicates a non-positive iteration budget, tolerance,
	// damping factor or step limit.
	ErrBadOptions = errors.New("ik: invalid solver options")

	// ErrNotConverged indicates the iteration budget ran out before the
	// residual reached the tolerance. The accompanying Result still carries
	// the best joint vector found; callers must treat this as a normal,
	// checkable outcome.
	ErrNotConverged = errors.New("ik: iteration budget exhausted before convergence")
)

// Status reports how a solve terminated.
type Status int

const (
	// Converged: the residual reached the tolerance.
	Converged Status = iota

	// MaxIterations: the iteration budget ran out; the result is the best
	// joint vector observed.
	MaxIterations

	// Cancelled: the context was cancelled mid-solve; the result is the best
	// joint vector observed so far.
	Cancelled
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterations:
		return "MaxIterations"
	case Cancelled:
		return "Cancelled"
	default:
		return "unknown"
	}
}

// Options configures the damped-least-squares solver.
//
// Example:
//
//	opts := ik.DefaultOptions()
//	opts.Tolerance = 1e-4        // millimeter-ish accuracy at meter scale
//	opts.MaxIterations = 100
//	res, err := ik.Solve(ctx, tree, target, seed, &opts)
type Options struct {
	// MaxIterations bounds the CPU-bound solve loop (default 200).
	MaxIterations int

	// Tolerance is the convergence threshold on ‖target − position‖, in
	// length units (default 1e-6).
	Tolerance float64

	// Damping is the baseline λ of the damped step (default 0.05). Larger
	// values are slower but steadier near singular configurations.
	Damping float64

	// AdaptiveDamping lets the solver shrink λ while steps reduce the
	// residual and grow it (rejecting the step) when they do not
	// (default true). When false, λ stays fixed at Damping.
	AdaptiveDamping bool

	// StepLimit clamps the norm of each Δq step, guarding against divergent
	// jumps on ill-conditioned configurations (default 0.5).
	StepLimit float64

	// Logger, when non-nil, receives per-iteration debug diagnostics
	// (residual, λ, accepted/rejected).
	Logger golog.Logger
}

// DefaultOptions returns the solver defaults described on each field.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   200,
		Tolerance:       1e-6,
		Damping:         0.05,
		AdaptiveDamping: true,
		StepLimit:       0.5,
	}
}

func (o *Options) validate() error {
	if o.MaxIterations <= 0 {
		return ErrBadOptions
	}
	for _, v := range [3]float64{o.Tolerance, o.Damping, o.StepLimit} {
		if !(v > 0) || math.IsInf(v, 0) {
			return ErrBadOptions
		}
	}
	return nil
}

// Result carries the outcome of a solve. Positions is always populated:
// the solution on Converged, the best-effort joint vector otherwise.
type Result struct {
	// Positions is the joint vector, in the tree's DoF order.
	Positions []float64

	// Status records how the solve terminated.
	Status Status

	// Iterations is the number of update iterations performed.
	Iterations int

	// Residual is ‖target − position‖ at Positions.
	Residual float64

	// Damped reports whether the solver had to raise λ above its baseline,
	// the near-singular-configuration diagnostic.
	Damped bool
}
