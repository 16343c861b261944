package ik

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/kinetra/kinetra/chain"
	"github.com/kinetra/kinetra/jacobian"
)

// Solve searches for a joint vector that places the tree's end effector at
// the target position, starting from seed. The seed slice is never
// modified.
//
// opts may be nil for DefaultOptions. The context is checked once per
// iteration; a cancelled context terminates the solve with Status Cancelled
// and the best-effort result.
//
// The returned error is nil exactly when Result.Status is Converged;
// ErrNotConverged accompanies MaxIterations, and the wrapped context error
// accompanies Cancelled.
func Solve(ctx context.Context, t *chain.Tree, target r3.Vec, seed []float64, opts *Options) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTree
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if !finiteVec(target) {
		return Result{}, ErrBadTarget
	}
	if len(seed) != t.DoFs() {
		return Result{}, chain.ErrDimensionMismatch
	}
	if ctx == nil {
		ctx = context.Background()
	}

	q := cloneFloats(seed)
	e, res, err := positionError(t, target, q)
	if err != nil {
		return Result{}, err
	}
	if res <= o.Tolerance {
		return Result{Positions: q, Status: Converged, Residual: res}, nil
	}
	// A zero-DoF tree cannot improve on its seed; surface that before
	// looping rather than from the first Jacobian call.
	if t.DoFs() == 0 {
		return Result{}, jacobian.ErrNoDoF
	}

	lambda := o.Damping
	damped := false
	bestQ := cloneFloats(q)
	bestRes := res

	for it := 1; it <= o.MaxIterations; it++ {
		if cerr := ctx.Err(); cerr != nil {
			return Result{
				Positions:  bestQ,
				Status:     Cancelled,
				Iterations: it - 1,
				Residual:   bestRes,
				Damped:     damped,
			}, fmt.Errorf("ik: solve interrupted: %w", cerr)
		}

		jac, jerr := jacobian.EndEffector(t, chain.FrameOutput, q)
		if jerr != nil {
			return Result{}, jerr
		}
		dq, ok := dampedStep(jacobian.Positional(jac), e, lambda)
		if !ok {
			// Numerically broken normal equations; damp harder and retry.
			lambda *= 10
			damped = true
			continue
		}
		if norm := floats.Norm(dq, 2); norm > o.StepLimit {
			floats.Scale(o.StepLimit/norm, dq)
		}

		cand := cloneFloats(q)
		floats.Add(cand, dq)
		ce, cres, perr := positionError(t, target, cand)
		if perr != nil {
			return Result{}, perr
		}

		accepted := true
		if o.AdaptiveDamping && cres >= res {
			// The step did not pay off: reject it and steepen the damping
			// (Levenberg-Marquardt reject-and-retry).
			accepted = false
			lambda = math.Min(lambda*4, 1e6)
			damped = true
		} else {
			q, e, res = cand, ce, cres
			if o.AdaptiveDamping {
				lambda = math.Max(lambda/2, o.Damping/16)
			}
		}
		if res < bestRes {
			bestRes = res
			bestQ = cloneFloats(q)
		}
		if o.Logger != nil {
			o.Logger.Debugw("ik iteration",
				"iter", it, "residual", res, "lambda", lambda, "accepted", accepted)
		}

		if res <= o.Tolerance {
			return Result{
				Positions:  q,
				Status:     Converged,
				Iterations: it,
				Residual:   res,
				Damped:     damped,
			}, nil
		}
	}

	return Result{
		Positions:  bestQ,
		Status:     MaxIterations,
		Iterations: o.MaxIterations,
		Residual:   bestRes,
		Damped:     damped,
	}, ErrNotConverged
}

// dampedStep solves Δq = Jᵀ (J·Jᵀ + λ²I)⁻¹ e for the 3×N positional
// Jacobian. The damped normal matrix is symmetric positive definite for any
// λ > 0, so a Cholesky factorization applies; ok is false only when the
// matrix is numerically unusable (NaN/Inf contamination).
func dampedStep(jp *mat.Dense, e r3.Vec, lambda float64) ([]float64, bool) {
	_, n := jp.Dims()

	var jjt mat.Dense
	jjt.Mul(jp, jp.T())
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := jjt.At(i, j)
			if i == j {
				v += lambda * lambda
			}
			sym.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, false
	}
	var y mat.VecDense
	if err := chol.SolveVecTo(&y, mat.NewVecDense(3, []float64{e.X, e.Y, e.Z})); err != nil {
		return nil, false
	}

	var dq mat.VecDense
	dq.MulVec(jp.T(), &y)
	out := make([]float64, n)
	for i := range out {
		out[i] = dq.AtVec(i)
	}
	return out, true
}

// positionError evaluates the end effector at q and returns the error
// vector target − position together with its norm.
func positionError(t *chain.Tree, target r3.Vec, q []float64) (r3.Vec, float64, error) {
	ee, err := t.EndEffector(chain.FrameOutput, q)
	if err != nil {
		return r3.Vec{}, 0, err
	}
	e := r3.Sub(target, ee.Translation())
	return e, r3.Norm(e), nil
}

func cloneFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func finiteVec(v r3.Vec) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
