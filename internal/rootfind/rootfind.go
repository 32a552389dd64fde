// Package rootfind implements three classic scalar root-finding methods:
// Newton-Raphson, secant, and false position (regula falsi). Each method
// returns the final estimate together with a per-iteration trace and a
// tagged outcome, so callers never have to infer how a run ended from the
// shape of the trace.
package rootfind

import (
	"math"

	"github.com/tmoreland/rootlab/pkg/constants"
	"go.uber.org/zap"
)

// Func is a caller-supplied real scalar function. It must be total and
// finite-valued over the domain explored; domain errors inside the function
// itself are propagated, not caught.
type Func func(x float64) float64

// Outcome tags how an invocation ended.
type Outcome int

const (
	// OutcomeConverged means the step size dropped below the tolerance.
	OutcomeConverged Outcome = iota

	// OutcomeExhausted means the iteration cap was reached before convergence.
	OutcomeExhausted

	// OutcomeSingular means a near-zero denominator stopped the method early:
	// a numerically singular derivative for Newton-Raphson, a degenerate
	// slope for the secant method.
	OutcomeSingular

	// OutcomeInvalidInput means the method never iterated. For false position
	// this is a bracket without a sign change.
	OutcomeInvalidInput
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeSingular:
		return "singular"
	case OutcomeInvalidInput:
		return "invalid input"
	}
	return "unknown"
}

// Record holds one iteration step. X is the current estimate (the chord
// intersection for false position); A and B are only meaningful when
// Bracketed is set. Error is the absolute step between successive estimates.
type Record struct {
	Iter      int
	Method    string
	A         float64
	B         float64
	X         float64
	FX        float64
	Error     float64
	Bracketed bool
}

// Trace is the ordered iteration history of a single invocation.
type Trace []Record

// Result pairs the final estimate with its trace and outcome. Root is NaN
// and Trace is nil when Outcome is OutcomeInvalidInput, so "never ran" is
// distinct from "ran and stopped immediately".
type Result struct {
	Outcome Outcome
	Root    float64
	Trace   Trace
}

// NewtonRaphson iterates x_next = x - f(x)/f'(x) from x0 until the step
// size falls below tol, maxIter steps have run, or the derivative becomes
// numerically singular. Each record is appended before the stop test, using
// the pre-update estimate.
func NewtonRaphson(logger *zap.Logger, f, deriv Func, x0, tol float64, maxIter int) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	trace := make(Trace, 0, maxIter)
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		fp := deriv(x)
		if math.Abs(fp) < constants.DerivativeEpsilon {
			logger.Debug("stopping on numerically singular derivative",
				zap.String("op", "rootfind.NewtonRaphson"),
				zap.Float64("x", x),
				zap.Float64("derivative", fp),
			)
			return Result{Outcome: OutcomeSingular, Root: x, Trace: trace}
		}
		next := x - fx/fp
		step := math.Abs(next - x)
		trace = append(trace, Record{
			Iter:   i + 1,
			Method: constants.MethodNewton,
			X:      x,
			FX:     fx,
			Error:  step,
		})
		x = next
		if step < tol {
			logger.Debug("converged",
				zap.String("op", "rootfind.NewtonRaphson"),
				zap.Float64("root", x),
				zap.Int("iterations", len(trace)),
			)
			return Result{Outcome: OutcomeConverged, Root: x, Trace: trace}
		}
	}
	return Result{Outcome: OutcomeExhausted, Root: x, Trace: trace}
}

// Secant iterates from the two estimates x0, x1, replacing the derivative
// with the finite-difference slope through the last two points. It stops on
// convergence, on the iteration cap, or when the slope denominator becomes
// degenerate.
func Secant(logger *zap.Logger, f Func, x0, x1, tol float64, maxIter int) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	trace := make(Trace, 0, maxIter)
	prev, curr := x0, x1
	for i := 0; i < maxIter; i++ {
		fCurr, fPrev := f(curr), f(prev)
		if math.Abs(fCurr-fPrev) < constants.SlopeEpsilon {
			logger.Debug("stopping on degenerate secant slope",
				zap.String("op", "rootfind.Secant"),
				zap.Float64("xPrev", prev),
				zap.Float64("xCurr", curr),
			)
			return Result{Outcome: OutcomeSingular, Root: curr, Trace: trace}
		}
		next := curr - fCurr*(curr-prev)/(fCurr-fPrev)
		step := math.Abs(next - curr)
		trace = append(trace, Record{
			Iter:   i + 1,
			Method: constants.MethodSecant,
			X:      curr,
			FX:     fCurr,
			Error:  step,
		})
		prev, curr = curr, next
		if step < tol {
			logger.Debug("converged",
				zap.String("op", "rootfind.Secant"),
				zap.Float64("root", curr),
				zap.Int("iterations", len(trace)),
			)
			return Result{Outcome: OutcomeConverged, Root: curr, Trace: trace}
		}
	}
	return Result{Outcome: OutcomeExhausted, Root: curr, Trace: trace}
}

// FalsePosition iterates the chord intersection c = b - f(b)(b-a)/(f(b)-f(a))
// over a bracket [a,b] with a sign change. A bracket where f(a) and f(b) do
// not straddle zero is rejected up front with OutcomeInvalidInput and no
// trace. The step error compares successive chord intersections, seeded with
// a, so the first recorded error is |c - a|. The convergence test runs after
// recording but before the bracket update, so the recorded bracket reflects
// the state at convergence. An exact hit f(a)*f(c) == 0 moves a rather than
// terminating.
func FalsePosition(logger *zap.Logger, f Func, a, b, tol float64, maxIter int) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	if f(a)*f(b) >= 0 {
		logger.Debug("rejecting bracket without sign change",
			zap.String("op", "rootfind.FalsePosition"),
			zap.Float64("a", a),
			zap.Float64("b", b),
		)
		return Result{Outcome: OutcomeInvalidInput, Root: math.NaN()}
	}

	trace := make(Trace, 0, maxIter)
	cOld := a
	var c float64
	for i := 0; i < maxIter; i++ {
		fa, fb := f(a), f(b)
		c = b - fb*(b-a)/(fb-fa)
		fc := f(c)
		step := math.Abs(c - cOld)
		trace = append(trace, Record{
			Iter:      i + 1,
			Method:    constants.MethodFalsePosition,
			A:         a,
			B:         b,
			X:         c,
			FX:        fc,
			Error:     step,
			Bracketed: true,
		})
		if step < tol {
			logger.Debug("converged",
				zap.String("op", "rootfind.FalsePosition"),
				zap.Float64("root", c),
				zap.Int("iterations", len(trace)),
			)
			return Result{Outcome: OutcomeConverged, Root: c, Trace: trace}
		}
		if fa*fc < 0 {
			b = c
		} else {
			a = c
		}
		cOld = c
	}
	return Result{Outcome: OutcomeExhausted, Root: c, Trace: trace}
}
