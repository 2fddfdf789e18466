package curve

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/sweep"
)

// CheckBezier validates a Bézier control point chain: it must consist of
// 3n+1 points, n ≥ 1.
func CheckBezier(P []mgl64.Vec3) error {
	if len(P) < 4 {
		return fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(P))
	}
	if (len(P)-1)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrBezierChainLength, len(P))
	}
	return nil
}

// EvalBezier samples a chain of cubic Bézier segments. Segment k uses
// control points P[3k] … P[3k+3], consecutive segments share an end point.
//
// Every segment is sampled at steps+1 uniformly spaced parameter values.
// The joint between two segments is emitted only once, therefore the
// resulting curve has n·steps+1 samples for n segments.
//
// Frames are propagated from sample to sample across all segments.
// EvalBezier returns an error for invalid input or if the tangent vanishes
// at a sample; it never returns a partial curve. The tangent vanishes if
// |dP/dt| ≤ ε·e, where e is the extent of the segment's control polygon,
// so the check does not depend on the curve's scale.
func EvalBezier(P []mgl64.Vec3, steps int) (Curve, error) {
	if err := CheckBezier(P); err != nil {
		tracer().Errorf("EvalBezier: %v", err)
		return nil, err
	}
	if steps < 1 {
		tracer().Errorf("EvalBezier: steps = %d", steps)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	n := (len(P) - 1) / 3
	tracer().Debugf("evaluating %d Bézier segments with %d steps each", n, steps)
	curve := make(Curve, 0, n*steps+1)
	var carry frameCarry
	for k := 0; k < n; k++ {
		seg := [4]mgl64.Vec3{P[3*k], P[3*k+1], P[3*k+2], P[3*k+3]}
		tol := sweep.Epsilon * extent(&seg)
		first := 0
		if k > 0 {
			first = 1 // joint already emitted by previous segment
		}
		for j := first; j <= steps; j++ {
			t := float64(j) / float64(steps)
			s, err := sampleSegment(&seg, t, tol, &carry)
			if err != nil {
				return nil, fmt.Errorf("segment %d at t=%g: %w", k, t, err)
			}
			curve = append(curve, s)
		}
	}
	tracer().Infof("Bézier chain of %d segments sampled into %d points", n, len(curve))
	return curve, nil
}

// MustEvalBezier is like EvalBezier, but panics on error.
func MustEvalBezier(P []mgl64.Vec3, steps int) Curve {
	c, err := EvalBezier(P, steps)
	if err != nil {
		panic(err)
	}
	return c
}

// extent is the largest distance of a segment's control point from its
// start point.
func extent(seg *[4]mgl64.Vec3) float64 {
	var e float64
	for _, p := range seg[1:] {
		e = math.Max(e, p.Sub(seg[0]).Len())
	}
	return e
}

// sampleSegment evaluates one cubic Bézier segment at parameter t.
// A derivative not longer than tol counts as vanishing.
func sampleSegment(seg *[4]mgl64.Vec3, t, tol float64, carry *frameCarry) (Sample, error) {
	V := blend(seg, bezierBasis.Mul4x1(powerBasis(t)))
	d := blend(seg, bezierBasis.Mul4x1(powerBasisDeriv(t)))
	if d.Len() <= tol {
		return Sample{}, fmt.Errorf("%w: derivative %v", ErrDegenerateTangent, d)
	}
	T := d.Normalize()
	N, B, err := carry.next(T)
	if err != nil {
		return Sample{}, err
	}
	return Sample{V: V, T: T, N: N, B: B}, nil
}
