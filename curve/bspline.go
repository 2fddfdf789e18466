package curve

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// BSplineToBezier converts a uniform cubic B-spline into an equivalent chain
// of cubic Bézier segments. Window i of the spline (points P[i] … P[i+3])
// becomes one Bézier segment; the chain has 3·(len(P)-3)+1 control points.
func BSplineToBezier(P []mgl64.Vec3) ([]mgl64.Vec3, error) {
	if len(P) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(P))
	}
	windows := len(P) - 3
	bez := make([]mgl64.Vec3, 0, 3*windows+1)
	for i := 0; i < windows; i++ {
		G := geometryMatrix(P[i], P[i+1], P[i+2], P[i+3]).Mul4(bsplineToBezier)
		first := 0
		if i > 0 {
			first = 1 // equals last point of previous window
		}
		for c := first; c < 4; c++ {
			bez = append(bez, G.Col(c).Vec3())
		}
	}
	tracer().Debugf("converted %d B-spline control points to %d Bézier control points",
		len(P), len(bez))
	return bez, nil
}

// EvalBSpline samples a uniform cubic B-spline given by 4 or more control
// points. The spline is converted into one Bézier chain which is then
// evaluated by a single call of EvalBezier, so frames are propagated
// continuously over the whole spline. The result has
// (len(P)-3)·steps+1 samples.
func EvalBSpline(P []mgl64.Vec3, steps int) (Curve, error) {
	bez, err := BSplineToBezier(P)
	if err != nil {
		tracer().Errorf("EvalBSpline: %v", err)
		return nil, err
	}
	return EvalBezier(bez, steps)
}

// MustEvalBSpline is like EvalBSpline, but panics on error.
func MustEvalBSpline(P []mgl64.Vec3, steps int) Curve {
	c, err := EvalBSpline(P, steps)
	if err != nil {
		panic(err)
	}
	return c
}
