package curve

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EvalCircle samples a circle of the given radius around the origin in the
// xy-plane, counter-clockwise, starting at (radius,0,0). Frames are exact:
// N points to the center and B = (0,0,1) throughout.
//
// The curve has steps+1 samples; the first and the last sample coincide.
func EvalCircle(radius float64, steps int) (Curve, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	c := make(Curve, steps+1)
	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		sin, cos := math.Sincos(t)
		c[i] = Sample{
			V: mgl64.Vec3{cos, sin, 0}.Mul(radius),
			T: mgl64.Vec3{-sin, cos, 0},
			N: mgl64.Vec3{-cos, -sin, 0},
			B: mgl64.Vec3{0, 0, 1},
		}
	}
	return c, nil
}
