package curve

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/sweep"
)

// If the first tangent is closer to the first reference vector than this
// (|ref·T|), the initial frame is seeded from the second reference vector.
const referenceThreshold = 0.9

var (
	firstReference  = mgl64.Vec3{0, 0, 1}
	secondReference = mgl64.Vec3{0, 1, 0}
)

// frameCarry is the state threaded through the samples of one evaluation:
// the binormal of the previous sample. A zero carry means no frame has been
// built yet.
type frameCarry struct {
	b      mgl64.Vec3
	seeded bool
}

// next computes the frame for tangent T (assumed to be of unit length) and
// advances the carry.
func (fc *frameCarry) next(T mgl64.Vec3) (N, B mgl64.Vec3, err error) {
	var ref mgl64.Vec3
	if fc.seeded {
		ref = fc.b
	} else {
		ref = firstReference
		if math.Abs(ref.Dot(T)) > referenceThreshold {
			ref = secondReference
		}
		tracer().Debugf("seeding frame from reference %v", ref)
	}
	n := ref.Cross(T)
	if sweep.Is0(n.Len()) {
		return N, B, fmt.Errorf("%w: binormal %v parallel to tangent %v", ErrDegenerateFrame, ref, T)
	}
	N = n.Normalize()
	B = T.Cross(N).Normalize()
	fc.b, fc.seeded = B, true
	return N, B, nil
}
