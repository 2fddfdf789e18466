package curve

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Basis matrices map the power basis [1, t, t², t³] to blending weights,
// one weight per control point. Rows correspond to control points.
var (
	bezierBasis = mgl64.Mat4FromRows(
		mgl64.Vec4{1, -3, 3, -1},
		mgl64.Vec4{0, 3, -6, 3},
		mgl64.Vec4{0, 0, 3, -3},
		mgl64.Vec4{0, 0, 0, 1},
	)
	bsplineBasis = mgl64.Mat4FromRows(
		mgl64.Vec4{1.0 / 6, -3.0 / 6, 3.0 / 6, -1.0 / 6},
		mgl64.Vec4{4.0 / 6, 0, -6.0 / 6, 3.0 / 6},
		mgl64.Vec4{1.0 / 6, 3.0 / 6, 3.0 / 6, -3.0 / 6},
		mgl64.Vec4{0, 0, 0, 1.0 / 6},
	)
	// G.bezier = G.bspline · bsplineToBezier
	bsplineToBezier = bsplineBasis.Mul4(bezierBasis.Inv())
)

// BezierBasis returns the cubic Bernstein basis matrix.
func BezierBasis() mgl64.Mat4 {
	return bezierBasis
}

// BSplineBasis returns the uniform cubic B-spline basis matrix.
func BSplineBasis() mgl64.Mat4 {
	return bsplineBasis
}

// BSplineToBezierBasis returns the basis change matrix from B-spline
// geometry to Bézier geometry.
func BSplineToBezierBasis() mgl64.Mat4 {
	return bsplineToBezier
}

func powerBasis(t float64) mgl64.Vec4 {
	return mgl64.Vec4{1, t, t * t, t * t * t}
}

// d/dt of the power basis.
func powerBasisDeriv(t float64) mgl64.Vec4 {
	return mgl64.Vec4{0, 1, 2 * t, 3 * t * t}
}

// blend combines four control points with weights w.
func blend(p *[4]mgl64.Vec3, w mgl64.Vec4) mgl64.Vec3 {
	return p[0].Mul(w[0]).Add(p[1].Mul(w[1])).Add(p[2].Mul(w[2])).Add(p[3].Mul(w[3]))
}

// geometryMatrix places four points as columns of a matrix. The homogeneous
// row stays 0.
func geometryMatrix(p0, p1, p2, p3 mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Mat4FromCols(p0.Vec4(0), p1.Vec4(0), p2.Vec4(0), p3.Vec4(0))
}
