/*
Package sweep samples cubic curves in 3D space and equips every sample
with an orthonormal coordinate frame (tangent, normal, binormal), ready
to orient geometry swept along the curve.

The evaluators live in package curve. This root package holds the numeric
predicates shared by all sub-packages: tolerances, zero/one tests and
a handful of vector checks for frames.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sweep

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sweep'
func tracer() tracing.Trace {
	return tracing.Select("sweep")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// FrameTolerance is the slack allowed when checking a frame for orthonormality.
var FrameTolerance float64 = 0.00001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Vectors ===============================================================

// Approx is a predicate: are two points approximately equal?
// We don't compare with == because of floating point precision issues.
func Approx(a, b mgl64.Vec3) bool {
	d := a.Sub(b)
	return d.Dot(d) < 1e-8
}

// Zapped returns v with every coordinate zapped.
func Zapped(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{Zap(v[0]), Zap(v[1]), Zap(v[2])}
}

// IsUnit is a predicate: is |v| = 1 within FrameTolerance?
func IsUnit(v mgl64.Vec3) bool {
	return math.Abs(v.Len()-1) <= FrameTolerance
}

// Orthogonal is a predicate: is a·b = 0 within FrameTolerance?
func Orthogonal(a, b mgl64.Vec3) bool {
	return math.Abs(a.Dot(b)) <= FrameTolerance
}

// IsOrthonormal checks if {t, n, b} is a right-handed orthonormal basis,
// i.e. all vectors are of unit length, pairwise orthogonal and b = t × n.
func IsOrthonormal(t, n, b mgl64.Vec3) bool {
	if !IsUnit(t) || !IsUnit(n) || !IsUnit(b) {
		tracer().Debugf("frame not normalized: |t|=%g |n|=%g |b|=%g", t.Len(), n.Len(), b.Len())
		return false
	}
	if !Orthogonal(t, n) || !Orthogonal(t, b) || !Orthogonal(n, b) {
		tracer().Debugf("frame not orthogonal: t·n=%g t·b=%g n·b=%g", t.Dot(n), t.Dot(b), n.Dot(b))
		return false
	}
	return t.Cross(n).Sub(b).Len() <= FrameTolerance
}

// ProjectXY drops the z-coordinate of v.
func ProjectXY(v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{v[0], v[1]}
}

// IsPlanarXY is a predicate: do all points share the same z-coordinate?
func IsPlanarXY(pts []mgl64.Vec3) bool {
	for _, p := range pts {
		if !Is0(p[2] - pts[0][2]) {
			return false
		}
	}
	return true
}
