package sweep

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected a to be zapped to 0, is %g", Zap(a))
	}
	if !Is1(1.00000001) {
		t.Errorf("Expected 1.00000001 to be one, is not")
	}
	if r := Round(0.123456789); math.Abs(r-0.1234568) > 1e-12 {
		t.Errorf("Expected 0.123456789 to round to 0.1234568, is %g", r)
	}
	if r := Round(-3e-8); r != 0 {
		t.Errorf("Expected -3e-8 to round to 0, is %g", r)
	}
}

func TestApprox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Approx(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3.00001}) {
		t.Errorf("Expected points to be approximately equal")
	}
	if Approx(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3.001}) {
		t.Errorf("Expected points to differ")
	}
}

func TestOrthonormal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y, z := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}
	if !IsOrthonormal(x, y, z) {
		t.Errorf("Expected (x,y,z) to be right-handed orthonormal")
	}
	if IsOrthonormal(x, z, y) {
		t.Errorf("Expected (x,z,y) to be rejected as left-handed")
	}
	if IsOrthonormal(x.Mul(2), y, z) {
		t.Errorf("Expected non-unit tangent to be rejected")
	}
	// b = t × n holds within FrameTolerance, even for components near 0
	if b := z.Add(mgl64.Vec3{1e-7, 0, 0}); !IsOrthonormal(x, y, b) {
		t.Errorf("Expected binormal %v to be accepted as x × y", b)
	}
	if b := z.Add(mgl64.Vec3{1e-4, 0, 0}); IsOrthonormal(x, y, b) {
		t.Errorf("Expected binormal %v to be rejected", b)
	}
}

func TestPlanar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []mgl64.Vec3{{0, 0, 1}, {1, 2, 1}, {3, 1, 1}}
	if !IsPlanarXY(pts) {
		t.Errorf("Expected points to lie in plane z=1")
	}
	pts = append(pts, mgl64.Vec3{0, 0, 2})
	if IsPlanarXY(pts) {
		t.Errorf("Expected points not to be planar")
	}
	if p := ProjectXY(pts[1]); p != (mgl64.Vec2{1, 2}) {
		t.Errorf("Expected projection (1,2), is %v", p)
	}
}
