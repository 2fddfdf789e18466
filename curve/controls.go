package curve

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Controls is a sequence of control points. Start with Nullpath(), which
// creates an empty sequence, and then extend it:
//
//	c := Nullpath().Point(mgl64.Vec3{0, 0, 0}).Point(mgl64.Vec3{1, 2, 0}).
//		Point(mgl64.Vec3{3, 2, 0}).Point(mgl64.Vec3{4, 0, 0})
//	curve, err := c.Bezier(8)
//
// The same sequence may be interpreted as a Bézier chain or as a B-spline.
type Controls struct {
	points []mgl64.Vec3
}

// Nullpath creates an empty control point sequence.
func Nullpath() *Controls {
	return &Controls{}
}

// ControlsOf wraps an existing slice of points. The slice is copied.
func ControlsOf(pts []mgl64.Vec3) *Controls {
	c := &Controls{points: make([]mgl64.Vec3, len(pts))}
	copy(c.points, pts)
	return c
}

// Point appends a control point. Part of builder functionality.
func (c *Controls) Point(p mgl64.Vec3) *Controls {
	c.points = append(c.points, p)
	return c
}

// XYZ appends a control point given by its coordinates.
// Part of builder functionality.
func (c *Controls) XYZ(x, y, z float64) *Controls {
	return c.Point(mgl64.Vec3{x, y, z})
}

// N returns the number of control points.
func (c *Controls) N() int {
	return len(c.points)
}

// Z returns control point i.
func (c *Controls) Z(i int) mgl64.Vec3 {
	return c.points[i]
}

// Points returns a copy of the control points.
func (c *Controls) Points() []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, len(c.points))
	copy(pts, c.points)
	return pts
}

// Bezier evaluates the sequence as a chain of cubic Bézier segments.
func (c *Controls) Bezier(steps int) (Curve, error) {
	return EvalBezier(c.points, steps)
}

// BSpline evaluates the sequence as a uniform cubic B-spline.
func (c *Controls) BSpline(steps int) (Curve, error) {
	return EvalBSpline(c.points, steps)
}

// String returns the control points in path notation, e.g.
// "(0,0,0) .. (1,2,0) .. (3,2,0)".
func (c *Controls) String() string {
	var s string
	for i, p := range c.points {
		if i > 0 {
			s += " .. "
		}
		s += ptstring(p)
	}
	return s
}

// AsString returns a curve as a (debugging) string, one sample per line.
//
//	V=(2,0,0) T=(0,1,0) N=(-1,0,0) B=(0,0,1)
func AsString(c Curve) string {
	var s string
	for i, smp := range c {
		if i > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("V=%s T=%s N=%s B=%s", ptstring(smp.V), ptstring(smp.T),
			ptstring(smp.N), ptstring(smp.B))
	}
	return s
}

func ptstring(p mgl64.Vec3) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p[0]), round(p[1]), round(p[2]))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
