package curve

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Frame returns the homogeneous transform of a sample: columns N, B, T
// (the rotation) and V (the translation). It maps the local gizmo axes
// x, y, z onto N, B, T, placed at V.
func (s Sample) Frame() mgl64.Mat4 {
	return mgl64.Mat4FromCols(s.N.Vec4(0), s.B.Vec4(0), s.T.Vec4(0), s.V.Vec4(1))
}

// FrameAxes returns the three axes of a frame gizmo of the given size, in
// the order x (N), y (B), z (T). Renderers conventionally draw them in red,
// green and blue.
func FrameAxes(s Sample, size float64) [3]Segment {
	M := s.Frame().Mul4(mgl64.Scale3D(size, size, size))
	origin := M.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	var axes [3]Segment
	for i := 0; i < 3; i++ {
		var unit mgl64.Vec4
		unit[i], unit[3] = 1, 1
		axes[i] = Segment{From: origin, To: M.Mul4x1(unit).Vec3()}
	}
	return axes
}

// Gizmos collects the frame axes of all samples of a curve. For size 0 no
// gizmos are produced.
func (c Curve) Gizmos(size float64) []Segment {
	if size == 0 {
		return nil
	}
	segs := make([]Segment, 0, 3*len(c))
	for _, s := range c {
		axes := FrameAxes(s, size)
		segs = append(segs, axes[:]...)
	}
	return segs
}
