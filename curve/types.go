package curve

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}

var (
	// ErrTooFewControlPoints indicates a control point sequence shorter than 4.
	ErrTooFewControlPoints = errors.New("curve needs at least 4 control points")
	// ErrBezierChainLength indicates a Bézier chain not of length 3n+1.
	ErrBezierChainLength = errors.New("chain of Bézier segments must consist of 3n+1 control points")
	// ErrInvalidSteps indicates a sampling density below 1.
	ErrInvalidSteps = errors.New("steps per segment must be at least 1")
	// ErrInvalidRadius indicates a circle radius which is not positive.
	ErrInvalidRadius = errors.New("radius must be positive")
	// ErrDegenerateTangent indicates a vanishing derivative, e.g. from coincident control points.
	ErrDegenerateTangent = errors.New("curve has degenerate tangent")
	// ErrDegenerateFrame indicates that the previous binormal became parallel to the tangent.
	ErrDegenerateFrame = errors.New("cannot propagate frame")
)

// Sample is a point on a curve together with its coordinate frame.
//
// {T, N, B} is a right-handed orthonormal basis, i.e. B = T × N.
type Sample struct {
	V mgl64.Vec3 // position
	T mgl64.Vec3 // unit tangent
	N mgl64.Vec3 // unit normal
	B mgl64.Vec3 // unit binormal
}

// Curve is a sequence of samples, in increasing parameter order.
type Curve []Sample

// Positions returns the positions of all samples, suitable as the vertices
// of a line strip.
func (c Curve) Positions() []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, len(c))
	for i, s := range c {
		pts[i] = s.V
	}
	return pts
}

// Segment is a straight line between two points.
type Segment struct {
	From, To mgl64.Vec3
}
