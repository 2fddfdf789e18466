package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/sweep"
	"github.com/npillmayer/sweep/curve"
	"github.com/npillmayer/sweep/polygon"
)

// HullCheck is the outcome of checking a sampled curve against the convex
// hull of its control points.
type HullCheck int

// Possible hull checks. Hulls are checked for curves in a plane z = const
// with non-collinear control points only.
const (
	HullUnchecked HullCheck = iota
	HullInside
	HullOutside
)

func (h HullCheck) String() string {
	switch h {
	case HullInside:
		return "inside"
	case HullOutside:
		return "outside"
	}
	return "unchecked"
}

// Result is an evaluated curve of a scene.
type Result struct {
	Name  string
	Kind  Kind
	Curve curve.Curve
	Hull  HullCheck
}

// Evaluate samples all curves of the scene, in order. It stops at the
// first curve which cannot be evaluated.
func (s *Scene) Evaluate() ([]Result, error) {
	results := make([]Result, 0, len(s.Curves))
	for i, def := range s.Curves {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("curve%d", i)
		}
		c, hull, err := s.evaluate(def)
		if err != nil {
			tracer().Errorf("curve %q: %v", name, err)
			return nil, fmt.Errorf("curve %q: %w", name, err)
		}
		tracer().Infof("curve %q (%s): %d samples, hull %s", name, def.Kind, len(c), hull)
		results = append(results, Result{Name: name, Kind: def.Kind, Curve: c, Hull: hull})
	}
	return results, nil
}

func (s *Scene) evaluate(def CurveDef) (curve.Curve, HullCheck, error) {
	steps := s.StepsFor(def)
	if def.Kind == Circle {
		radius := def.Radius
		if radius == 0 {
			radius = 1
		}
		c, err := curve.EvalCircle(radius, steps)
		return c, HullUnchecked, err
	}
	pts, err := def.ControlPoints()
	if err != nil {
		return nil, HullUnchecked, err
	}
	var c curve.Curve
	switch def.Kind {
	case Bezier:
		c, err = curve.EvalBezier(pts, steps)
	case BSpline:
		c, err = curve.EvalBSpline(pts, steps)
	default:
		return nil, HullUnchecked, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}
	if err != nil {
		return nil, HullUnchecked, err
	}
	return c, checkHull(pts, c), nil
}

// checkHull tests if all samples of a planar curve lie within the convex
// hull of its control points.
func checkHull(pts []mgl64.Vec3, c curve.Curve) HullCheck {
	if !sweep.IsPlanarXY(pts) {
		return HullUnchecked
	}
	proj := make([]mgl64.Vec2, len(pts))
	for i, p := range pts {
		proj[i] = sweep.ProjectXY(p)
	}
	hull, err := polygon.ConvexHull(proj)
	if err != nil {
		tracer().Debugf("no hull check: %v", err)
		return HullUnchecked
	}
	for _, s := range c {
		if !hull.Covers(sweep.ProjectXY(s.V)) {
			return HullOutside
		}
	}
	return HullInside
}
