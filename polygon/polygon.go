// Package polygon deals with planar polygons, mostly control polygons of
// curves projected onto the xy-plane.
//
// Clipping and point containment is done by package polyclip
// (github.com/akavel/polyclip-go), an implementation of the
// Martinez-Rueda-Feito polygon clipping algorithm.
package polygon

import (
	"fmt"
	"math"
	"sort"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sweep"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a closed (cyclic) or open sequence of knots in the plane.
// To construct a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(mgl64.Vec2{0, 0}).Knot(mgl64.Vec2{1, 3}).Knot(mgl64.Vec2{3, 0}).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p mgl64.Vec2) *Polygon {
	pg.contour.Add(polyclip.Point{X: p[0], Y: p[1]})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() < 3 {
		panic("cannot close polygon with less than 3 knots")
	}
	pg.cycle = true
	return pg
}

// Box creates a closed rectangle from two opposite corners.
func Box(a, b mgl64.Vec2) *Polygon {
	minx, maxx := math.Min(a[0], b[0]), math.Max(a[0], b[0])
	miny, maxy := math.Min(a[1], b[1]), math.Max(a[1], b[1])
	return NullPolygon().Knot(mgl64.Vec2{minx, miny}).Knot(mgl64.Vec2{maxx, miny}).
		Knot(mgl64.Vec2{maxx, maxy}).Knot(mgl64.Vec2{minx, maxy}).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i (mod N).
func (pg *Polygon) Pt(i int) mgl64.Vec2 {
	p := pg.contour[i%pg.N()]
	return mgl64.Vec2{p.X, p.Y}
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned rectangle enclosing the polygon.
func (pg *Polygon) BoundingBox() (mgl64.Vec2, mgl64.Vec2) {
	r := pg.contour.BoundingBox()
	return mgl64.Vec2{r.Min.X, r.Min.Y}, mgl64.Vec2{r.Max.X, r.Max.Y}
}

// Contains checks if a point lies inside a closed polygon. Open polygons
// contain nothing.
func (pg *Polygon) Contains(p mgl64.Vec2) bool {
	if !pg.cycle {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p[0], Y: p[1]})
}

// ContainsStrictly checks if a point lies inside a closed polygon and not
// on (or within Epsilon of) its boundary.
func (pg *Polygon) ContainsStrictly(p mgl64.Vec2) bool {
	if !pg.Contains(p) {
		return false
	}
	for i := 0; i < pg.N(); i++ {
		if d := edgeDistance(pg.Pt(i), pg.Pt(i+1), p); d <= sweep.Epsilon {
			L().Debugf("point %v is %g off edge %d", p, d, i)
			return false
		}
	}
	return true
}

// Covers checks if a point lies inside a closed polygon or on its boundary.
func (pg *Polygon) Covers(p mgl64.Vec2) bool {
	if !pg.cycle {
		return false
	}
	if pg.Contains(p) {
		return true
	}
	for i := 0; i < pg.N(); i++ {
		if edgeDistance(pg.Pt(i), pg.Pt(i+1), p) <= sweep.Epsilon {
			return true
		}
	}
	return false
}

// Intersects checks if two closed polygons overlap in a region of
// non-zero area.
func (pg *Polygon) Intersects(other *Polygon) bool {
	if !pg.cycle || !other.cycle {
		return false
	}
	subject := polyclip.Polygon{pg.contour}
	clipping := polyclip.Polygon{other.contour}
	isect := subject.Construct(polyclip.INTERSECTION, clipping)
	return len(isect) > 0
}

// ConvexHull returns the convex hull of a set of points as a closed
// polygon with counter-clockwise orientation. Collinear points on the hull
// boundary are dropped. At least 3 non-collinear points are required.
func ConvexHull(pts []mgl64.Vec2) (*Polygon, error) {
	sorted := make([]mgl64.Vec2, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})
	// Andrew's monotone chain
	hull := make([]mgl64.Vec2, 0, 2*len(sorted))
	for _, p := range sorted { // lower hull
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= sweep.Epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- { // upper hull
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= sweep.Epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	if len(hull) > 0 {
		hull = hull[:len(hull)-1] // last point repeats first one
	}
	if len(hull) < 3 {
		return nil, fmt.Errorf("convex hull of %d points is degenerate", len(pts))
	}
	pg := NullPolygon()
	for _, p := range hull {
		pg.Knot(p)
	}
	return pg.Cycle(), nil
}

// AsString returns a polygon in path notation, e.g. "(0,0) -- (1,3) -- cycle".
func AsString(pg *Polygon) string {
	var s string
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			s += " -- "
		}
		p := pg.Pt(i)
		s += fmt.Sprintf("(%.4g,%.4g)", p[0], p[1])
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

// cross product of (b-a) and (c-a); positive for a left turn a → b → c.
func cross(a, b, c mgl64.Vec2) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// distance of p from the line segment a–b.
func edgeDistance(a, b, p mgl64.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return p.Sub(a.Add(ab.Mul(t))).Len()
}
