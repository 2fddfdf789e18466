// Package curve evaluates piecewise cubic curves into sampled point
// sequences with attached coordinate frames.
/*

Three generators are provided:

   EvalBezier    a chain of cubic Bézier segments, given 3n+1 control points
   EvalBSpline   a uniform cubic B-spline, given 4 or more control points
   EvalCircle    a closed circle in the xy-plane, computed in closed form

Every sample of a curve carries its position V and a right-handed
orthonormal frame {T, N, B}. T is the unit tangent. N and B are not the
classical Frenet normal and binormal (which flip at inflection points and
vanish on straight pieces) but are propagated from sample to sample:

   N.i = normalize(B.(i-1) × T.i)
   B.i = normalize(T.i × N.i)

Propagation runs across segment boundaries, so a chain of segments gets a
frame without twists at its joints. The very first frame is seeded from an
arbitrary reference vector not nearly parallel to the first tangent.

B-splines are evaluated by converting the whole control point sequence into
one equivalent Bézier chain with a basis change matrix

   M.bspline · M.bezier^-1

and evaluating that chain in a single call, which keeps frame propagation
continuous over the complete spline.

Usage

   curve, err := Nullpath().Point(mgl64.Vec3{0,0,0}).Point(mgl64.Vec3{1,1,0}).
      Point(mgl64.Vec3{2,1,0}).Point(mgl64.Vec3{3,0,0}).Bezier(16)

A sample converts to a 4×4 homogeneous transform with columns N, B, T, V
(see Sample.Frame), which renderers may use to draw frame gizmos or to
place a sweep profile.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve
