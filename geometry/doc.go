// Package geometry provides axis-aligned collision primitives for 2D
// application code: circles, rectangles, and the point / overlap tests
// between them.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/geometry"
//
//	c := geometry.Circle{X: 0, Y: 0, R: 5}
//	r := geometry.Rect{Left: 3, Top: -1, Right: 10, Bottom: 1}
//
//	c.ContainsPoint(3, 4)   // false (boundary is exclusive)
//	c.IntersectsRect(r)     // true
//	r.Intersects(geometry.Rect{Left: 9, Top: 0, Right: 12, Bottom: 2}) // true
//
// Conventions:
//   - Y grows downward (screen coordinates): Top <= Bottom.
//   - Containment is strict; points exactly on a boundary are outside.
//   - The circle/rectangle test clamps the circle center into the
//     rectangle and tests the closest point, the standard
//     closest-point-on-AABB technique.
//
// All types are plain value structs; the zero Rect and zero Circle are
// degenerate (empty) shapes that contain nothing.
package geometry
