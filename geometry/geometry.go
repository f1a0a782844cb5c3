package geometry

import "github.com/katalvlaran/auxil/numkit"

// Circle is a disc centered at (X, Y) with radius R.
type Circle struct {
	// X, Y locate the center.
	X, Y float64

	// R is the radius. Non-positive R makes an empty circle.
	R float64
}

// Rect is an axis-aligned rectangle in screen coordinates
// (Left <= Right, Top <= Bottom, Y growing downward).
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ContainsPoint reports whether (x, y) lies strictly inside the circle.
func (c Circle) ContainsPoint(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y

	return dx*dx+dy*dy < c.R*c.R
}

// IntersectsRect reports whether the circle overlaps r.
// The center is clamped into r to find the rectangle's closest point;
// the circle overlaps iff that point is strictly inside it.
func (c Circle) IntersectsRect(r Rect) bool {
	closestX := numkit.Clamp(c.X, min(r.Left, r.Right), max(r.Left, r.Right))
	closestY := numkit.Clamp(c.Y, min(r.Top, r.Bottom), max(r.Top, r.Bottom))

	return c.ContainsPoint(closestX, closestY)
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// ContainsPoint reports whether (x, y) lies strictly inside r.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.Left && x < r.Right && y > r.Top && y < r.Bottom
}

// Intersects reports whether r and other overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}
