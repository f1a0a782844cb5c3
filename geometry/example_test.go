package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/auxil/geometry"
)

// ExampleCircle_IntersectsRect runs a projectile-versus-wall check.
func ExampleCircle_IntersectsRect() {
	bullet := geometry.Circle{X: 12, Y: 3, R: 2}
	wall := geometry.Rect{Left: 13, Top: 0, Right: 15, Bottom: 20}

	fmt.Println(bullet.IntersectsRect(wall))
	fmt.Println(bullet.ContainsPoint(13, 3))
	// Output:
	// true
	// true
}

// ExampleRect_Intersects checks two axis-aligned hitboxes.
func ExampleRect_Intersects() {
	a := geometry.Rect{Left: 0, Top: 0, Right: 4, Bottom: 4}
	b := geometry.Rect{Left: 3, Top: 3, Right: 7, Bottom: 7}
	c := geometry.Rect{Left: 4, Top: 0, Right: 8, Bottom: 4}

	fmt.Println(a.Intersects(b))
	fmt.Println(a.Intersects(c))
	// Output:
	// true
	// false
}
