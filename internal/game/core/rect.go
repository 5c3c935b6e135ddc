package core

import "fmt"

// Rect is an axis aligned rectangle. Like the island hull it describes, its
// far edge is inclusive: a Rect covers X..X+W and Y..Y+H.
type Rect[T Unsigned] struct {
	X, Y T
	W, H T
}

// NewRect creates a rectangle from its origin and extent
func NewRect[T Unsigned](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return p.X >= r.X && p.X-r.X <= r.W &&
		p.Y >= r.Y && p.Y-r.Y <= r.H
}

// Intersects reports whether two rectangles overlap or touch.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return !(r.X > other.X && r.X-other.X > other.W ||
		other.X > r.X && other.X-r.X > r.W ||
		r.Y > other.Y && r.Y-other.Y > other.H ||
		other.Y > r.Y && other.Y-r.Y > r.H)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

// retain drops every point outside r. A nil rectangle keeps everything.
func (r *Rect[T]) retain(points []Vec2[T]) []Vec2[T] {
	if r == nil {
		return points
	}
	kept := points[:0]
	for _, p := range points {
		if r.Contains(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
