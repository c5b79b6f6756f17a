package geom

import "fmt"

// Rect is an axis-aligned rectangle in pixel coordinates with a
// top-left origin.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Bottom converts the rectangle's vertical position to a bottom-left
// origin coordinate system of the given page height. The page
// description and command stream formats both place the origin at the
// bottom-left corner.
func (r Rect) Bottom(pageHeight int) int { return pageHeight - r.Y - r.H }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
