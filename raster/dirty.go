package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/npillmayer/inkpad"
)

// DirtyRect is the region touched since the last reset. Coordinates are
// positions of stamp centers; the radius of the stamps is not included.
type DirtyRect struct {
	Left, Top, Right, Bottom float64
}

// Reset collapses the rectangle onto (x,y).
func (r *DirtyRect) Reset(x, y float64) {
	r.Left, r.Right = x, x
	r.Top, r.Bottom = y, y
}

// Span resets the rectangle to the smallest one containing a and b.
func (r *DirtyRect) Span(a, b inkpad.Pair) {
	r.Reset(a.X(), a.Y())
	r.Expand(b.X(), b.Y())
}

// Expand grows the rectangle to include (x,y).
func (r *DirtyRect) Expand(x, y float64) {
	r.Left = math.Min(r.Left, x)
	r.Right = math.Max(r.Right, x)
	r.Top = math.Min(r.Top, y)
	r.Bottom = math.Max(r.Bottom, y)
}

// Contains is a predicate: is (x,y) inside the rectangle, borders included?
func (r DirtyRect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Padded returns the pixel rectangle covering r grown by pad on every side.
// Callers pass the maximum stroke width to account for the stamp radius.
func (r DirtyRect) Padded(pad float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left-pad)), int(math.Floor(r.Top-pad)),
		int(math.Ceil(r.Right+pad)), int(math.Ceil(r.Bottom+pad)),
	)
}

func (r DirtyRect) String() string {
	return fmt.Sprintf("[%g,%g .. %g,%g]", r.Left, r.Top, r.Right, r.Bottom)
}
