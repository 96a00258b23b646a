// Package layout packs cards into a masonry grid and tracks drag-to-reorder
// gestures against it.
package layout

import (
	"math"
	"strconv"
	"strings"
)

const epsilon = 0.001

// Point is a pointer position in container coordinates
type Point struct {
	X, Y float64
}

// Distance returns the straight-line distance between two points
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rect is an axis-aligned rectangle in container coordinates
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns the rectangle's area
func (r Rect) Area() float64 { return r.W * r.H }

// Translate returns the rectangle moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether two rectangles share a non-empty area
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right()-epsilon && r.Right() > o.X+epsilon &&
		r.Y < o.Bottom()-epsilon && r.Bottom() > o.Y+epsilon
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-epsilon && o.Y >= r.Y-epsilon &&
		o.Right() <= r.Right()+epsilon && o.Bottom() <= r.Bottom()+epsilon
}

// Overlap returns the area shared by two rectangles
func (r Rect) Overlap(o Rect) float64 {
	w := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	h := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Viewport is the browser window size reported by the client
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Columns returns the number of grid columns shown at this width
func (v Viewport) Columns() int {
	switch {
	case v.Width <= 640:
		return 1
	case v.Width <= 1024:
		return 2
	default:
		return 4
	}
}

// Span is a card's footprint in grid cells
type Span struct {
	Cols int
	Rows int
}

// ParseSpan reads a "col-span-N row-span-M" class list. Missing or
// malformed parts default to 1.
func ParseSpan(s string) Span {
	span := Span{Cols: 1, Rows: 1}
	for _, field := range strings.Fields(s) {
		var target *int
		var rest string
		switch {
		case strings.HasPrefix(field, "col-span-"):
			target, rest = &span.Cols, strings.TrimPrefix(field, "col-span-")
		case strings.HasPrefix(field, "row-span-"):
			target, rest = &span.Rows, strings.TrimPrefix(field, "row-span-")
		default:
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			*target = n
		}
	}
	return span
}

// Box is one card handed to the packer. Its size is derived from Span
// unless Width and Height are both set, which fixes it in pixels.
type Box struct {
	ID     string
	Span   Span
	Width  float64
	Height float64
}

// Fixed reports whether the box has a fixed pixel size
func (b Box) Fixed() bool {
	return b.Width > 0 && b.Height > 0
}
