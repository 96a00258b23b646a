package layout

import "time"

// Options configures a masonry grid
type Options struct {
	FillGaps   bool
	Horizontal bool

	// MobileBreakpoint is the widest viewport that still counts as mobile;
	// dragging is disabled at or below it.
	MobileBreakpoint float64
	RowHeight        float64

	HandleDistance  float64
	DefaultDistance float64
	StartDelay      time.Duration

	SortThreshold float64
	SortAction    string

	DragReleaseDuration time.Duration
	DragReleaseEasing   string
	LayoutDuration      time.Duration
	LayoutEasing        string

	// DragSettleDelay is how long after a drag ends the grid is re-laid out
	DragSettleDelay time.Duration
}

// DefaultOptions returns the grid configuration used by the site
func DefaultOptions() Options {
	return Options{
		FillGaps:            true,
		Horizontal:          false,
		MobileBreakpoint:    640,
		RowHeight:           200,
		HandleDistance:      0,
		DefaultDistance:     10,
		StartDelay:          0,
		SortThreshold:       50,
		SortAction:          "move",
		DragReleaseDuration: 400 * time.Millisecond,
		DragReleaseEasing:   "ease-out",
		LayoutDuration:      300 * time.Millisecond,
		LayoutEasing:        "ease-out",
		DragSettleDelay:     100 * time.Millisecond,
	}
}

// IsMobile reports whether drag should be disabled for the viewport
func (o Options) IsMobile(v Viewport) bool {
	return v.Width <= o.MobileBreakpoint
}

// BoxSize returns the outer size of a box in a container of the given width
func (o Options) BoxSize(b Box, containerWidth float64) (float64, float64) {
	if b.Fixed() {
		return b.Width, b.Height
	}
	cols := Viewport{Width: containerWidth}.Columns()
	unit := containerWidth / float64(cols)
	spanCols := b.Span.Cols
	if spanCols < 1 {
		spanCols = 1
	}
	if spanCols > cols {
		spanCols = cols
	}
	rows := b.Span.Rows
	if rows < 1 {
		rows = 1
	}
	return unit * float64(spanCols), o.RowHeight * float64(rows)
}
