package layout

import (
	"math"
	"sort"
)

// Packing is the result of one layout pass
type Packing struct {
	Positions map[string]Rect `json:"positions"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
}

// Pack places boxes, in order, into a container of the given width that
// grows downwards. Each box takes the top-most, then left-most free slot
// it fits in. With fillGaps set every free slot is searched, so a later
// small box may drop into a hole left above earlier boxes; otherwise slots
// that lie before the last placed box are discarded.
func Pack(opts Options, width float64, boxes []Box) Packing {
	packing := Packing{
		Positions: make(map[string]Rect, len(boxes)),
		Width:     width,
	}
	slots := []Rect{{X: 0, Y: 0, W: width, H: math.Inf(1)}}

	for _, b := range boxes {
		w, h := opts.BoxSize(b, width)
		rect := Rect{W: w, H: h}

		placed := false
		for _, s := range slots {
			if rect.W <= s.W+epsilon && rect.H <= s.H+epsilon {
				rect.X, rect.Y = s.X, s.Y
				placed = true
				break
			}
		}
		if !placed {
			// wider than the container: start a new row below everything
			rect.X, rect.Y = 0, packing.Height
		}

		packing.Positions[b.ID] = rect
		packing.Height = math.Max(packing.Height, rect.Bottom())

		slots = splitSlots(slots, rect)
		if !opts.FillGaps {
			slots = dropSlotsBefore(slots, rect)
		}
		slots = purgeSlots(slots)
	}

	return packing
}

// splitSlots carves rect out of every slot it overlaps
func splitSlots(slots []Rect, rect Rect) []Rect {
	next := make([]Rect, 0, len(slots)+4)
	for _, s := range slots {
		if !s.Intersects(rect) {
			next = append(next, s)
			continue
		}
		if rect.X > s.X+epsilon {
			next = append(next, Rect{X: s.X, Y: s.Y, W: rect.X - s.X, H: s.H})
		}
		if rect.Right() < s.Right()-epsilon {
			next = append(next, Rect{X: rect.Right(), Y: s.Y, W: s.Right() - rect.Right(), H: s.H})
		}
		if rect.Y > s.Y+epsilon {
			next = append(next, Rect{X: s.X, Y: s.Y, W: s.W, H: rect.Y - s.Y})
		}
		if rect.Bottom() < s.Bottom()-epsilon {
			next = append(next, Rect{X: s.X, Y: rect.Bottom(), W: s.W, H: s.Bottom() - rect.Bottom()})
		}
	}
	return next
}

func dropSlotsBefore(slots []Rect, rect Rect) []Rect {
	next := slots[:0]
	for _, s := range slots {
		if s.Y < rect.Y-epsilon || (math.Abs(s.Y-rect.Y) <= epsilon && s.X < rect.X-epsilon) {
			continue
		}
		next = append(next, s)
	}
	return next
}

// purgeSlots drops empty slots and slots contained in another slot, then
// orders the rest top-to-bottom, left-to-right
func purgeSlots(slots []Rect) []Rect {
	next := make([]Rect, 0, len(slots))
	for i, s := range slots {
		if s.W <= epsilon || s.H <= epsilon {
			continue
		}
		redundant := false
		for j, o := range slots {
			if i == j || o.W <= epsilon || o.H <= epsilon {
				continue
			}
			// of two identical slots keep the first
			if o.Contains(s) && (!s.Contains(o) || j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			next = append(next, s)
		}
	}
	sort.SliceStable(next, func(a, b int) bool {
		if math.Abs(next[a].Y-next[b].Y) > epsilon {
			return next[a].Y < next[b].Y
		}
		return next[a].X < next[b].X
	})
	return next
}
