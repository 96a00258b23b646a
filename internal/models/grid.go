package models

import "tahiru.dev/internal/layout"

// Grid event types accepted by a grid session
const (
	GridEventResize            = layout.WindowResize
	GridEventOrientationChange = layout.WindowOrientationChange
	GridEventPointerDown       = "pointerdown"
	GridEventPointerMove       = "pointermove"
	GridEventPointerUp         = "pointerup"
	GridEventCarousel          = "carousel"
)

// Carousel actions
const (
	CarouselTick   = "tick"
	CarouselNext   = "next"
	CarouselPrev   = "prev"
	CarouselSelect = "select"
)

// GridViewport is the browser window size
type GridViewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TargetNode is one element on the path from the pointer target up to the
// card root, target first
type TargetNode struct {
	Tag     string   `json:"tag"`
	Classes []string `json:"classes,omitempty"`
}

// GridOpenRequest opens a grid session
type GridOpenRequest struct {
	Viewport GridViewport `json:"viewport"`
}

// GridEvent is one browser event forwarded to a session
type GridEvent struct {
	Type     string        `json:"type"`
	Viewport *GridViewport `json:"viewport,omitempty"`
	ItemID   string        `json:"itemId,omitempty"`
	Target   []TargetNode  `json:"target,omitempty"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	// carousel events
	Action string `json:"action,omitempty"`
	Index  int    `json:"index,omitempty"`
}

// GridSnapshot is the state returned to the browser after every call
type GridSnapshot struct {
	Handle    string           `json:"handle"`
	Grid      layout.GridState `json:"grid"`
	Carousels map[string]int   `json:"carousels,omitempty"`
}

// GridEventResult is the response to a dispatched event
type GridEventResult struct {
	Outcome string `json:"outcome"`
	// Open is a link the browser should open in a new tab
	Open string `json:"open,omitempty"`
	GridSnapshot
}
