package layout

import (
	"math"
	"strings"
	"time"
)

// Element is the part of the DOM the drag predicate looks at: the pointer
// target and its ancestors up to the grid item.
type Element struct {
	Tag     string
	Classes []string
	Parent  *Element
}

// Chain links a target-first list of nodes into an Element tree and
// returns the target
func Chain(nodes []Element) *Element {
	if len(nodes) == 0 {
		return nil
	}
	chain := make([]Element, len(nodes))
	copy(chain, nodes)
	for i := 0; i < len(chain)-1; i++ {
		chain[i].Parent = &chain[i+1]
	}
	chain[len(chain)-1].Parent = nil
	return &chain[0]
}

// HasClass reports whether the element carries a CSS class
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Is reports whether the element has the given tag name
func (e *Element) Is(tag string) bool {
	return strings.EqualFold(e.Tag, tag)
}

// Closest returns the element itself or its nearest ancestor that matches
func (e *Element) Closest(match func(*Element) bool) *Element {
	for el := e; el != nil; el = el.Parent {
		if match(el) {
			return el
		}
	}
	return nil
}

// ClosestClass is Closest for a single CSS class
func (e *Element) ClosestClass(class string) *Element {
	return e.Closest(func(el *Element) bool { return el.HasClass(class) })
}

const (
	ClassNoDrag     = "no-drag"
	ClassDragHandle = "drag-handle"
)

// interactiveTags never start a drag, so they keep working as controls
var interactiveTags = []string{"input", "textarea", "button", "select", "label", "iframe"}

func isInteractive(el *Element) bool {
	for _, tag := range interactiveTags {
		if el.Is(tag) {
			return true
		}
	}
	return false
}

// StartDecision is the drag predicate's verdict for a pointer-down
type StartDecision struct {
	Allow    bool
	Distance float64
	Delay    time.Duration
}

// Immediate reports whether the drag starts on the pointer-down itself
func (d StartDecision) Immediate() bool {
	return d.Allow && d.Distance <= 0 && d.Delay <= 0
}

// Rejected is the decision for gestures that must stay plain clicks
var Rejected = StartDecision{Allow: false, Distance: math.Inf(1)}

// DragStartPredicate decides how a pointer-down on target may start a drag.
// Controls, iframes and anything inside .no-drag never drag. Inside a
// .drag-handle the drag starts at once. Anywhere else the pointer has to
// travel more than DefaultDistance first, which leaves short clicks to
// the card's own link.
func (o Options) DragStartPredicate(target *Element) StartDecision {
	if target == nil {
		return Rejected
	}
	if target.ClosestClass(ClassNoDrag) != nil || target.Closest(isInteractive) != nil {
		return Rejected
	}
	if target.ClosestClass(ClassDragHandle) != nil {
		return StartDecision{Allow: true, Distance: o.HandleDistance, Delay: 0}
	}
	return StartDecision{Allow: true, Distance: o.DefaultDistance, Delay: o.StartDelay}
}
