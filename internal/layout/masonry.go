package layout

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Engine events
const (
	EventDragStart = "dragStart"
	EventDragEnd   = "dragEnd"
	EventLayoutEnd = "layoutEnd"
)

// Outcome classifies what a pointer event did
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePending
	OutcomeDragStart
	OutcomeDragMove
	OutcomeDragEnd
	OutcomeClick
)

var outcomeNames = [...]string{"none", "pending", "dragstart", "dragmove", "dragend", "click"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// PointerResult reports the effect of a pointer event on the grid
type PointerResult struct {
	Outcome Outcome
	ItemID  string
	Target  *Element
	// Held is how long the pointer was down, set on release
	Held time.Duration
}

// GridState is a snapshot of the grid
type GridState struct {
	Order       []string        `json:"order"`
	Positions   map[string]Rect `json:"positions"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Dragging    bool            `json:"dragging"`
	DraggingID  string          `json:"draggingId,omitempty"`
	DragEnabled bool            `json:"dragEnabled"`
	LastLayout  time.Time       `json:"lastLayout"`
}

type dragPhase int

const (
	phaseIdle dragPhase = iota
	phasePending
	phaseDragging
)

// dragSession is one pointer-down to pointer-up gesture
type dragSession struct {
	phase    dragPhase
	itemID   string
	target   *Element
	origin   Point
	pressed  time.Time
	decision StartDecision
	start    Rect
	current  Rect
}

// Masonry is the layout engine: it owns item order, sizes and the current
// drag gesture. It is not safe for concurrent use; Adapter serializes
// access to it.
type Masonry struct {
	opts     Options
	clock    clockwork.Clock
	viewport Viewport

	order   []string
	boxes   map[string]Box
	packing Packing

	dragEnabled bool
	drag        dragSession
	lastLayout  time.Time

	listeners map[string]map[int]func()
	nextID    int
	destroyed bool
}

// EngineConfig is what a Loader needs to build an engine
type EngineConfig struct {
	Options  Options
	Boxes    []Box
	Viewport Viewport
	Clock    clockwork.Clock
}

// NewMasonry creates an engine over the boxes in their given order. No
// layout is computed until Layout is called.
func NewMasonry(cfg EngineConfig) *Masonry {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	m := &Masonry{
		opts:      cfg.Options,
		clock:     clock,
		viewport:  cfg.Viewport,
		boxes:     make(map[string]Box, len(cfg.Boxes)),
		listeners: make(map[string]map[int]func()),
	}
	for _, b := range cfg.Boxes {
		if _, dup := m.boxes[b.ID]; dup {
			continue
		}
		m.order = append(m.order, b.ID)
		m.boxes[b.ID] = b
	}
	m.dragEnabled = !m.opts.IsMobile(cfg.Viewport)
	return m
}

// On registers fn for an engine event and returns a function removing it
func (m *Masonry) On(event string, fn func()) func() {
	if m.listeners[event] == nil {
		m.listeners[event] = make(map[int]func())
	}
	id := m.nextID
	m.nextID++
	m.listeners[event][id] = fn
	return func() { delete(m.listeners[event], id) }
}

// ListenerCount returns the number of registered engine listeners
func (m *Masonry) ListenerCount() int {
	n := 0
	for _, fns := range m.listeners {
		n += len(fns)
	}
	return n
}

func (m *Masonry) emit(event string) {
	for _, fn := range m.listeners[event] {
		fn()
	}
}

// Destroy drops all items and listeners; the engine is unusable afterwards
func (m *Masonry) Destroy() {
	m.destroyed = true
	m.listeners = map[string]map[int]func(){}
	m.order = nil
	m.boxes = map[string]Box{}
	m.packing = Packing{}
	m.drag = dragSession{}
}

// Destroyed reports whether Destroy was called
func (m *Masonry) Destroyed() bool { return m.destroyed }

// Layout packs every item in the current order
func (m *Masonry) Layout() {
	if m.destroyed {
		return
	}
	boxes := make([]Box, 0, len(m.order))
	for _, id := range m.order {
		boxes = append(boxes, m.boxes[id])
	}
	m.packing = Pack(m.opts, m.viewport.Width, boxes)
	m.lastLayout = m.clock.Now()
	m.emit(EventLayoutEnd)
}

// Resize updates the viewport and re-evaluates whether dragging is allowed.
// When the viewport turns mobile a drag in progress is cancelled and a
// pending press loses its permission to become a drag.
func (m *Masonry) Resize(v Viewport) {
	m.viewport = v
	m.dragEnabled = !m.opts.IsMobile(v)
	if m.dragEnabled {
		return
	}
	switch m.drag.phase {
	case phaseDragging:
		m.drag = dragSession{}
		m.emit(EventDragEnd)
	case phasePending:
		m.drag.decision = Rejected
	}
}

// DragEnabled reports whether pointer-downs may start drags
func (m *Masonry) DragEnabled() bool { return m.dragEnabled }

// PointerDown starts a gesture on an item. The mobile gate is checked
// before the start predicate: on a mobile viewport no target, drag handles
// included, can begin a drag, and the gesture can only end as a click.
func (m *Masonry) PointerDown(itemID string, target *Element, p Point) PointerResult {
	rect, ok := m.packing.Positions[itemID]
	if m.destroyed || !ok {
		return PointerResult{Outcome: OutcomeNone}
	}

	decision := Rejected
	if m.dragEnabled {
		decision = m.opts.DragStartPredicate(target)
	}

	m.drag = dragSession{
		phase:    phasePending,
		itemID:   itemID,
		target:   target,
		origin:   p,
		pressed:  m.clock.Now(),
		decision: decision,
		start:    rect,
		current:  rect,
	}
	if decision.Immediate() {
		return m.beginDrag()
	}
	return PointerResult{Outcome: OutcomePending, ItemID: itemID, Target: target}
}

// PointerMove advances the gesture: a pending gesture becomes a drag once
// it passes the predicate's distance and delay, and a drag re-sorts the grid.
func (m *Masonry) PointerMove(p Point) PointerResult {
	switch m.drag.phase {
	case phasePending:
		d := m.drag.decision
		if !d.Allow || !m.dragEnabled {
			return PointerResult{Outcome: OutcomePending, ItemID: m.drag.itemID, Target: m.drag.target}
		}
		if p.Distance(m.drag.origin) <= d.Distance || m.clock.Since(m.drag.pressed) < d.Delay {
			return PointerResult{Outcome: OutcomePending, ItemID: m.drag.itemID, Target: m.drag.target}
		}
		m.beginDrag()
		fallthrough
	case phaseDragging:
		m.drag.current = m.drag.start.Translate(p.X-m.drag.origin.X, p.Y-m.drag.origin.Y)
		m.sortDragged()
		return PointerResult{Outcome: OutcomeDragMove, ItemID: m.drag.itemID, Target: m.drag.target}
	}
	return PointerResult{Outcome: OutcomeNone}
}

// PointerUp ends the gesture. A gesture that never became a drag is a
// click on its target.
func (m *Masonry) PointerUp(p Point) PointerResult {
	s := m.drag
	m.drag = dragSession{}
	held := m.clock.Since(s.pressed)
	switch s.phase {
	case phaseDragging:
		m.emit(EventDragEnd)
		return PointerResult{Outcome: OutcomeDragEnd, ItemID: s.itemID, Target: s.target, Held: held}
	case phasePending:
		return PointerResult{Outcome: OutcomeClick, ItemID: s.itemID, Target: s.target, Held: held}
	}
	return PointerResult{Outcome: OutcomeNone}
}

func (m *Masonry) beginDrag() PointerResult {
	m.drag.phase = phaseDragging
	m.emit(EventDragStart)
	return PointerResult{Outcome: OutcomeDragStart, ItemID: m.drag.itemID, Target: m.drag.target}
}

// sortDragged moves the dragged item in front of the item it overlaps
// most, when that overlap reaches SortThreshold percent of the smaller of
// the two cards
func (m *Masonry) sortDragged() {
	dragged := m.drag.current
	from := m.indexOf(m.drag.itemID)
	if from < 0 {
		return
	}

	best, bestScore := -1, 0.0
	for i, id := range m.order {
		if i == from {
			continue
		}
		other := m.packing.Positions[id]
		smaller := dragged.Area()
		if a := other.Area(); a < smaller {
			smaller = a
		}
		if smaller <= 0 {
			continue
		}
		score := dragged.Overlap(other) / smaller * 100
		if score >= m.opts.SortThreshold && score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return
	}

	switch m.opts.SortAction {
	case "swap":
		m.order[from], m.order[best] = m.order[best], m.order[from]
	default:
		m.move(from, best)
	}
	m.Layout()
}

func (m *Masonry) move(from, to int) {
	id := m.order[from]
	m.order = append(m.order[:from], m.order[from+1:]...)
	m.order = append(m.order[:to], append([]string{id}, m.order[to:]...)...)
}

func (m *Masonry) indexOf(id string) int {
	for i, o := range m.order {
		if o == id {
			return i
		}
	}
	return -1
}

// State returns a snapshot of the grid
func (m *Masonry) State() GridState {
	positions := make(map[string]Rect, len(m.packing.Positions))
	for id, r := range m.packing.Positions {
		positions[id] = r
	}
	state := GridState{
		Order:       append([]string(nil), m.order...),
		Positions:   positions,
		Width:       m.packing.Width,
		Height:      m.packing.Height,
		Dragging:    m.drag.phase == phaseDragging,
		DragEnabled: m.dragEnabled,
		LastLayout:  m.lastLayout,
	}
	if state.Dragging {
		state.DraggingID = m.drag.itemID
	}
	return state
}
