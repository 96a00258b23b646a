package layout

import "sync"

// Window events
const (
	WindowResize            = "resize"
	WindowOrientationChange = "orientationchange"
)

// WindowEvent is a resize-type event from the browser window
type WindowEvent struct {
	Type     string
	Viewport Viewport
}

// Window is a listener registry standing in for the browser window
type Window struct {
	mu        sync.Mutex
	listeners map[string]map[uint64]func(WindowEvent)
	next      uint64
}

// NewWindow creates an empty Window
func NewWindow() *Window {
	return &Window{listeners: make(map[string]map[uint64]func(WindowEvent))}
}

// AddListener registers fn for an event type and returns its remover.
// Calling the remover more than once is harmless.
func (w *Window) AddListener(event string, fn func(WindowEvent)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.listeners[event] == nil {
		w.listeners[event] = make(map[uint64]func(WindowEvent))
	}
	id := w.next
	w.next++
	w.listeners[event][id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners[event], id)
	}
}

// Dispatch calls every listener for the event's type. Listeners run
// outside the registry lock and may add or remove listeners.
func (w *Window) Dispatch(ev WindowEvent) {
	w.mu.Lock()
	fns := make([]func(WindowEvent), 0, len(w.listeners[ev.Type]))
	for _, fn := range w.listeners[ev.Type] {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// ListenerCount returns the number of registered listeners
func (w *Window) ListenerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, fns := range w.listeners {
		n += len(fns)
	}
	return n
}
