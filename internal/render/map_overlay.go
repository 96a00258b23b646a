package render

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// MapOverlayWindow is how long the map's click overlay stays live after a
// press
const MapOverlayWindow = 200 * time.Millisecond

// MapOverlay is the transparent layer over the embedded map. A press
// enables it for a short window; a click inside that window opens the
// map link, anything slower is treated as a drag or an interaction with
// the map itself.
type MapOverlay struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	link    string
	enabled bool
	timer   clockwork.Timer
}

// NewMapOverlay creates a disabled overlay for link
func NewMapOverlay(link string, clock clockwork.Clock) *MapOverlay {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MapOverlay{link: link, clock: clock}
}

// Press enables the overlay and schedules it to turn off again
func (o *MapOverlay) Press() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enabled = true
	if o.timer != nil {
		o.timer.Stop()
	}
	var t clockwork.Timer
	t = o.clock.AfterFunc(MapOverlayWindow, func() { o.expire(t) })
	o.timer = t
}

// expire disables the overlay if t is still the timer of the latest press
func (o *MapOverlay) expire(t clockwork.Timer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.timer != t {
		return
	}
	o.timer = nil
	o.enabled = false
}

// Enabled reports whether the overlay currently takes clicks
func (o *MapOverlay) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled
}

// Click returns the link to open, if the overlay is live and has one
func (o *MapOverlay) Click() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.enabled || o.link == "" {
		return "", false
	}
	return o.link, true
}

// Stop cancels a pending disable
func (o *MapOverlay) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.enabled = false
}
