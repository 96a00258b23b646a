package layout

import (
	"context"
	"errors"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var (
	// ErrReleased is returned when the adapter was released before or
	// while acquiring
	ErrReleased = errors.New("layout: adapter released")
	// ErrNotAcquired is returned by grid operations before Acquire succeeds
	ErrNotAcquired = errors.New("layout: grid not acquired")
)

// Loader builds the layout engine. It may block, standing in for loading
// the layout module lazily.
type Loader func(ctx context.Context, cfg EngineConfig) (*Masonry, error)

// LoadMasonry is the default Loader
func LoadMasonry(_ context.Context, cfg EngineConfig) (*Masonry, error) {
	return NewMasonry(cfg), nil
}

// Adapter binds one masonry engine to a Window. Acquire and Release may
// be called in any order and any number of times; the engine is torn down
// exactly once even when Release lands while Acquire is still loading.
type Adapter struct {
	mu     sync.Mutex
	window *Window
	opts   Options
	clock  clockwork.Clock
	loader Loader
	logger *zap.Logger

	ready    chan struct{}
	err      error
	engine   *Masonry
	released bool
	cleanup  []func()
	settle   clockwork.Timer
}

// AdapterOption customizes an Adapter
type AdapterOption func(*Adapter)

// WithClock sets the clock used for the drag-settle timer
func WithClock(c clockwork.Clock) AdapterOption {
	return func(a *Adapter) { a.clock = c }
}

// WithLoader replaces the engine loader
func WithLoader(l Loader) AdapterOption {
	return func(a *Adapter) { a.loader = l }
}

// WithLogger sets the adapter's logger
func WithLogger(l *zap.Logger) AdapterOption {
	return func(a *Adapter) { a.logger = l }
}

// NewAdapter creates an adapter listening on window
func NewAdapter(window *Window, opts Options, options ...AdapterOption) *Adapter {
	a := &Adapter{
		window: window,
		opts:   opts,
		clock:  clockwork.NewRealClock(),
		loader: LoadMasonry,
		logger: zap.NewNop(),
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Acquire loads the engine, installs the window and drag listeners and
// performs the initial layout. Later calls wait for and return the result
// of the first one.
func (a *Adapter) Acquire(ctx context.Context, boxes []Box, viewport Viewport) error {
	a.mu.Lock()
	if a.released {
		a.mu.Unlock()
		return ErrReleased
	}
	if a.ready != nil {
		ready := a.ready
		a.mu.Unlock()
		select {
		case <-ready:
			a.mu.Lock()
			defer a.mu.Unlock()
			return a.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	a.ready = make(chan struct{})
	a.mu.Unlock()

	engine, err := a.loader(ctx, EngineConfig{
		Options:  a.opts,
		Boxes:    boxes,
		Viewport: viewport,
		Clock:    a.clock,
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	defer close(a.ready)

	if err != nil {
		a.err = err
		return err
	}
	if a.released {
		// released while loading: nothing was installed yet
		engine.Destroy()
		a.err = ErrReleased
		return ErrReleased
	}

	a.engine = engine
	a.cleanup = append(a.cleanup,
		a.window.AddListener(WindowResize, a.onResize),
		a.window.AddListener(WindowOrientationChange, a.onResize),
		engine.On(EventDragEnd, a.scheduleSettleLocked),
	)
	engine.Layout()
	a.logger.Debug("grid acquired",
		zap.Int("items", len(boxes)),
		zap.Float64("width", viewport.Width),
		zap.Bool("drag_enabled", engine.DragEnabled()),
	)
	return nil
}

// Release removes every listener, stops pending timers and destroys the
// engine. It is safe to call before Acquire finishes, and more than once.
func (a *Adapter) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}
	a.released = true

	for _, fn := range a.cleanup {
		fn()
	}
	a.cleanup = nil
	if a.settle != nil {
		a.settle.Stop()
		a.settle = nil
	}
	if a.engine != nil {
		a.engine.Destroy()
		a.engine = nil
	}
	a.logger.Debug("grid released")
}

// Released reports whether Release was called
func (a *Adapter) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

func (a *Adapter) onResize(ev WindowEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		return
	}
	a.engine.Resize(ev.Viewport)
	a.engine.Layout()
}

// scheduleSettleLocked re-lays out the grid once a drag has settled.
// Repeated drag ends within the delay collapse into one layout. It runs
// from engine events, with a.mu held.
func (a *Adapter) scheduleSettleLocked() {
	if a.settle != nil {
		a.settle.Stop()
	}
	var t clockwork.Timer
	t = a.clock.AfterFunc(a.opts.DragSettleDelay, func() { a.settled(t) })
	a.settle = t
}

// settled runs the relayout for timer t. A timer that was superseded
// after it fired leaves the newer one in place.
func (a *Adapter) settled(t clockwork.Timer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.settle != t || a.engine == nil {
		return
	}
	a.settle = nil
	a.engine.Layout()
}

// PointerDown forwards a pointer-down on an item to the engine
func (a *Adapter) PointerDown(itemID string, target *Element, p Point) (PointerResult, error) {
	return a.withEngine(func(m *Masonry) PointerResult { return m.PointerDown(itemID, target, p) })
}

// PointerMove forwards a pointer move to the engine
func (a *Adapter) PointerMove(p Point) (PointerResult, error) {
	return a.withEngine(func(m *Masonry) PointerResult { return m.PointerMove(p) })
}

// PointerUp forwards a pointer release to the engine
func (a *Adapter) PointerUp(p Point) (PointerResult, error) {
	return a.withEngine(func(m *Masonry) PointerResult { return m.PointerUp(p) })
}

func (a *Adapter) withEngine(fn func(*Masonry) PointerResult) (PointerResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		if a.released {
			return PointerResult{}, ErrReleased
		}
		return PointerResult{}, ErrNotAcquired
	}
	return fn(a.engine), nil
}

// State returns a snapshot of the grid
func (a *Adapter) State() (GridState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		if a.released {
			return GridState{}, ErrReleased
		}
		return GridState{}, ErrNotAcquired
	}
	return a.engine.State(), nil
}
