package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tahiru.dev/internal/layout"
	"tahiru.dev/internal/models"
	"tahiru.dev/internal/render"
)

// ErrSessionNotFound is returned for an unknown or evicted grid handle
var ErrSessionNotFound = errors.New("grid session not found")

// Marker classes of card regions that never count as a click on the card
var clickIgnoredClasses = []string{"carousel-nav", "carousel-dots", "action-buttons"}

const mapOverlayClass = "map-overlay"

// ItemSource supplies the items a grid is built from
type ItemSource interface {
	Items(ctx context.Context) ([]models.Item, error)
}

// gridSession is the server half of one open page
type gridSession struct {
	handle  string
	window  *layout.Window
	adapter *layout.Adapter
	stop    context.CancelFunc

	mu        sync.Mutex
	items     map[string]models.Item
	carousels map[string]*render.Carousel
	overlays  map[string]*render.MapOverlay
}

// GridService keeps the layout sessions of open pages
type GridService struct {
	source      ItemSource
	opts        layout.Options
	maxSessions int
	clock       clockwork.Clock
	loader      layout.Loader
	logger      *zap.Logger

	mu       sync.Mutex
	sessions map[string]*gridSession
	order    []string
}

// GridOption customizes a GridService
type GridOption func(*GridService)

// WithGridClock sets the clock handed to engines, carousels and overlays
func WithGridClock(c clockwork.Clock) GridOption {
	return func(s *GridService) { s.clock = c }
}

// WithGridLoader sets the engine loader used by new sessions
func WithGridLoader(l layout.Loader) GridOption {
	return func(s *GridService) { s.loader = l }
}

// NewGridService creates a new GridService. maxSessions <= 0 means no cap.
func NewGridService(source ItemSource, opts layout.Options, maxSessions int, logger *zap.Logger, options ...GridOption) *GridService {
	s := &GridService{
		source:      source,
		opts:        opts,
		maxSessions: maxSessions,
		clock:       clockwork.NewRealClock(),
		loader:      layout.LoadMasonry,
		logger:      logger,
		sessions:    make(map[string]*gridSession),
	}
	for _, o := range options {
		o(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Open builds a session for the current items and lays them out for the
// viewport. The oldest session is released when the cap is reached.
func (s *GridService) Open(ctx context.Context, req models.GridOpenRequest) (models.GridSnapshot, error) {
	items, err := s.source.Items(ctx)
	if err != nil {
		return models.GridSnapshot{}, err
	}

	sess := &gridSession{
		handle:    uuid.NewString(),
		window:    layout.NewWindow(),
		items:     make(map[string]models.Item, len(items)),
		carousels: make(map[string]*render.Carousel),
		overlays:  make(map[string]*render.MapOverlay),
	}
	sess.adapter = layout.NewAdapter(sess.window, s.opts,
		layout.WithClock(s.clock),
		layout.WithLoader(s.loader),
		layout.WithLogger(s.logger.With(zap.String("grid", sess.handle))),
	)

	for _, it := range items {
		if _, dup := sess.items[it.ID]; dup {
			s.logger.Warn("duplicate item id, keeping the first",
				zap.String("grid", sess.handle),
				zap.String("id", it.ID),
				zap.String("type", string(it.Type)),
			)
			continue
		}
		sess.items[it.ID] = it
		switch it.Type {
		case models.KindProject:
			if imgs := it.ImageList(); len(imgs) > 1 {
				sess.carousels[it.ID] = render.NewCarousel(imgs, s.clock)
			}
		case models.KindMap:
			sess.overlays[it.ID] = render.NewMapOverlay(it.Link, s.clock)
		}
	}

	if err := sess.adapter.Acquire(ctx, Boxes(items), toViewport(req.Viewport)); err != nil {
		sess.release()
		return models.GridSnapshot{}, fmt.Errorf("acquiring layout: %w", err)
	}

	// carousels outlive the request and stop with the session
	var runCtx context.Context
	runCtx, sess.stop = context.WithCancel(context.WithoutCancel(ctx))
	for _, c := range sess.carousels {
		c.Start(runCtx)
	}

	s.register(sess)
	return sess.snapshot()
}

func (s *GridService) register(sess *gridSession) {
	var evicted []*gridSession

	s.mu.Lock()
	s.sessions[sess.handle] = sess
	s.order = append(s.order, sess.handle)
	for s.maxSessions > 0 && len(s.order) > s.maxSessions {
		oldest := s.order[0]
		s.order = s.order[1:]
		if old, ok := s.sessions[oldest]; ok {
			delete(s.sessions, oldest)
			evicted = append(evicted, old)
		}
	}
	s.mu.Unlock()

	for _, old := range evicted {
		s.logger.Debug("evicting grid session", zap.String("grid", old.handle))
		old.release()
	}
}

// Len returns the number of open sessions
func (s *GridService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Snapshot returns the current state of a session
func (s *GridService) Snapshot(handle string) (models.GridSnapshot, error) {
	sess, err := s.get(handle)
	if err != nil {
		return models.GridSnapshot{}, err
	}
	return sess.snapshot()
}

// Dispatch applies one browser event to a session
func (s *GridService) Dispatch(handle string, ev models.GridEvent) (models.GridEventResult, error) {
	sess, err := s.get(handle)
	if err != nil {
		return models.GridEventResult{}, err
	}

	result := models.GridEventResult{Outcome: layout.OutcomeNone.String()}
	switch ev.Type {
	case models.GridEventResize, models.GridEventOrientationChange:
		if ev.Viewport == nil {
			return result, fmt.Errorf("%s event without viewport", ev.Type)
		}
		sess.window.Dispatch(layout.WindowEvent{
			Type:     ev.Type,
			Viewport: toViewport(*ev.Viewport),
		})

	case models.GridEventPointerDown:
		target := layout.Chain(toElements(ev.Target))
		if target.ClosestClass(mapOverlayClass) != nil {
			sess.pressOverlay(ev.ItemID)
		}
		res, err := sess.adapter.PointerDown(ev.ItemID, target, layout.Point{X: ev.X, Y: ev.Y})
		if err != nil {
			return result, err
		}
		result.Outcome = res.Outcome.String()

	case models.GridEventPointerMove:
		res, err := sess.adapter.PointerMove(layout.Point{X: ev.X, Y: ev.Y})
		if err != nil {
			return result, err
		}
		result.Outcome = res.Outcome.String()

	case models.GridEventPointerUp:
		res, err := sess.adapter.PointerUp(layout.Point{X: ev.X, Y: ev.Y})
		if err != nil {
			return result, err
		}
		result.Outcome = res.Outcome.String()
		if res.Outcome == layout.OutcomeClick {
			result.Open = sess.clickLink(res)
		}

	case models.GridEventCarousel:
		if err := sess.carousel(ev); err != nil {
			return result, err
		}

	default:
		return result, fmt.Errorf("unknown grid event %q", ev.Type)
	}

	snap, err := sess.snapshot()
	if err != nil {
		return result, err
	}
	result.GridSnapshot = snap
	return result, nil
}

// Close releases a session. Unknown handles are ignored.
func (s *GridService) Close(handle string) {
	s.mu.Lock()
	sess, ok := s.sessions[handle]
	if ok {
		delete(s.sessions, handle)
		for i, h := range s.order {
			if h == handle {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if ok {
		sess.release()
	}
}

// CloseAll releases every session
func (s *GridService) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*gridSession)
	s.order = nil
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.release()
	}
}

func (s *GridService) get(handle string) (*gridSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[handle]
	if !ok || sess.adapter.Released() {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (g *gridSession) release() {
	g.adapter.Release()
	if g.stop != nil {
		g.stop()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, o := range g.overlays {
		o.Stop()
	}
}

func (g *gridSession) snapshot() (models.GridSnapshot, error) {
	state, err := g.adapter.State()
	if err != nil {
		return models.GridSnapshot{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	snap := models.GridSnapshot{Handle: g.handle, Grid: state}
	if len(g.carousels) > 0 {
		snap.Carousels = make(map[string]int, len(g.carousels))
		for id, c := range g.carousels {
			snap.Carousels[id] = c.Index()
		}
	}
	return snap, nil
}

func (g *gridSession) pressOverlay(itemID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if o, ok := g.overlays[itemID]; ok {
		o.Press()
	}
}

// clickLink returns the link a completed click should open: the map link
// while its overlay is live, or a project's live site unless the click
// landed on the carousel or action controls
func (g *gridSession) clickLink(res layout.PointerResult) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if res.Target.ClosestClass(mapOverlayClass) != nil {
		if o, ok := g.overlays[res.ItemID]; ok {
			if link, ok := o.Click(); ok {
				return link
			}
		}
		return ""
	}

	item, ok := g.items[res.ItemID]
	if !ok || item.Type != models.KindProject || item.LiveURL == "" {
		return ""
	}
	for _, class := range clickIgnoredClasses {
		if res.Target.ClosestClass(class) != nil {
			return ""
		}
	}
	return item.LiveURL
}

func (g *gridSession) carousel(ev models.GridEvent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ev.Action == models.CarouselTick && ev.ItemID == "" {
		for _, c := range g.carousels {
			c.Tick()
		}
		return nil
	}

	c, ok := g.carousels[ev.ItemID]
	if !ok {
		return fmt.Errorf("no carousel for item %q", ev.ItemID)
	}
	switch ev.Action {
	case models.CarouselTick:
		c.Tick()
	case models.CarouselNext:
		c.Next()
	case models.CarouselPrev:
		c.Prev()
	case models.CarouselSelect:
		c.Select(ev.Index)
	default:
		return fmt.Errorf("unknown carousel action %q", ev.Action)
	}
	return nil
}

// Boxes returns the layout boxes of items, sized by their spans
func Boxes(items []models.Item) []layout.Box {
	boxes := make([]layout.Box, 0, len(items))
	for _, it := range items {
		boxes = append(boxes, layout.Box{ID: it.ID, Span: layout.ParseSpan(it.Span)})
	}
	return boxes
}

func toViewport(v models.GridViewport) layout.Viewport {
	return layout.Viewport{Width: v.Width, Height: v.Height}
}

func toElements(nodes []models.TargetNode) []layout.Element {
	elems := make([]layout.Element, 0, len(nodes))
	for _, n := range nodes {
		elems = append(elems, layout.Element{Tag: n.Tag, Classes: n.Classes})
	}
	return elems
}
