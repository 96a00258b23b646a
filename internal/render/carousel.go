package render

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// CarouselInterval is how often a project card advances to its next image
const CarouselInterval = 3 * time.Second

// Carousel is the image index of one project card
type Carousel struct {
	mu       sync.Mutex
	images   []string
	index    int
	interval time.Duration
	clock    clockwork.Clock
}

// NewCarousel creates a carousel positioned on the first image. A nil
// clock means the real clock.
func NewCarousel(images []string, clock clockwork.Clock) *Carousel {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Carousel{
		images:   images,
		interval: CarouselInterval,
		clock:    clock,
	}
}

// Len returns the number of images
func (c *Carousel) Len() int { return len(c.images) }

// Images returns the image list
func (c *Carousel) Images() []string { return c.images }

// Multiple reports whether the carousel has anything to cycle through
func (c *Carousel) Multiple() bool { return len(c.images) > 1 }

// Index returns the current image index
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the current image, or "" when there are none
func (c *Carousel) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return ""
	}
	return c.images[c.index]
}

// Indicator returns the "n/total" badge text
func (c *Carousel) Indicator() string {
	return fmt.Sprintf("%d/%d", c.Index()+1, len(c.images))
}

// Tick is one auto-advance step. It does nothing with fewer than two images.
func (c *Carousel) Tick() {
	if !c.Multiple() {
		return
	}
	c.Next()
}

// Next moves to the following image, wrapping around
func (c *Carousel) Next() {
	c.step(1)
}

// Prev moves to the preceding image, wrapping around
func (c *Carousel) Prev() {
	c.step(-1)
}

func (c *Carousel) step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.images)
	if n == 0 {
		return
	}
	c.index = ((c.index+delta)%n + n) % n
}

// Select jumps to image i. Out of range indexes are ignored.
func (c *Carousel) Select(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.images) {
		return
	}
	c.index = i
}

// Start ticks the carousel every interval until ctx is done. The ticker is
// created before Start returns. Carousels with fewer than two images are
// not started.
func (c *Carousel) Start(ctx context.Context) {
	if !c.Multiple() {
		return
	}
	ticker := c.clock.NewTicker(c.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				c.Tick()
			}
		}
	}()
}
