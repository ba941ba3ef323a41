package slideshow

import (
	"fmt"
	"time"
)

// Defaults match the hero carousel: five seconds per slide, progress
// recomputed every 50ms.
const (
	DefaultDwell = 5 * time.Second
	DefaultTick  = 50 * time.Millisecond
)

// Option configures a Controller at construction.
type Option func(*Controller)

// WithDwell sets how long each slide stays up before autoplay advances.
func WithDwell(d time.Duration) Option {
	return func(c *Controller) { c.dwell = d }
}

// WithTick sets the time step applied by each Tick call.
func WithTick(d time.Duration) Option {
	return func(c *Controller) { c.tick = d }
}

// Controller owns the active slide, the autoplay flag and dwell progress.
//
// It does not lock. Hosts that call it from more than one goroutine must
// serialize access themselves (see the autoplay package).
type Controller struct {
	slides []Slide
	dwell  time.Duration
	tick   time.Duration

	current int
	playing bool
	elapsed time.Duration // time accumulated on the current slide, always < dwell
}

// New creates a controller positioned on the first slide with autoplay on.
func New(slides []Slide, opts ...Option) (*Controller, error) {
	c := &Controller{
		dwell:   DefaultDwell,
		tick:    DefaultTick,
		playing: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case len(slides) == 0:
		return nil, fmt.Errorf("%w: no slides", ErrInvalidConfiguration)
	case c.dwell <= 0:
		return nil, fmt.Errorf("%w: dwell must be positive, got %s", ErrInvalidConfiguration, c.dwell)
	case c.tick <= 0:
		return nil, fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfiguration, c.tick)
	case c.tick > c.dwell:
		return nil, fmt.Errorf("%w: tick %s exceeds dwell %s", ErrInvalidConfiguration, c.tick, c.dwell)
	}

	c.slides = make([]Slide, len(slides))
	copy(c.slides, slides)
	return c, nil
}

// Next moves to the following slide, wrapping after the last one.
func (c *Controller) Next() {
	c.show((c.current + 1) % len(c.slides))
}

// Previous moves to the preceding slide, wrapping before the first one.
func (c *Controller) Previous() {
	c.show((c.current - 1 + len(c.slides)) % len(c.slides))
}

// GoTo jumps to slide index. Progress resets even when index is already current.
func (c *Controller) GoTo(index int) error {
	if index < 0 || index >= len(c.slides) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.slides))
	}
	c.show(index)
	return nil
}

func (c *Controller) show(index int) {
	c.current = index
	c.elapsed = 0
}

// Play turns autoplay on.
func (c *Controller) Play() { c.playing = true }

// Pause turns autoplay off and keeps progress where it is.
func (c *Controller) Pause() { c.playing = false }

// Toggle flips autoplay.
func (c *Controller) Toggle() { c.playing = !c.playing }

// Tick advances time by one tick interval. The slide changes on the first
// tick at which accumulated time reaches the dwell, so a transition may
// overshoot the dwell by less than one tick.
//
// It reports whether the slide changed.
func (c *Controller) Tick() bool {
	if !c.playing {
		return false
	}
	c.elapsed += c.tick
	if c.elapsed >= c.dwell {
		c.show((c.current + 1) % len(c.slides))
		return true
	}
	return false
}

// CurrentSlide returns the slide being displayed.
func (c *Controller) CurrentSlide() Slide {
	return c.slides[c.current]
}

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		CurrentIndex: c.current,
		IsPlaying:    c.playing,
		Progress:     c.progress(),
	}
}

func (c *Controller) progress() float64 {
	p := float64(c.elapsed) / float64(c.dwell) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Len returns the number of slides.
func (c *Controller) Len() int { return len(c.slides) }

// Slides returns a copy of the slide sequence.
func (c *Controller) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// Dwell returns the configured per-slide display time.
func (c *Controller) Dwell() time.Duration { return c.dwell }

// TickInterval returns the time step applied by Tick.
func (c *Controller) TickInterval() time.Duration { return c.tick }

// Remaining returns the dwell time left before autoplay would advance.
func (c *Controller) Remaining() time.Duration { return c.dwell - c.elapsed }
