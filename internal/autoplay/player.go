package autoplay

import (
	"errors"
	"sync"
	"time"

	"github.com/sealive/herodeck/internal/slideshow"
	"go.uber.org/zap"
)

// ErrClosed is returned by commands issued after Close.
var ErrClosed = errors.New("autoplay: player closed")

// Ticker is the periodic timer source driving a Player.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Option configures a Player.
type Option func(*Player)

// WithTicker replaces the timer factory. Tests use it to drive ticks by hand.
func WithTicker(fn func(time.Duration) Ticker) Option {
	return func(p *Player) { p.newTicker = fn }
}

// WithLogger sets the logger used for lifecycle and transition events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithOnChange registers a hook that receives the snapshot after every
// state change. It runs with the player lock held and must not call back
// into the Player.
func WithOnChange(fn func(slideshow.Snapshot)) Option {
	return func(p *Player) { p.onChange = fn }
}

// Player makes a Controller safe for concurrent callers and owns the single
// ticker that feeds it while autoplay is on.
type Player struct {
	mu       sync.Mutex
	ctrl     *slideshow.Controller
	log      *zap.Logger
	onChange func(slideshow.Snapshot)

	newTicker func(time.Duration) Ticker

	gen    uint64   // bumped on every start and stop, guarded by mu
	run    *tickRun // live tick loop, nil when stopped
	closed bool
}

type tickRun struct {
	ticker Ticker
	done   chan struct{} // closed to cancel the loop
	exited chan struct{} // closed by the loop on return
}

// New wraps ctrl. If the controller is in the playing state the ticker
// starts immediately.
func New(ctrl *slideshow.Controller, opts ...Option) *Player {
	p := &Player{
		ctrl:      ctrl,
		log:       zap.NewNop(),
		newTicker: NewRealTicker,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	if ctrl.Snapshot().IsPlaying {
		p.startLocked()
	}
	p.mu.Unlock()
	return p
}

// startLocked launches the tick loop unless one is already live.
func (p *Player) startLocked() {
	if p.run != nil {
		return
	}
	p.gen++
	r := &tickRun{
		ticker: p.newTicker(p.ctrl.TickInterval()),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	p.run = r
	go p.tickLoop(p.gen, r)
	p.log.Debug("autoplay started", zap.Uint64("gen", p.gen), zap.Duration("tick", p.ctrl.TickInterval()))
}

// stopLocked cancels the live tick loop and returns a wait func that must
// be called after mu is released.
func (p *Player) stopLocked() func() {
	r := p.run
	if r == nil {
		return func() {}
	}
	r.ticker.Stop()
	close(r.done)
	p.run = nil
	p.gen++
	p.log.Debug("autoplay stopped", zap.Uint64("gen", p.gen))
	return func() { <-r.exited }
}

func (p *Player) tickLoop(gen uint64, r *tickRun) {
	defer close(r.exited)
	for {
		select {
		case <-r.done:
			return
		case <-r.ticker.C():
			p.mu.Lock()
			if p.gen != gen {
				// Cancelled between the receive and the lock.
				p.mu.Unlock()
				return
			}
			if p.ctrl.Tick() {
				slide := p.ctrl.CurrentSlide()
				p.log.Debug("slide advanced",
					zap.Int("index", p.ctrl.Snapshot().CurrentIndex),
					zap.Int("slide_id", slide.ID),
					zap.String("title", slide.Title))
			}
			p.notifyLocked()
			p.mu.Unlock()
		}
	}
}

func (p *Player) notifyLocked() {
	if p.onChange != nil {
		p.onChange(p.ctrl.Snapshot())
	}
}

// do runs fn under the lock and reports the resulting snapshot.
func (p *Player) do(fn func() error) (slideshow.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return p.ctrl.Snapshot(), ErrClosed
	}
	if err := fn(); err != nil {
		return p.ctrl.Snapshot(), err
	}
	p.notifyLocked()
	return p.ctrl.Snapshot(), nil
}

// Next shows the following slide.
func (p *Player) Next() (slideshow.Snapshot, error) {
	return p.do(func() error { p.ctrl.Next(); return nil })
}

// Previous shows the preceding slide.
func (p *Player) Previous() (slideshow.Snapshot, error) {
	return p.do(func() error { p.ctrl.Previous(); return nil })
}

// GoTo jumps to index.
func (p *Player) GoTo(index int) (slideshow.Snapshot, error) {
	return p.do(func() error { return p.ctrl.GoTo(index) })
}

// Play turns autoplay on, starting a fresh ticker if none is running.
func (p *Player) Play() (slideshow.Snapshot, error) {
	return p.do(func() error {
		p.ctrl.Play()
		p.startLocked()
		return nil
	})
}

// Pause turns autoplay off. When it returns no further tick is applied.
func (p *Player) Pause() (slideshow.Snapshot, error) {
	var wait func()
	snap, err := p.do(func() error {
		p.ctrl.Pause()
		wait = p.stopLocked()
		return nil
	})
	if wait != nil {
		wait()
	}
	return snap, err
}

// Toggle flips autoplay.
func (p *Player) Toggle() (slideshow.Snapshot, error) {
	var wait func()
	snap, err := p.do(func() error {
		p.ctrl.Toggle()
		if p.ctrl.Snapshot().IsPlaying {
			p.startLocked()
		} else {
			wait = p.stopLocked()
		}
		return nil
	})
	if wait != nil {
		wait()
	}
	return snap, err
}

// Snapshot returns the current state.
func (p *Player) Snapshot() slideshow.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl.Snapshot()
}

// CurrentSlide returns the slide being displayed.
func (p *Player) CurrentSlide() slideshow.Slide {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl.CurrentSlide()
}

// Slides returns the slide sequence.
func (p *Player) Slides() []slideshow.Slide {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl.Slides()
}

// Running reports whether a tick loop is live.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run != nil
}

// Close stops the ticker and waits for the loop to exit. It is safe to call
// more than once.
func (p *Player) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	wait := p.stopLocked()
	p.mu.Unlock()
	wait()
	p.log.Debug("autoplay closed")
}
