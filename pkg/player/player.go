// Package player drives a state machine or animation instance once per
// frame.
//
// A [Player] measures the time between frames with its [Clock], advances
// and applies its target, and then drains the reported events and state
// changes into the registered listeners before the next frame runs:
//
//	p := player.New(session)
//	p.OnEvent(func(ev rive.ReportedEvent) { log.Println(ev.Name) })
//	p.Start()
//	for range frames {
//		if err := p.Tick(); err != nil {
//			return err
//		}
//	}
//
// [Run] does the same from a real-time ticker until its context ends.
package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	riveerrors "github.com/go-drift/rive/pkg/errors"
	"github.com/go-drift/rive/pkg/rive"
)

const (
	// DefaultFPS is the frame rate Run uses when given zero.
	DefaultFPS = 60

	// DefaultMaxDelta caps the time a single frame may advance. Frames
	// after a stall resume smoothly instead of jumping.
	DefaultMaxDelta = 250 * time.Millisecond
)

// ErrNoPointer is returned when pointer input is forwarded to a target
// that has no listeners of its own, such as a linear animation.
var ErrNoPointer = errors.New("player: target does not accept pointer input")

// Target is advanced once per frame. *rive.StateMachineInstance
// implements it, and [Linear] adapts a linear animation. The returned
// flag reports whether further frames would change anything.
type Target interface {
	AdvanceAndApply(seconds float32) (bool, error)
}

// eventSource is implemented by targets that queue events and state
// changes during an advance.
type eventSource interface {
	DrainStateChanges() ([]string, error)
	DrainReportedEvents() ([]rive.ReportedEvent, error)
}

type pointerTarget interface {
	PointerDown(p rive.Vec2, id int32) error
	PointerMove(p rive.Vec2, id int32) error
	PointerUp(p rive.Vec2, id int32) error
	PointerExit(p rive.Vec2, id int32) error
}

// Stats summarizes the frames a player has run.
type Stats struct {
	Frames       int
	Elapsed      time.Duration
	Events       int
	StateChanges int
	// Settled is true when the last frame reported that the target has
	// nothing left to animate.
	Settled bool
}

// Option configures a Player.
type Option func(*Player)

// WithClock sets the time source used by Tick.
func WithClock(c Clock) Option {
	return func(p *Player) { p.clock = c }
}

// WithMaxDelta overrides DefaultMaxDelta. Zero disables the cap.
func WithMaxDelta(d time.Duration) Option {
	return func(p *Player) { p.maxDelta = d }
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Player drives one target. Its methods are safe for concurrent use, but
// frames never overlap: a Tick or pointer event that arrives while another
// frame is running waits for it.
type Player struct {
	target   Target
	clock    Clock
	maxDelta time.Duration

	frameMu sync.Mutex // serializes frames

	mu      sync.Mutex
	running bool
	last    time.Time
	stats   Stats
	events  []listener[rive.ReportedEvent]
	states  []listener[string]
	nextID  int
}

// New creates a stopped player for target.
func New(target Target, opts ...Option) *Player {
	p := &Player{target: target, clock: clock, maxDelta: DefaultMaxDelta}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins measuring frame time from now. Starting a running player
// does nothing.
func (p *Player) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.last = p.clock.Now()
	p.mu.Unlock()
	activate(p)
	rive.Logger().Debug("player started")
}

// Stop pauses the player. Tick does nothing until the next Start.
func (p *Player) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()
	deactivate(p)
	rive.Logger().Debug("player stopped", "frames", p.Frames().Frames)
}

// IsRunning reports whether the player is started.
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Tick runs one frame advanced by the clock time since the previous Tick
// or Start. A stopped player ignores Tick.
func (p *Player) Tick() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	now := p.clock.Now()
	dt := now.Sub(p.last)
	p.last = now
	p.mu.Unlock()
	return p.Step(dt)
}

// Step runs one frame advanced by dt, whether or not the player is
// started. Negative durations advance by zero.
func (p *Player) Step(dt time.Duration) error {
	if dt < 0 {
		dt = 0
	}
	if p.maxDelta > 0 && dt > p.maxDelta {
		dt = p.maxDelta
	}

	p.frameMu.Lock()
	defer p.frameMu.Unlock()

	more, err := p.target.AdvanceAndApply(float32(dt.Seconds()))
	if err != nil {
		return fmt.Errorf("player: advance: %w", err)
	}
	var (
		changes []string
		events  []rive.ReportedEvent
	)
	if src, ok := p.target.(eventSource); ok {
		if changes, err = src.DrainStateChanges(); err != nil {
			return fmt.Errorf("player: state changes: %w", err)
		}
		if events, err = src.DrainReportedEvents(); err != nil {
			return fmt.Errorf("player: events: %w", err)
		}
	}

	p.mu.Lock()
	p.stats.Frames++
	p.stats.Elapsed += dt
	p.stats.Events += len(events)
	p.stats.StateChanges += len(changes)
	p.stats.Settled = !more
	stateLs := append([]listener[string](nil), p.states...)
	eventLs := append([]listener[rive.ReportedEvent](nil), p.events...)
	p.mu.Unlock()

	for _, name := range changes {
		for _, l := range stateLs {
			notify(l.fn, name)
		}
	}
	for _, ev := range events {
		for _, l := range eventLs {
			notify(l.fn, ev)
		}
	}
	return nil
}

// notify isolates a panicking listener from the frame and the other
// listeners.
func notify[T any](fn func(T), v T) {
	defer riveerrors.Recover("rive.Player.frame")
	fn(v)
}

// Run starts the player and ticks it fps times per second until ctx is
// done or a frame fails. The player is stopped on return.
func (p *Player) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = DefaultFPS
	}
	p.Start()
	defer p.Stop()
	t := time.NewTicker(time.Second / time.Duration(fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := p.Tick(); err != nil {
				return err
			}
		}
	}
}

// OnEvent registers fn for every reported event, in report order.
// Listeners run inside the frame and must not call Step, Tick or the
// Pointer methods. Returns an unsubscribe function.
func (p *Player) OnEvent(fn func(rive.ReportedEvent)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.events = append(p.events, listener[rive.ReportedEvent]{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.events = removeListener(p.events, id)
	}
}

// OnStateChange registers fn for the name of every state entered.
// Returns an unsubscribe function.
func (p *Player) OnStateChange(fn func(string)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.states = append(p.states, listener[string]{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.states = removeListener(p.states, id)
	}
}

func removeListener[T any](ls []listener[T], id int) []listener[T] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// Frames returns a snapshot of the frame statistics.
func (p *Player) Frames() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// pointer runs fn against the target between frames, so input never
// reaches the instance while it is advancing.
func (p *Player) pointer(fn func(pointerTarget) error) error {
	pt, ok := p.target.(pointerTarget)
	if !ok {
		return ErrNoPointer
	}
	p.frameMu.Lock()
	defer p.frameMu.Unlock()
	return fn(pt)
}

// PointerDown forwards a press at pos, in artboard coordinates.
func (p *Player) PointerDown(pos rive.Vec2, id int32) error {
	return p.pointer(func(pt pointerTarget) error { return pt.PointerDown(pos, id) })
}

// PointerMove forwards a pointer move.
func (p *Player) PointerMove(pos rive.Vec2, id int32) error {
	return p.pointer(func(pt pointerTarget) error { return pt.PointerMove(pos, id) })
}

// PointerUp forwards a release.
func (p *Player) PointerUp(pos rive.Vec2, id int32) error {
	return p.pointer(func(pt pointerTarget) error { return pt.PointerUp(pos, id) })
}

// PointerExit forwards the pointer leaving the view.
func (p *Player) PointerExit(pos rive.Vec2, id int32) error {
	return p.pointer(func(pt pointerTarget) error { return pt.PointerExit(pos, id) })
}
