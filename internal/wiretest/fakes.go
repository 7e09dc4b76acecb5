// Package wiretest provides minimal, synchronous fakes for every
// collaborator interface the wire package defines. They exist to drive
// the shell package from tests and from the debug-visualizer command
// without a real compositor or display server: the pattern used
// throughout this module's own tests rather than a third-party mocking
// library, matching the corpus's stdlib-testing conventions.
package wiretest

import "github.com/friedelschoen/xdgshell/wire"

// Display hands out strictly increasing serials.
type Display struct {
	next uint32
}

func (d *Display) NextSerial() uint32 {
	d.next++
	return d.next
}

// idleCall and timerCall back Idle/Timer so a test can fire them manually
// instead of running a real event loop.
type idleCall struct {
	fn        func()
	cancelled bool
}

func (c *idleCall) Cancel() { c.cancelled = true }

type timerCall struct {
	fn        func()
	ms        int
	cancelled bool
}

func (c *timerCall) Update(ms int) { c.ms = ms }
func (c *timerCall) Cancel()       { c.cancelled = true }

// EventLoop records idle callbacks and timers instead of scheduling them
// on a real clock. Tests advance it explicitly with RunIdle/FireTimer.
type EventLoop struct {
	idles  []*idleCall
	timers []*timerCall
}

func (l *EventLoop) AddIdle(fn func()) wire.IdleHandle {
	c := &idleCall{fn: fn}
	l.idles = append(l.idles, c)
	return c
}

func (l *EventLoop) AddTimer(fn func()) wire.TimerHandle {
	c := &timerCall{fn: fn}
	l.timers = append(l.timers, c)
	return c
}

// RunIdle runs every idle callback scheduled so far that hasn't been
// cancelled, then forgets them, mirroring one pass of a real idle queue.
func (l *EventLoop) RunIdle() {
	pending := l.idles
	l.idles = nil
	for _, c := range pending {
		if !c.cancelled {
			c.fn()
		}
	}
}

// FireTimer invokes the callback of the most recently armed, not-yet-
// cancelled timer whose current deadline is ms > 0. Used to simulate a
// ping timeout firing.
func (l *EventLoop) FireTimer() {
	for i := len(l.timers) - 1; i >= 0; i-- {
		t := l.timers[i]
		if !t.cancelled && t.ms > 0 {
			t.fn()
			return
		}
	}
}

// CompositingSurface is a bare in-memory stand-in for a compositor's
// surface object: it tracks whether a buffer is attached, a fixed
// hit-test rectangle, and the commit/destroy callbacks installed on it.
type CompositingSurface struct {
	Buffer    bool
	W, H      int
	HitW, HitH int
	Role      string

	onCommit  func()
	onDestroy func()
}

func (c *CompositingSurface) HasBuffer() bool      { return c.Buffer }
func (c *CompositingSurface) BufferSize() (int, int) { return c.W, c.H }

func (c *CompositingSurface) HitTest(sx, sy int) bool {
	w, h := c.HitW, c.HitH
	if w == 0 && h == 0 {
		w, h = c.W, c.H
	}
	return sx >= 0 && sy >= 0 && sx < w && sy < h
}

func (c *CompositingSurface) OnCommit(fn func())  { c.onCommit = fn }
func (c *CompositingSurface) OnDestroy(fn func()) { c.onDestroy = fn }

func (c *CompositingSurface) SetRole(name string) error {
	c.Role = name
	return nil
}

// Commit invokes the installed commit handler, simulating a wl_surface.commit.
func (c *CompositingSurface) Commit() {
	if c.onCommit != nil {
		c.onCommit()
	}
}

// Destroy invokes the installed destroy handler.
func (c *CompositingSurface) Destroy() {
	if c.onDestroy != nil {
		c.onDestroy()
	}
}

// Seat is a single-pointer, single-keyboard fake: it records the active
// grab and every Send* call so a test can assert on dispatch order.
type Seat struct {
	Pointer  wire.PointerGrab
	Keyboard wire.KeyboardGrab

	ValidSerial bool

	Sent []string
}

func (s *Seat) StartPointerGrab(g wire.PointerGrab)   { s.Pointer = g }
func (s *Seat) StartKeyboardGrab(g wire.KeyboardGrab) { s.Keyboard = g }
func (s *Seat) EndPointerGrab()                       { s.Pointer = nil }
func (s *Seat) EndKeyboardGrab()                      { s.Keyboard = nil }

func (s *Seat) SendEnter(surface wire.CompositingSurface, sx, sy float64) {
	s.Sent = append(s.Sent, "enter")
}
func (s *Seat) ClearPointerFocus() { s.Sent = append(s.Sent, "clear") }
func (s *Seat) SendMotion(t uint32, sx, sy float64) {
	s.Sent = append(s.Sent, "motion")
}
func (s *Seat) SendButton(t, button, state uint32) uint32 {
	s.Sent = append(s.Sent, "button")
	return 1
}
func (s *Seat) SendAxis(t, axis uint32, value float64) { s.Sent = append(s.Sent, "axis") }
func (s *Seat) SendKey(t, key, state uint32)           { s.Sent = append(s.Sent, "key") }
func (s *Seat) SendModifiers(depressed, latched, locked, group uint32) {
	s.Sent = append(s.Sent, "modifiers")
}

func (s *Seat) ValidateGrabSerial(serial uint32) bool { return s.ValidSerial }
