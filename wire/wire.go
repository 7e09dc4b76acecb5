// Package wire defines the Go shapes of the four collaborators the shell
// module treats as external: the compositing-surface protocol object, the
// input seat, the wire-protocol codec's event loop, and the display. The
// shell package never implements any of these; production code adapts real
// collaborators to these interfaces, and tests substitute fakes.
package wire

// IdleHandle cancels a scheduled idle callback. At most one must be live
// per surface at a time.
type IdleHandle interface {
	Cancel()
}

// TimerHandle controls a single-shot-or-rearmed timer, used for client
// ping timeouts.
type TimerHandle interface {
	// Update rearms the timer to fire after ms milliseconds. ms == 0 disarms it.
	Update(ms int)
	Cancel()
}

// EventLoop is the collaborator that owns idle callbacks and timers.
type EventLoop interface {
	AddIdle(fn func()) IdleHandle
	AddTimer(fn func()) TimerHandle
}

// Display allocates the monotonically increasing serials configure events
// and ping requests are identified by.
type Display interface {
	NextSerial() uint32
}

// CompositingSurface is the generic surface-compositing protocol object a
// shell Surface wraps. It owns pixel buffers, damage and commit
// notification; the shell only queries and observes it.
type CompositingSurface interface {
	HasBuffer() bool
	BufferSize() (w, h int)
	HitTest(sx, sy int) bool
	OnCommit(fn func())
	OnDestroy(fn func())
	SetRole(name string) error
}

// PointerGrab is one of the two vtables a popup grab implements so the
// seat can dispatch pointer input through it.
type PointerGrab interface {
	Enter(surface CompositingSurface, sx, sy float64)
	Motion(t uint32, sx, sy float64)
	Button(t, button, state uint32)
	Axis(t, axis uint32, value float64)
	Cancel()
}

// KeyboardGrab is the keyboard counterpart of PointerGrab.
type KeyboardGrab interface {
	Enter(surface CompositingSurface)
	Key(t, key, state uint32)
	Modifiers(depressed, latched, locked, group uint32)
	Cancel()
}

// Seat is the generic input-seat object that arbitrates pointer/keyboard
// focus and exposes pluggable grabs.
type Seat interface {
	StartPointerGrab(g PointerGrab)
	StartKeyboardGrab(g KeyboardGrab)
	EndPointerGrab()
	EndKeyboardGrab()

	SendEnter(surface CompositingSurface, sx, sy float64)
	ClearPointerFocus()
	SendMotion(t uint32, sx, sy float64)
	// SendButton returns 0 when nothing has pointer focus (no listener),
	// matching wlr_seat_pointer_send_button's "serial 0 means no focus".
	SendButton(t, button, state uint32) (serial uint32)
	SendAxis(t, axis uint32, value float64)
	SendKey(t, key, state uint32)
	SendModifiers(depressed, latched, locked, group uint32)

	ValidateGrabSerial(serial uint32) bool
}
