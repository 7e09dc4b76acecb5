package xdgshell

import "github.com/friedelschoen/xdgshell/wire"

// ToplevelDimState is the width/height/states triple that is either
// staged as a configure target, sent as part of a ConfigureRecord, or
// promoted to current on ack+commit.
type ToplevelDimState struct {
	Width, Height                             int
	Maximized, Fullscreen, Resizing, Activated bool
}

func (d ToplevelDimState) states() []State {
	var s []State
	if d.Maximized {
		s = append(s, StateMaximized)
	}
	if d.Fullscreen {
		s = append(s, StateFullscreen)
	}
	if d.Resizing {
		s = append(s, StateResizing)
	}
	if d.Activated {
		s = append(s, StateActivated)
	}
	return s
}

// ToplevelState is the role block a Surface gains on AssignToplevel.
type ToplevelState struct {
	surface *Surface

	title, appID string
	parent       *Surface

	desiredWidth, desiredHeight                int
	maximized, fullscreen, resizing, activated bool
	fullscreenOutput                           any

	minWidth, minHeight, maxWidth, maxHeight int

	lastSent ToplevelDimState // baseline of the most recently sent configure
	current  ToplevelDimState // promoted on commit once a buffer is attached
	next     ToplevelDimState // the acked, not-yet-committed target
}

// --- compositor-facing control methods (§6.3) ---

// SetSize stages a size for the next toplevel configure. 0x0 means "let the
// client choose". It returns the serial of the configure this staged, or 0
// if the change coalesced into an already-pending one.
func (s *Surface) SetSize(w, h int) uint32 {
	t := s.requireToplevel()
	t.desiredWidth, t.desiredHeight = w, h
	return s.scheduleToplevelConfigure()
}

// SetActivated stages the activated state for the next configure, returning
// its serial or 0 (see SetSize).
func (s *Surface) SetActivated(activated bool) uint32 {
	t := s.requireToplevel()
	t.activated = activated
	return s.scheduleToplevelConfigure()
}

// SetMaximized stages the maximized state for the next configure, returning
// its serial or 0 (see SetSize).
func (s *Surface) SetMaximized(maximized bool) uint32 {
	t := s.requireToplevel()
	t.maximized = maximized
	return s.scheduleToplevelConfigure()
}

// SetFullscreen stages the fullscreen state for the next configure,
// returning its serial or 0 (see SetSize).
func (s *Surface) SetFullscreen(fullscreen bool, output any) uint32 {
	t := s.requireToplevel()
	t.fullscreen = fullscreen
	t.fullscreenOutput = output
	return s.scheduleToplevelConfigure()
}

// SetResizing stages the resizing state for the next configure, returning
// its serial or 0 (see SetSize).
func (s *Surface) SetResizing(resizing bool) uint32 {
	t := s.requireToplevel()
	t.resizing = resizing
	return s.scheduleToplevelConfigure()
}

// SendClose is xdg_toplevel.close.
func (s *Surface) SendClose() {
	s.requireToplevel()
	if s.handlers.OnClose != nil {
		s.handlers.OnClose()
	}
}

func (s *Surface) requireToplevel() *ToplevelState {
	if s.role != RoleToplevel {
		panic("xdgshell: surface is not a toplevel")
	}
	return s.toplevel
}

// --- inbound wire requests (xdg_toplevel.*) ---

func (s *Surface) RequestSetTitle(title string) {
	s.toplevel.title = title
}

func (s *Surface) RequestSetAppID(appID string) {
	s.toplevel.appID = appID
}

func (s *Surface) RequestSetParent(parent *Surface) {
	s.toplevel.parent = parent
}

func (s *Surface) RequestSetMinSize(w, h int) error {
	if w < 0 || h < 0 {
		return protoErr(ErrInvalidInput, "xdg_toplevel", "min size must not be negative, got %dx%d", w, h)
	}
	s.toplevel.minWidth, s.toplevel.minHeight = w, h
	return nil
}

func (s *Surface) RequestSetMaxSize(w, h int) error {
	if w < 0 || h < 0 {
		return protoErr(ErrInvalidInput, "xdg_toplevel", "max size must not be negative, got %dx%d", w, h)
	}
	s.toplevel.maxWidth, s.toplevel.maxHeight = w, h
	return nil
}

func (s *Surface) RequestSetMaximized() {
	if s.handlers.OnRequestMaximize != nil {
		s.handlers.OnRequestMaximize()
	}
}

// RequestUnsetMaximized also fires OnRequestMaximize: the wire protocol
// gives the compositor no unambiguous "become unmaximized" signal distinct
// from "the user is toggling maximize state", so both set_maximized and
// unset_maximized route through the same host callback, which inspects the
// surface's current state to decide what "toggle" means.
func (s *Surface) RequestUnsetMaximized() {
	if s.handlers.OnRequestMaximize != nil {
		s.handlers.OnRequestMaximize()
	}
}

func (s *Surface) RequestSetFullscreen(output any) {
	if s.handlers.OnRequestFullscreen != nil {
		s.handlers.OnRequestFullscreen(true, output)
	}
}

func (s *Surface) RequestUnsetFullscreen() {
	if s.handlers.OnRequestFullscreen != nil {
		s.handlers.OnRequestFullscreen(false, nil)
	}
}

func (s *Surface) RequestSetMinimized() {
	if s.handlers.OnRequestMinimize != nil {
		s.handlers.OnRequestMinimize()
	}
}

// RequestMove, RequestResize and RequestShowWindowMenu all require the
// surface to have acknowledged at least one configure, and treat a stale grab
// serial as a log-and-ignore condition rather than a protocol error: an
// interactive grab losing its race against an intervening input event is
// an expected, benign occurrence.

func (s *Surface) RequestMove(seat wire.Seat, serial uint32) error {
	if !s.configured {
		return protoErr(ErrNotConstructed, "xdg_toplevel", "move requires a configured surface")
	}
	if !seat.ValidateGrabSerial(serial) {
		s.shell.logger.Printf("xdg_toplevel.move: stale grab serial %d, ignoring", serial)
		return nil
	}
	if s.handlers.OnRequestMove != nil {
		s.handlers.OnRequestMove(seat, serial)
	}
	return nil
}

func (s *Surface) RequestResize(seat wire.Seat, serial, edges uint32) error {
	if !s.configured {
		return protoErr(ErrNotConstructed, "xdg_toplevel", "resize requires a configured surface")
	}
	if !seat.ValidateGrabSerial(serial) {
		s.shell.logger.Printf("xdg_toplevel.resize: stale grab serial %d, ignoring", serial)
		return nil
	}
	if s.handlers.OnRequestResize != nil {
		s.handlers.OnRequestResize(seat, serial, edges)
	}
	return nil
}

func (s *Surface) RequestShowWindowMenu(seat wire.Seat, serial uint32, x, y int) error {
	if !s.configured {
		return protoErr(ErrNotConstructed, "xdg_toplevel", "show_window_menu requires a configured surface")
	}
	if !seat.ValidateGrabSerial(serial) {
		s.shell.logger.Printf("xdg_toplevel.show_window_menu: stale grab serial %d, ignoring", serial)
		return nil
	}
	if s.handlers.OnRequestShowWindowMenu != nil {
		s.handlers.OnRequestShowWindowMenu(seat, serial, x, y)
	}
	return nil
}
