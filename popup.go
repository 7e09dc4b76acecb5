package xdgshell

import "github.com/friedelschoen/xdgshell/wire"

// PopupState is the role block a Surface gains on AssignPopup.
type PopupState struct {
	surface *Surface

	parent   *Surface
	geometry Rect // computed once at creation time, immutable afterward

	committed bool // the first commit, which triggers the single configure, has happened
	grab      *PopupGrab
}

// PopupGetPosition is xdg_popup's implicit geometry accessor: the x/y/w/h a
// compositor reads to place the popup relative to its parent.
func (s *Surface) PopupGetPosition() (x, y, w, h int) {
	p := s.popup
	return p.geometry.X, p.geometry.Y, p.geometry.W, p.geometry.H
}

// Grab is xdg_popup.grab: it requests that this popup take the seat's
// exclusive pointer and keyboard grab, chained on top of the popup that is
// currently topmost in the seat's grab, if any.
func (s *Surface) Grab(seat wire.Seat, serial uint32) error {
	if s.role != RolePopup {
		return protoErr(ErrInvalidGrab, "xdg_popup", "grab requires a popup surface")
	}
	if s.popup.committed {
		return protoErr(ErrInvalidGrab, "xdg_popup", "xdg_popup is already mapped")
	}
	if !seat.ValidateGrabSerial(serial) {
		s.shell.logger.Printf("xdg_popup.grab: stale grab serial %d, ignoring", serial)
		return nil
	}

	g := s.shell.grabFor(seat)
	topmost := g.topmost()
	parentIsToplevel := s.popup.parent != nil && s.popup.parent.role == RoleToplevel

	if (topmost == nil && !parentIsToplevel) || (topmost != nil && topmost != s.popup.parent) {
		return protoErr(ErrNotTheTopmostPopup, "xdg_popup", "popup grab requested out of order")
	}

	s.popup.grab = g
	g.chain = append(g.chain, s)
	if len(g.chain) == 1 {
		g.client = s.client
		g.pointerGrab = &popupGrabPointer{grab: g}
		g.keyboardGrab = &popupGrabKeyboard{grab: g}
		seat.StartPointerGrab(g.pointerGrab)
		seat.StartKeyboardGrab(g.keyboardGrab)
	}
	return nil
}

// PopupAt is the recursive hit-test: a point only hits a popup child when it
// falls both inside that popup's rectangle and inside its underlying
// surface's input region, so the rectangle bound is checked before sx/sy is
// translated into the child's local coordinate frame and recursed into.
// Children are tried topmost-first, then this surface itself.
func (s *Surface) PopupAt(sx, sy float64) (hit *Surface, lx, ly float64, ok bool) {
	for i := len(s.popups) - 1; i >= 0; i-- {
		p := s.popups[i]
		g := p.popup.geometry
		if sx < float64(g.X) || sy < float64(g.Y) || sx >= float64(g.X+g.W) || sy >= float64(g.Y+g.H) {
			continue
		}
		px := sx - float64(g.X)
		py := sy - float64(g.Y)
		if hit, lx, ly, ok = p.PopupAt(px, py); ok {
			return hit, lx, ly, true
		}
	}
	if s.compositing.HitTest(int(sx), int(sy)) {
		return s, sx, sy, true
	}
	return nil, 0, 0, false
}

// destroyPopupRole unwinds this popup's place in its grab chain. Destroying
// anything but the topmost popup is a client error, but the grab still
// unwinds: the error is reported through the normal protocol-error escape
// hatch rather than blocking destruction.
func (s *Surface) destroyPopupRole() {
	p := s.popup
	if p.grab != nil && p.grab.topmost() != s {
		if s.handlers.OnProtocolError != nil {
			s.handlers.OnProtocolError(protoErr(ErrNotTheTopmostPopup, "xdg_popup", "popup destroyed out of order"))
		}
	}
	if p.parent != nil {
		removeSurfaceValue(&p.parent.popups, s)
	}
	if p.grab == nil {
		return
	}
	g := p.grab
	p.grab = nil
	for i, m := range g.chain {
		if m == s {
			g.chain = append(g.chain[:i], g.chain[i+1:]...)
			break
		}
	}
	if len(g.chain) == 0 {
		g.endGrabs()
		g.shell.forgetGrab(g)
	}
}

func removeSurfaceValue(slice *[]*Surface, s *Surface) {
	for i, x := range *slice {
		if x == s {
			*slice = append((*slice)[:i], (*slice)[i+1:]...)
			return
		}
	}
}
