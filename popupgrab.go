package xdgshell

import "github.com/friedelschoen/xdgshell/wire"

// PopupGrab is the (shell, seat) grab chain: every popup descending from
// the same root toplevel that has requested an input grab on the same
// seat shares one PopupGrab, ordered bottom (oldest) to top (newest).
type PopupGrab struct {
	shell *Shell
	seat  wire.Seat

	// client is the only client whose popups may enter this grab, set once
	// from the first popup to request it.
	client *Client
	chain  []*Surface

	pointerGrab  *popupGrabPointer
	keyboardGrab *popupGrabKeyboard
}

func newPopupGrab(sh *Shell, seat wire.Seat) *PopupGrab {
	return &PopupGrab{shell: sh, seat: seat}
}

func (g *PopupGrab) topmost() *Surface {
	if len(g.chain) == 0 {
		return nil
	}
	return g.chain[len(g.chain)-1]
}

// ownsCompositing reports whether c is one of g.client's surfaces. Input
// delivered to any surface of that client keeps the grab alive; input
// delivered to a surface belonging to anyone else does not.
func (g *PopupGrab) ownsCompositing(c wire.CompositingSurface) bool {
	if g.client == nil {
		return false
	}
	for _, s := range g.client.surfaces {
		if s.compositing == c {
			return true
		}
	}
	return false
}

func (g *PopupGrab) endGrabs() {
	if g.pointerGrab != nil {
		g.seat.EndPointerGrab()
		g.pointerGrab = nil
	}
	if g.keyboardGrab != nil {
		g.seat.EndKeyboardGrab()
		g.keyboardGrab = nil
	}
}

// dismissAll fires popup_done on every popup in the chain, topmost first,
// and releases the seat grab. It is the grab-initiated counterpart to a
// client explicitly destroying its popup: that path runs through
// Surface.destroyPopupRole instead and does not refire popup_done.
func (g *PopupGrab) dismissAll() {
	chain := g.chain
	g.chain = nil
	for i := len(chain) - 1; i >= 0; i-- {
		p := chain[i]
		p.popup.grab = nil
		if p.handlers.OnPopupDone != nil {
			p.handlers.OnPopupDone()
		}
	}
	g.endGrabs()
	g.shell.forgetGrab(g)
}

// popupGrabPointer is the pointer-grab vtable installed on the seat while a
// PopupGrab is active. Entering a surface outside grab.client's own surfaces
// clears pointer focus instead of forwarding enter, matching
// xdg_pointer_grab_impl's wlr_seat_pointer_clear_focus branch; only a button
// press with nothing focused dismisses the chain.
type popupGrabPointer struct {
	grab    *PopupGrab
	focused wire.CompositingSurface
}

func (p *popupGrabPointer) Enter(surface wire.CompositingSurface, sx, sy float64) {
	if !p.grab.ownsCompositing(surface) {
		p.grab.seat.ClearPointerFocus()
		p.focused = nil
		return
	}
	p.focused = surface
	p.grab.seat.SendEnter(surface, sx, sy)
}

func (p *popupGrabPointer) Motion(t uint32, sx, sy float64) {
	if p.focused == nil {
		return
	}
	p.grab.seat.SendMotion(t, sx, sy)
}

func (p *popupGrabPointer) Button(t, button, state uint32) {
	if p.focused == nil {
		p.grab.dismissAll()
		return
	}
	p.grab.seat.SendButton(t, button, state)
}

func (p *popupGrabPointer) Axis(t, axis uint32, value float64) {
	if p.focused == nil {
		return
	}
	p.grab.seat.SendAxis(t, axis, value)
}

func (p *popupGrabPointer) Cancel() {
	p.grab.dismissAll()
}

// popupGrabKeyboard is the matching keyboard-grab vtable. As with the
// pointer grab, focus entering a foreign surface does not by itself
// dismiss the chain.
type popupGrabKeyboard struct {
	grab *PopupGrab
}

// Enter has nothing to forward: the wire.Seat interface models keyboard
// focus as implicit in SendKey/SendModifiers, with no separate enter
// notification the way pointer focus has SendEnter.
func (k *popupGrabKeyboard) Enter(surface wire.CompositingSurface) {}

func (k *popupGrabKeyboard) Key(t, key, state uint32) {
	k.grab.seat.SendKey(t, key, state)
}

func (k *popupGrabKeyboard) Modifiers(depressed, latched, locked, group uint32) {
	k.grab.seat.SendModifiers(depressed, latched, locked, group)
}

func (k *popupGrabKeyboard) Cancel() {
	k.grab.dismissAll()
}
