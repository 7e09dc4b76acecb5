package xdgshell

import (
	"testing"

	"github.com/friedelschoen/xdgshell/internal/wiretest"
)

func makeConfiguredToplevel(t *testing.T, client *Client) (*Surface, *wiretest.CompositingSurface) {
	t.Helper()
	comp := &wiretest.CompositingSurface{W: 400, H: 300}
	var serial uint32
	s := client.CreateSurface(comp, SurfaceHandlers{
		OnSurfaceConfigure: func(sr uint32) { serial = sr },
	})
	if err := s.AssignToplevel(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(400, 300)
	client.shell.loop.(*wiretest.EventLoop).RunIdle()
	comp.Buffer = true
	if err := s.AckConfigure(serial); err != nil {
		t.Fatal(err)
	}
	comp.Commit()
	return s, comp
}

func makePopup(t *testing.T, client *Client, parent *Surface, anchor Anchor) (*Surface, *wiretest.CompositingSurface) {
	t.Helper()
	positioner := NewPositioner()
	if err := positioner.SetSize(50, 50); err != nil {
		t.Fatal(err)
	}
	if err := positioner.SetAnchorRect(0, 0, 400, 300); err != nil {
		t.Fatal(err)
	}
	if err := positioner.SetAnchor(anchor); err != nil {
		t.Fatal(err)
	}
	comp := &wiretest.CompositingSurface{HitW: 50, HitH: 50}
	s := client.CreateSurface(comp, SurfaceHandlers{})
	if err := s.AssignPopup(parent, positioner); err != nil {
		t.Fatal(err)
	}
	// Left uncommitted: xdg_popup.grab is only accepted before the popup's
	// first commit.
	return s, comp
}

func TestPopupGrabFirstInChainRequiresToplevelParent(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	parent, _ := makeConfiguredToplevel(t, client)
	popup, _ := makePopup(t, client, parent, AnchorTopLeft)

	seat := &wiretest.Seat{ValidSerial: true}
	if err := popup.Grab(seat, 1); err != nil {
		t.Fatalf("grab on the root popup should succeed: %v", err)
	}
	if seat.Pointer == nil || seat.Keyboard == nil {
		t.Fatal("grab should start both a pointer and keyboard grab")
	}
}

func TestPopupGrabOutOfOrderIsRejected(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	parent, _ := makeConfiguredToplevel(t, client)
	popupA, _ := makePopup(t, client, parent, AnchorTopLeft)
	popupB, _ := makePopup(t, client, parent, AnchorBottomRight)

	seat := &wiretest.Seat{ValidSerial: true}
	if err := popupA.Grab(seat, 1); err != nil {
		t.Fatal(err)
	}
	// popupB's parent is the toplevel, not popupA, so it cannot grab while
	// popupA is topmost.
	err := popupB.Grab(seat, 2)
	pe, ok := err.(*ProtocolError)
	if !ok || pe.Code != ErrNotTheTopmostPopup {
		t.Fatalf("want ErrNotTheTopmostPopup, got %v", err)
	}
}

func TestPopupGrabChainsOntoTopmostPopup(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	parent, _ := makeConfiguredToplevel(t, client)
	popupA, _ := makePopup(t, client, parent, AnchorTopLeft)

	seat := &wiretest.Seat{ValidSerial: true}
	if err := popupA.Grab(seat, 1); err != nil {
		t.Fatal(err)
	}

	popupB, _ := makePopup(t, client, popupA, AnchorBottomRight)
	if err := popupB.Grab(seat, 2); err != nil {
		t.Fatalf("grab chained on the topmost popup should succeed: %v", err)
	}
	if popupA.popup.grab != popupB.popup.grab {
		t.Fatal("both popups should share the same PopupGrab")
	}
}

func TestPopupDestroyUnwindsGrabChainAndEndsSeatGrab(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	parent, _ := makeConfiguredToplevel(t, client)
	popupA, _ := makePopup(t, client, parent, AnchorTopLeft)

	seat := &wiretest.Seat{ValidSerial: true}
	if err := popupA.Grab(seat, 1); err != nil {
		t.Fatal(err)
	}
	popupB, _ := makePopup(t, client, popupA, AnchorBottomRight)
	if err := popupB.Grab(seat, 2); err != nil {
		t.Fatal(err)
	}

	popupB.Destroy()
	if seat.Pointer == nil {
		t.Fatal("seat grab should still be active while popupA remains")
	}

	popupA.Destroy()
	if seat.Pointer != nil || seat.Keyboard != nil {
		t.Fatal("seat grab should end once the chain is empty")
	}
}

func TestPointerButtonOutsideChainDismissesPopups(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	parent, _ := makeConfiguredToplevel(t, client)
	popup, _ := makePopup(t, client, parent, AnchorTopLeft)

	var done bool
	popup.handlers.OnPopupDone = func() { done = true }

	seat := &wiretest.Seat{ValidSerial: true}
	if err := popup.Grab(seat, 1); err != nil {
		t.Fatal(err)
	}

	pointerGrab := seat.Pointer
	pointerGrab.Button(0, 0, 1) // no Enter happened yet, so nothing is focused
	if !done {
		t.Fatal("a button press with nothing focused should dismiss the chain")
	}
	if seat.Pointer != nil {
		t.Fatal("dismissing the chain should end the seat's pointer grab")
	}
}
