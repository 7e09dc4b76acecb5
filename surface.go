package xdgshell

import "github.com/friedelschoen/xdgshell/wire"

// Role is the xdg_surface role a Surface has taken on. It is set at most
// once: None can become Toplevel or Popup, but never the reverse, and
// never the other way around.
type Role int

const (
	RoleNone Role = iota
	RoleToplevel
	RolePopup
)

// SurfaceHandlers carries every event a Surface (in either role) can emit
// upward, plus the one host-side escape hatch (OnProtocolError) for
// failures detected where no error can be returned: on commit, and when a
// popup is destroyed out of grab order.
type SurfaceHandlers struct {
	// xdg_surface / xdg_toplevel / xdg_popup configure events.
	OnSurfaceConfigure  func(serial uint32)
	OnToplevelConfigure func(width, height int, states []State)
	OnPopupConfigure    func(x, y, w, h int)

	OnClose     func() // xdg_toplevel.close
	OnPopupDone func() // xdg_popup.popup_done

	OnPingTimeout func()
	OnDestroy     func()

	// OnNewPopup fires on a surface when a popup naming it as parent is
	// created.
	OnNewPopup func(popup *Surface)

	OnRequestMaximize       func()
	OnRequestFullscreen     func(fullscreen bool, output any)
	OnRequestMinimize       func()
	OnRequestMove           func(seat wire.Seat, serial uint32)
	OnRequestResize         func(seat wire.Seat, serial uint32, edges uint32)
	OnRequestShowWindowMenu func(seat wire.Seat, serial uint32, x, y int)

	OnProtocolError func(*ProtocolError)
}

// State is one flag in a toplevel configure's states array.
type State uint32

const (
	StateMaximized State = iota + 1
	StateFullscreen
	StateResizing
	StateActivated
)

// Surface holds the role-independent xdg_surface state plus, once a role
// is assigned, the matching role-specific block. Exactly one of toplevel
// and popup is non-nil once role != RoleNone.
type Surface struct {
	client      *Client
	shell       *Shell
	display     wire.Display
	loop        wire.EventLoop
	compositing wire.CompositingSurface
	handlers    SurfaceHandlers

	geometry        Rect
	nextGeometry    Rect
	hasNextGeometry bool

	configureList   []ConfigureRecord
	configureIdle   wire.IdleHandle
	configured      bool
	configureSerial uint32

	added bool // new_surface has fired for this surface

	role     Role
	toplevel *ToplevelState
	popup    *PopupState

	// popups is the non-owning list of popup children anchored on this
	// surface (whether this surface is itself a toplevel or a popup),
	// used for popup_at hit-testing.
	popups []*Surface

	destroyed bool
}

// ConfigureRecord is one outstanding, sent-but-not-yet-acked configure.
type ConfigureRecord struct {
	Serial        uint32
	ToplevelState ToplevelDimState // meaningful only for toplevel surfaces
	Width, Height int
}

// AssignToplevel is xdg_surface.get_toplevel.
func (s *Surface) AssignToplevel() error {
	if err := s.compositing.SetRole("xdg_toplevel"); err != nil {
		return err
	}
	s.role = RoleToplevel
	s.toplevel = &ToplevelState{surface: s}
	return nil
}

// AssignPopup is xdg_surface.get_popup. positioner is consumed by value:
// later mutations to it do not affect this popup's geometry.
func (s *Surface) AssignPopup(parent *Surface, positioner *Positioner) error {
	if !positioner.Complete() {
		return protoErr(ErrInvalidPositioner, "xdg_wm_base", "positioner object is not complete")
	}
	if err := s.compositing.SetRole("xdg_popup"); err != nil {
		return err
	}

	geometry := positioner.Geometry()
	if positioner.ConstraintAdjustment() != ConstraintNone && s.shell.constrainPopup != nil {
		geometry = s.shell.constrainPopup(geometry, *positioner, parent.geometry)
	}

	s.role = RolePopup
	s.popup = &PopupState{surface: s, parent: parent, geometry: geometry}
	parent.popups = append(parent.popups, s)

	if parent.handlers.OnNewPopup != nil {
		parent.handlers.OnNewPopup(s)
	}
	return nil
}

// SetWindowGeometry is xdg_surface.set_window_geometry: it stages the next
// window geometry, applied on the following commit.
func (s *Surface) SetWindowGeometry(x, y, w, h int) error {
	if s.role == RoleNone {
		return protoErr(ErrNotConstructed, "xdg_surface", "xdg_surface must have a role")
	}
	s.nextGeometry = Rect{X: x, Y: y, W: w, H: h}
	s.hasNextGeometry = true
	return nil
}

// AckConfigure is xdg_surface.ack_configure.
func (s *Surface) AckConfigure(serial uint32) error {
	if s.role == RoleNone {
		return protoErr(ErrNotConstructed, "xdg_surface", "xdg_surface must have a role")
	}

	idx := -1
	for i := range s.configureList {
		if s.configureList[i].Serial == serial {
			idx = i
			break
		}
		if s.configureList[i].Serial > serial {
			break
		}
	}
	if idx == -1 {
		return protoErr(ErrInvalidSurfaceState, "xdg_wm_base", "wrong configure serial: %d", serial)
	}

	popped := s.configureList[idx]
	s.configureList = s.configureList[idx+1:]

	if s.role == RoleToplevel {
		s.toplevel.next = popped.ToplevelState
	}

	s.configured = true
	s.configureSerial = serial
	return nil
}

// HandleCommit is the underlying compositing surface's commit
// notification. It is wired up automatically by Client.CreateSurface; a
// test fake calls it directly.
func (s *Surface) HandleCommit() error {
	if s.role == RoleNone {
		return protoErr(ErrNotConstructed, "xdg_surface", "xdg_surface must have a role")
	}
	if s.compositing.HasBuffer() && !s.configured {
		return protoErr(ErrUnconfiguredBuffer, "xdg_surface", "xdg_surface has never been configured")
	}

	if s.hasNextGeometry {
		s.geometry = s.nextGeometry
		s.hasNextGeometry = false
	}

	switch s.role {
	case RoleToplevel:
		if !s.compositing.HasBuffer() {
			s.scheduleToplevelConfigure()
			return nil
		}
		s.toplevel.current = s.toplevel.next
	case RolePopup:
		if !s.popup.committed {
			serial := s.display.NextSerial()
			s.armIdle(serial)
			s.popup.committed = true
		}
	}

	if s.configured && !s.added {
		s.added = true
		s.shell.emitNewSurface(s)
	}
	return nil
}

// Destroy is the xdg_surface/xdg_toplevel/xdg_popup destroy request.
func (s *Surface) Destroy() {
	s.client.removeSurface(s)
	s.destroyLocked()
}

func (s *Surface) handleCompositingDestroyed() {
	s.client.removeSurface(s)
	s.destroyLocked()
}

func (s *Surface) destroyLocked() {
	if s.destroyed {
		return
	}
	s.destroyed = true

	if s.configureIdle != nil {
		s.configureIdle.Cancel()
		s.configureIdle = nil
	}
	s.configureList = nil

	if s.role == RolePopup {
		s.destroyPopupRole()
	}
	if s.role == RoleToplevel && s.toplevel.parent != nil {
		s.toplevel.parent = nil
	}

	if s.handlers.OnDestroy != nil {
		s.handlers.OnDestroy()
	}
}
