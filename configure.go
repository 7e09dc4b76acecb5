package xdgshell

// scheduleToplevelConfigure is schedule_configure for a toplevel: it
// coalesces any number of setter calls (and the initial role-assignment
// commit) between now and the next idle tick into a single configure. It
// returns the serial that will be sent, or 0 if no configure was (newly)
// scheduled.
//
// toplevelPendingSame unconditionally returns false while the surface has
// never been configured, so the very first commit schedules a configure
// through this same path with no separate "force" case needed.
func (s *Surface) scheduleToplevelConfigure() uint32 {
	if s.toplevelPendingSame() {
		if s.configureIdle != nil {
			// pending state reverted to what's already been sent: cancel the
			// armed idle instead of letting a stale configure go out.
			s.configureIdle.Cancel()
			s.configureIdle = nil
		}
		return 0
	}
	if s.configureIdle != nil {
		return 0 // a send is already pending; it will pick up the latest baseline
	}
	serial := s.display.NextSerial()
	s.armIdle(serial)
	return serial
}

// toplevelBaseline is the configure target implied by the toplevel's
// current desired state: the size the compositor last requested (0x0
// meaning "client's choice") plus its staged state flags.
func (s *Surface) toplevelBaseline() ToplevelDimState {
	t := s.toplevel
	return ToplevelDimState{
		Width:      t.desiredWidth,
		Height:     t.desiredHeight,
		Maximized:  t.maximized,
		Fullscreen: t.fullscreen,
		Resizing:   t.resizing,
		Activated:  t.activated,
	}
}

func (s *Surface) toplevelPendingSame() bool {
	if !s.configured {
		return false
	}
	return s.toplevel.lastSent == s.toplevelBaseline()
}

// armIdle schedules serial to be sent at the next idle tick. It is shared
// by the toplevel coalescing path (which allocates serial up front so the
// setter that scheduled the configure can return it) and the popup path (which only ever arms
// once, immediately after its first commit).
func (s *Surface) armIdle(serial uint32) {
	if s.configureIdle != nil {
		return
	}
	s.configureIdle = s.loop.AddIdle(func() {
		s.configureIdle = nil
		s.sendConfigure(serial)
	})
}

func (s *Surface) sendConfigure(serial uint32) {
	switch s.role {
	case RoleToplevel:
		state := s.toplevelBaseline()
		s.toplevel.lastSent = state
		s.configureList = append(s.configureList, ConfigureRecord{
			Serial:        serial,
			ToplevelState: state,
			Width:         state.Width,
			Height:        state.Height,
		})
		if s.handlers.OnSurfaceConfigure != nil {
			s.handlers.OnSurfaceConfigure(serial)
		}
		if s.handlers.OnToplevelConfigure != nil {
			s.handlers.OnToplevelConfigure(state.Width, state.Height, state.states())
		}
	case RolePopup:
		g := s.popup.geometry
		s.configureList = append(s.configureList, ConfigureRecord{
			Serial: serial,
			Width:  g.W,
			Height: g.H,
		})
		if s.handlers.OnSurfaceConfigure != nil {
			s.handlers.OnSurfaceConfigure(serial)
		}
		if s.handlers.OnPopupConfigure != nil {
			s.handlers.OnPopupConfigure(g.X, g.Y, g.W, g.H)
		}
	}
}
