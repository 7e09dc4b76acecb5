package xdgshell

import "github.com/friedelschoen/xdgshell/wire"

// ClientHandlers carries the one event a Client can emit upward:
// wm_base.ping.
type ClientHandlers struct {
	SendPing func(serial uint32)
}

// Client is the per-connection object: it owns its Surfaces in creation
// order and tracks the single outstanding ping, if any.
type Client struct {
	shell    *Shell
	handlers ClientHandlers

	surfaces []*Surface

	pingSerial uint32
	pingTimer  wire.TimerHandle

	destroyed bool
}

// CreatePositioner is xdg_wm_base.create_positioner. A Positioner's
// lifetime is independent of the Client that created it.
func (c *Client) CreatePositioner() *Positioner {
	return NewPositioner()
}

// CreateSurface is xdg_wm_base.get_xdg_surface: it wraps an existing
// compositing surface with role-less xdg_surface state.
func (c *Client) CreateSurface(compositing wire.CompositingSurface, handlers SurfaceHandlers) *Surface {
	s := &Surface{
		client:      c,
		shell:       c.shell,
		display:     c.shell.display,
		loop:        c.shell.loop,
		compositing: compositing,
		handlers:    handlers,
	}
	compositing.OnCommit(func() {
		if err := s.HandleCommit(); err != nil {
			if pe, ok := err.(*ProtocolError); ok && s.handlers.OnProtocolError != nil {
				s.handlers.OnProtocolError(pe)
			}
		}
	})
	compositing.OnDestroy(func() { s.handleCompositingDestroyed() })
	c.surfaces = append(c.surfaces, s)
	return s
}

// Destroy tears down the Client: its ping timer is cancelled and every
// owned Surface is destroyed. Idempotent.
func (c *Client) Destroy() {
	c.shell.forgetClient(c)
	c.destroyLocked()
}

func (c *Client) destroyLocked() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.pingTimer != nil {
		c.pingTimer.Cancel()
		c.pingTimer = nil
	}
	surfaces := c.surfaces
	c.surfaces = nil
	for _, s := range surfaces {
		s.destroyLocked()
	}
}

func (c *Client) handlePingTimeout() {
	for _, s := range c.surfaces {
		if s.handlers.OnPingTimeout != nil {
			s.handlers.OnPingTimeout()
		}
	}
	c.pingSerial = 0
}

func (c *Client) removeSurface(s *Surface) {
	for i, x := range c.surfaces {
		if x == s {
			c.surfaces = append(c.surfaces[:i], c.surfaces[i+1:]...)
			return
		}
	}
}
