package xdgshell

import (
	"log"
	"os"

	"github.com/friedelschoen/xdgshell/internal/idset"
	"github.com/friedelschoen/xdgshell/wire"
)

// Logger is satisfied directly by *log.Logger; it exists so a library
// consumer can swap in their own sink without this package depending on
// one.
type Logger interface {
	Printf(format string, args ...any)
}

// ShellOptions configures a Shell at construction time, mirroring the
// plain-struct configuration shape the teacher corpus uses (ctxmenu.Config)
// rather than reaching for a config-file/env parser no example in the
// corpus uses for a library-shaped component.
type ShellOptions struct {
	// PingTimeoutMillis is the duration a client has to answer a ping
	// before ping_timeout fires on its surfaces. Defaults to 10000, the
	// same default wlroots' xdg-shell implementation ships.
	PingTimeoutMillis int

	// OnNewSurface fires exactly once per surface, the first time it is
	// both configured and committed.
	OnNewSurface func(*Surface)

	// ConstrainPopup is the constraint-adjustment policy hook spec'd in
	// §4.1 step 4. Left nil, popups are never adjusted (the NONE path).
	ConstrainPopup func(geometry Rect, positioner Positioner, parent Rect) Rect

	Logger Logger
}

// Shell is the process-wide registry: factory for Clients, owner of the
// per-seat popup grab table, source of the new_surface event.
type Shell struct {
	display wire.Display
	loop    wire.EventLoop

	pingTimeoutMillis int
	onNewSurface      func(*Surface)
	constrainPopup    func(geometry Rect, positioner Positioner, parent Rect) Rect
	logger            Logger

	clients *idset.Set[*Client]
	grabs   map[wire.Seat]*PopupGrab

	destroyed bool
}

// NewShell is shell_create(display). The event loop and display
// collaborators are required; everything else in ShellOptions has a
// sensible zero value.
func NewShell(display wire.Display, loop wire.EventLoop, opts ShellOptions) *Shell {
	timeout := opts.PingTimeoutMillis
	if timeout <= 0 {
		timeout = 10000
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "xdgshell: ", log.LstdFlags)
	}
	return &Shell{
		display:           display,
		loop:              loop,
		pingTimeoutMillis: timeout,
		onNewSurface:      opts.OnNewSurface,
		constrainPopup:    opts.ConstrainPopup,
		logger:            logger,
		clients:           idset.New[*Client](),
		grabs:             make(map[wire.Seat]*PopupGrab),
	}
}

// CreateClient registers a new per-connection Client. There is no wire
// request for this: the codec adapter calls it when a client binds the
// wm_base global.
func (sh *Shell) CreateClient(handlers ClientHandlers) *Client {
	c := &Client{shell: sh, handlers: handlers}
	sh.clients.Add(c)
	return c
}

func (sh *Shell) forgetClient(c *Client) {
	sh.clients.Remove(c)
}

// Ping is shell.ping(surface): shell_create(...); surface_ping(surface)
// in the compositor-facing API (§6).
func (sh *Shell) Ping(s *Surface) {
	c := s.client
	if c.pingSerial != 0 {
		return // already pinged
	}
	c.pingSerial = sh.display.NextSerial()
	if c.pingTimer == nil {
		c.pingTimer = sh.loop.AddTimer(func() { c.handlePingTimeout() })
	}
	c.pingTimer.Update(sh.pingTimeoutMillis)
	if c.handlers.SendPing != nil {
		c.handlers.SendPing(c.pingSerial)
	}
}

// Pong is wm_base.pong(serial).
func (sh *Shell) Pong(c *Client, serial uint32) {
	if c.pingSerial != serial {
		return
	}
	if c.pingTimer != nil {
		c.pingTimer.Update(0)
	}
	c.pingSerial = 0
}

func (sh *Shell) emitNewSurface(s *Surface) {
	if sh.onNewSurface != nil {
		sh.onNewSurface(s)
	}
}

// grabFor returns the PopupGrab for seat, creating it lazily on first use.
func (sh *Shell) grabFor(seat wire.Seat) *PopupGrab {
	if g, ok := sh.grabs[seat]; ok {
		return g
	}
	g := newPopupGrab(sh, seat)
	sh.grabs[seat] = g
	return g
}

func (sh *Shell) forgetGrab(g *PopupGrab) {
	if sh.grabs[g.seat] == g {
		delete(sh.grabs, g.seat)
	}
}

// Destroy cascades to every owned Client, which in turn cascades to their
// Surfaces. Idempotent.
func (sh *Shell) Destroy() {
	if sh.destroyed {
		return
	}
	sh.destroyed = true
	var clients []*Client
	sh.clients.Each(func(c *Client) { clients = append(clients, c) })
	for _, c := range clients {
		c.destroyLocked()
	}
}
