// Command xdgshelldemo drives a Shell through one client/toplevel/popup
// lifecycle without a real compositor, printing every event it emits.
// It exists as a smoke-testable walkthrough of the package's event
// ordering, the same role a small main.go plays in the corpus's other
// single-purpose commands.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/friedelschoen/xdgshell"
	"github.com/friedelschoen/xdgshell/internal/wiretest"
)

func main() {
	pingTimeout := flag.Int("ping-timeout", 10000, "client ping timeout in milliseconds")
	flag.Parse()

	logger := log.New(os.Stdout, "", 0)

	display := &wiretest.Display{}
	loop := &wiretest.EventLoop{}

	shell := xdgshell.NewShell(display, loop, xdgshell.ShellOptions{
		PingTimeoutMillis: *pingTimeout,
		OnNewSurface: func(s *xdgshell.Surface) {
			logger.Printf("new_surface")
		},
		Logger: logger,
	})
	defer shell.Destroy()

	var lastPing uint32
	client := shell.CreateClient(xdgshell.ClientHandlers{
		SendPing: func(serial uint32) {
			lastPing = serial
			logger.Printf("wm_base.ping serial=%d", serial)
		},
	})

	var lastToplevelConfigure uint32
	toplevelSurface := &wiretest.CompositingSurface{W: 800, H: 600}
	toplevel := client.CreateSurface(toplevelSurface, xdgshell.SurfaceHandlers{
		OnSurfaceConfigure: func(serial uint32) {
			lastToplevelConfigure = serial
			logger.Printf("toplevel xdg_surface.configure serial=%d", serial)
		},
		OnToplevelConfigure: func(w, h int, states []xdgshell.State) {
			logger.Printf("xdg_toplevel.configure %dx%d states=%v", w, h, states)
		},
		OnClose: func() { logger.Printf("xdg_toplevel.close") },
	})
	if err := toplevel.AssignToplevel(); err != nil {
		log.Fatalf("assign toplevel: %v", err)
	}

	toplevel.SetSize(800, 600)
	toplevel.SetActivated(true)
	loop.RunIdle()

	toplevelSurface.Buffer = true
	if err := toplevel.AckConfigure(lastToplevelConfigure); err != nil {
		logger.Printf("ack_configure: %v", err)
	}
	toplevelSurface.Commit()

	positioner := client.CreatePositioner()
	positioner.SetSize(200, 100)
	positioner.SetAnchorRect(0, 0, 800, 600)
	positioner.SetAnchor(xdgshell.AnchorBottomLeft)
	positioner.SetGravity(xdgshell.GravityBottomRight)

	popupSurface := &wiretest.CompositingSurface{}
	popup := client.CreateSurface(popupSurface, xdgshell.SurfaceHandlers{
		OnSurfaceConfigure: func(serial uint32) { logger.Printf("popup xdg_surface.configure serial=%d", serial) },
		OnPopupConfigure: func(x, y, w, h int) {
			logger.Printf("xdg_popup.configure %d,%d %dx%d", x, y, w, h)
		},
		OnPopupDone: func() { logger.Printf("xdg_popup.popup_done") },
	})
	if err := popup.AssignPopup(toplevel, positioner); err != nil {
		log.Fatalf("assign popup: %v", err)
	}
	popupSurface.Commit()
	loop.RunIdle()

	shell.Ping(toplevel)
	shell.Pong(client, lastPing)

	logger.Printf("done")
}
