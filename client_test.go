package xdgshell

import (
	"testing"

	"github.com/friedelschoen/xdgshell/internal/wiretest"
)

func TestClientDestroyCancelsPingTimerAndDestroysSurfaces(t *testing.T) {
	shell, _, loop := newTestShell()
	client := shell.CreateClient(ClientHandlers{SendPing: func(uint32) {}})
	comp := &wiretest.CompositingSurface{}
	var destroyed bool
	s := client.CreateSurface(comp, SurfaceHandlers{OnDestroy: func() { destroyed = true }})

	shell.Ping(s)
	client.Destroy()

	if !destroyed {
		t.Fatal("client destroy should cascade to its surfaces")
	}
	loop.FireTimer() // must be a no-op: the timer was cancelled
}

func TestCompositingDestroyRemovesSurfaceFromClient(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	comp := &wiretest.CompositingSurface{}
	client.CreateSurface(comp, SurfaceHandlers{})

	if len(client.surfaces) != 1 {
		t.Fatalf("want one surface registered, got %d", len(client.surfaces))
	}
	comp.Destroy()
	if len(client.surfaces) != 0 {
		t.Fatalf("want the surface removed after the compositing object is destroyed, got %d", len(client.surfaces))
	}
}

func TestCreatePositionerIsIndependentPerCall(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	a := client.CreatePositioner()
	b := client.CreatePositioner()
	if err := a.SetSize(10, 10); err != nil {
		t.Fatal(err)
	}
	if b.Complete() {
		t.Fatal("mutating one positioner must not affect another")
	}
}
