package xdgshell

import (
	"testing"

	"github.com/friedelschoen/xdgshell/internal/wiretest"
)

func TestPingSendsNonZeroSerial(t *testing.T) {
	shell, _, _ := newTestShell()
	var sent uint32
	client := shell.CreateClient(ClientHandlers{
		SendPing: func(serial uint32) { sent = serial },
	})
	comp := &wiretest.CompositingSurface{}
	s := client.CreateSurface(comp, SurfaceHandlers{})

	shell.Ping(s)
	if sent == 0 {
		t.Fatal("Ping should have sent a non-zero serial")
	}
}

func TestPingIsNoOpWhileAlreadyPinged(t *testing.T) {
	shell, _, _ := newTestShell()
	var count int
	client := shell.CreateClient(ClientHandlers{
		SendPing: func(uint32) { count++ },
	})
	comp := &wiretest.CompositingSurface{}
	s := client.CreateSurface(comp, SurfaceHandlers{})

	shell.Ping(s)
	shell.Ping(s)
	if count != 1 {
		t.Fatalf("want a single ping while one is outstanding, got %d", count)
	}
}

func TestPongClearsOutstandingPing(t *testing.T) {
	shell, _, _ := newTestShell()
	var serial uint32
	var second int
	client := shell.CreateClient(ClientHandlers{
		SendPing: func(s uint32) {
			serial = s
			second++
		},
	})
	comp := &wiretest.CompositingSurface{}
	s := client.CreateSurface(comp, SurfaceHandlers{})

	shell.Ping(s)
	shell.Pong(client, serial)
	shell.Ping(s)
	if second != 2 {
		t.Fatalf("want a second ping to go out after pong, got %d sends", second)
	}
}

func TestPongWithWrongSerialIsIgnored(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{SendPing: func(uint32) {}})
	comp := &wiretest.CompositingSurface{}
	s := client.CreateSurface(comp, SurfaceHandlers{})

	shell.Ping(s)
	shell.Pong(client, 999999)
	shell.Ping(s) // should still be a no-op: the original ping is still outstanding
}

func TestPingTimeoutFiresOnEverySurfaceOfClient(t *testing.T) {
	shell, _, loop := newTestShell()
	client := shell.CreateClient(ClientHandlers{SendPing: func(uint32) {}})
	comp1 := &wiretest.CompositingSurface{}
	comp2 := &wiretest.CompositingSurface{}
	var fired1, fired2 bool
	s1 := client.CreateSurface(comp1, SurfaceHandlers{OnPingTimeout: func() { fired1 = true }})
	client.CreateSurface(comp2, SurfaceHandlers{OnPingTimeout: func() { fired2 = true }})

	shell.Ping(s1)
	loop.FireTimer()

	if !fired1 || !fired2 {
		t.Fatalf("want ping timeout to fire on every surface of the client, got %v %v", fired1, fired2)
	}
}

func TestShellDestroyCascadesToClientsAndSurfaces(t *testing.T) {
	shell, _, _ := newTestShell()
	client := shell.CreateClient(ClientHandlers{})
	comp := &wiretest.CompositingSurface{}
	var destroyed bool
	client.CreateSurface(comp, SurfaceHandlers{OnDestroy: func() { destroyed = true }})

	shell.Destroy()
	shell.Destroy() // idempotent

	if !destroyed {
		t.Fatal("Shell.Destroy should cascade to owned surfaces")
	}
}
