// Command xdgshell-layout is a debug visualizer: it drives a Shell
// through a small toplevel+popup scene using the in-process fakes from
// internal/wiretest, renders the resulting geometry as nested rectangles,
// and either opens a live SDL2 window or writes a PNG snapshot with
// -out, for use in headless debugging sessions.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/KononK/resize"
	"github.com/daaku/swizzle"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/friedelschoen/xdgshell"
	"github.com/friedelschoen/xdgshell/internal/layoutimage"
	"github.com/friedelschoen/xdgshell/internal/wiretest"
)

func main() {
	zoom := flag.Float64("zoom", 1.5, "upscale factor applied to the rendered canvas")
	out := flag.String("out", "", "write a PNG snapshot to this path instead of opening a window")
	toplevelColor := flag.String("toplevel-color", "#3b82f6", "border color for the toplevel rect")
	popupColor := flag.String("popup-color", "#f59e0b", "fill color for popup rects")
	flag.Parse()

	scene, err := buildScene()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, scene.toplevel.W, scene.toplevel.H))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.NRGBA{0x11, 0x11, 0x11, 0xff}), image.Point{}, draw.Src)

	tc, err := layoutimage.ParseColor(*toplevelColor)
	if err != nil {
		log.Fatalf("toplevel color: %v", err)
	}
	pc, err := layoutimage.ParseColor(*popupColor)
	if err != nil {
		log.Fatalf("popup color: %v", err)
	}

	drawBorder(canvas, image.Rect(0, 0, scene.toplevel.W, scene.toplevel.H), tc, 2)
	layoutimage.DrawLabel(canvas, image.Pt(6, 16), "toplevel", tc)
	for i, p := range scene.popups {
		view := &layoutimage.SubImage{Src: canvas, Rect: image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)}
		draw.Draw(view, view.Bounds(), image.NewUniform(pc), image.Point{}, draw.Over)
		drawBorder(canvas, image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H), color.NRGBA{0xff, 0xff, 0xff, 0xff}, 1)
		layoutimage.DrawLabel(canvas, image.Pt(p.X+4, p.Y+13), fmt.Sprintf("popup %d", i), color.NRGBA{0x11, 0x11, 0x11, 0xff})
	}

	z := *zoom
	scaled := resize.Resize(uint(float64(canvas.Bounds().Dx())*z), uint(float64(canvas.Bounds().Dy())*z), canvas, resize.Bilinear)

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		if err := png.Encode(f, scaled); err != nil {
			log.Fatalf("encode png: %v", err)
		}
		return
	}

	if err := showWindow(scaled); err != nil {
		log.Fatalf("show window: %v", err)
	}
}

// rect is the plain geometry the visualizer renders; it is produced from
// the real xdgshell types below, not a recomputation of its own.
type rect struct{ X, Y, W, H int }

type scene struct {
	toplevel rect
	popups   []rect
}

// buildScene drives an actual Shell through role assignment, configure,
// and popup positioning, then reads back the geometry it computed.
func buildScene() (scene, error) {
	display := &wiretest.Display{}
	loop := &wiretest.EventLoop{}
	shell := xdgshell.NewShell(display, loop, xdgshell.ShellOptions{})
	defer shell.Destroy()

	client := shell.CreateClient(xdgshell.ClientHandlers{})

	toplevelSurface := &wiretest.CompositingSurface{W: 480, H: 320}
	var configureSerial uint32
	toplevel := client.CreateSurface(toplevelSurface, xdgshell.SurfaceHandlers{
		OnSurfaceConfigure: func(serial uint32) { configureSerial = serial },
	})
	if err := toplevel.AssignToplevel(); err != nil {
		return scene{}, err
	}
	toplevel.SetSize(480, 320)
	loop.RunIdle()
	toplevelSurface.Buffer = true
	if err := toplevel.AckConfigure(configureSerial); err != nil {
		return scene{}, err
	}
	toplevelSurface.Commit()

	positioner := client.CreatePositioner()
	if err := positioner.SetSize(160, 90); err != nil {
		return scene{}, err
	}
	if err := positioner.SetAnchorRect(0, 0, 480, 320); err != nil {
		return scene{}, err
	}
	if err := positioner.SetAnchor(xdgshell.AnchorBottomRight); err != nil {
		return scene{}, err
	}
	if err := positioner.SetGravity(xdgshell.GravityTopLeft); err != nil {
		return scene{}, err
	}

	popupSurface := &wiretest.CompositingSurface{}
	popup := client.CreateSurface(popupSurface, xdgshell.SurfaceHandlers{})
	if err := popup.AssignPopup(toplevel, positioner); err != nil {
		return scene{}, err
	}
	popupSurface.Commit()
	loop.RunIdle()

	px, py, pw, ph := popup.PopupGetPosition()

	return scene{
		toplevel: rect{0, 0, 480, 320},
		popups:   []rect{{px, py, pw, ph}},
	}, nil
}

func drawBorder(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), image.NewUniform(c), image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), image.NewUniform(c), image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), image.NewUniform(c), image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), image.NewUniform(c), image.Point{}, draw.Over)
}

// showWindow blits img into a live SDL2 window. It converts img's RGBA
// byte order to BGRA in place with swizzle before handing the pixels to
// an sdl.PIXELFORMAT_BGRA32 texture, since the canvas is always produced
// as image.RGBA.
func showWindow(img image.Image) error {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		converted := image.NewRGBA(b)
		draw.Draw(converted, b, img, b.Min, draw.Src)
		rgba = converted
	}
	swizzle.BGRA(rgba.Pix)

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	win, err := sdl.CreateWindow("xdgshell-layout", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_BGRA32, sdl.TEXTUREACCESS_STATIC, int32(w), int32(h))
	if err != nil {
		return err
	}
	defer texture.Destroy()
	if err := texture.Update(nil, rgba.Pix, rgba.Stride); err != nil {
		return err
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				return nil
			}
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
}
