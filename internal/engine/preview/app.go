// Package preview renders an animated gallery of the quad mesh modes in an
// SDL2 window.
package preview

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/uimesh/internal/config"
	"github.com/Faultbox/uimesh/internal/engine/input"
	"github.com/Faultbox/uimesh/internal/engine/mesh"
	"github.com/Faultbox/uimesh/internal/engine/window"
	"github.com/Faultbox/uimesh/internal/logger"
	"github.com/Faultbox/uimesh/pkg/math"
)

// radialMethods is the cycle order for the space key.
var radialMethods = []mesh.FillMethod{
	mesh.FillRadial360,
	mesh.FillRadial180,
	mesh.FillRadial90,
	mesh.FillHorizontal,
	mesh.FillVertical,
}

// App owns the window, the renderer and the demo elements.
type App struct {
	cfg      *config.Config
	win      *window.Window
	renderer *Renderer
	input    *input.Input

	elements []*Element
	filled   *Element

	methodIdx int
	fill      float32
	width     int
	height    int
}

// New creates the window, the GL context and the demo gallery.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(window.Config{
		Title:  "uimesh viewer",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	renderer, err := NewRenderer()
	if err != nil {
		win.Close()
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		win:      win,
		renderer: renderer,
		input:    input.New(),
		width:    cfg.Graphics.Width,
		height:   cfg.Graphics.Height,
	}
	a.buildGallery()
	a.layout()

	return a, nil
}

// demoSprite describes a 128px sprite with a 32px border. The checker
// pattern in the shader takes the place of its texture.
func demoSprite() *mesh.Sprite {
	return &mesh.Sprite{
		OuterUV:       math.Vec4{0, 0, 1, 1},
		InnerUV:       math.Vec4{0.25, 0.25, 0.75, 0.75},
		Border:        math.Vec4{32, 32, 32, 32},
		Size:          math.Vec2{X: 128, Y: 128},
		PixelsPerUnit: 1,
		Repeat:        true,
	}
}

// buildGallery creates one element per mesh mode. Rects are assigned by
// layout.
func (a *App) buildGallery() {
	spr := demoSprite()

	simple := mesh.DefaultParams()
	simple.PreserveAspect = true

	sliced := mesh.DefaultParams()
	sliced.Mode = mesh.ModeSliced

	tiled := mesh.DefaultParams()
	tiled.Mode = mesh.ModeTiled

	filled := mesh.DefaultParams()
	filled.Mode = mesh.ModeFilled
	filled.FillMethod = radialMethods[0]
	filled.FillClockwise = a.cfg.Demo.Clockwise

	var zero math.Rect
	a.elements = []*Element{
		NewElement("simple", zero, spr, [4]float32{0.9, 0.9, 0.9, 1}, simple),
		NewElement("sliced", zero, spr, [4]float32{0.55, 0.8, 0.55, 1}, sliced),
		NewElement("tiled", zero, spr, [4]float32{0.55, 0.65, 0.9, 1}, tiled),
		NewElement("filled", zero, spr, [4]float32{0.9, 0.7, 0.45, 1}, filled),
	}
	a.filled = a.elements[3]
}

// layout arranges the elements in a 2x2 grid for the current window size.
func (a *App) layout() {
	const margin = 24
	cellW := (float32(a.width) - 3*margin) / 2
	cellH := (float32(a.height) - 3*margin) / 2

	for i, e := range a.elements {
		col := float32(i % 2)
		row := float32(i / 2)
		e.SetRect(math.NewRect(
			margin+col*(cellW+margin),
			margin+row*(cellH+margin),
			cellW,
			cellH,
		))
	}
}

// Run drives the event loop until the window closes or escape is pressed.
func (a *App) Run() error {
	lastTicks := sdl.GetTicks()

	for {
		if quit := a.input.Update(); quit {
			return nil
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			return nil
		}

		for _, ev := range a.input.Events() {
			if ev.Type == input.EventWindowResize {
				a.width = ev.Width
				a.height = ev.Height
				a.layout()
			}
		}

		if a.input.IsKeyPressed(sdl.SCANCODE_SPACE) {
			a.methodIdx = (a.methodIdx + 1) % len(radialMethods)
			a.filled.Params.FillMethod = radialMethods[a.methodIdx]
			a.filled.MarkDirty()
			logger.Info("fill method changed",
				zap.Stringer("method", radialMethods[a.methodIdx]))
		}
		if a.input.IsKeyPressed(sdl.SCANCODE_C) {
			a.filled.Params.FillClockwise = !a.filled.Params.FillClockwise
			a.filled.MarkDirty()
		}

		now := sdl.GetTicks()
		dt := float32(now-lastTicks) / 1000
		lastTicks = now

		a.fill += a.cfg.Demo.FillSpeed * dt
		for a.fill > 1 {
			a.fill--
		}
		a.filled.SetFillAmount(a.fill)

		bg := a.cfg.Demo.Background
		gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		a.renderer.Begin(a.width, a.height)
		for _, e := range a.elements {
			if err := a.renderer.Draw(e); err != nil {
				return err
			}
		}
		a.renderer.End()

		a.win.SwapBuffers()
	}
}

// Close releases all resources.
func (a *App) Close() {
	for _, e := range a.elements {
		e.Dispose()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
