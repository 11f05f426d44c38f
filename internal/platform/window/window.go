// Package window runs the arcade in a desktop window with Ebitengine.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/session"
)

// Options configures the window host.
type Options struct {
	FPS    int
	WorldW float64
	WorldH float64
	Title  string
}

// Host adapts a session to ebiten.Game.
type Host struct {
	ctrl    *session.Controller
	tracker *core.InputTracker
	canvas  *canvas
	isDown  func(ebiten.Key) bool
}

// NewHost creates a host for the session.
func NewHost(ctrl *session.Controller, opts Options) *Host {
	return &Host{
		ctrl:    ctrl,
		tracker: core.NewInputTracker(),
		canvas: &canvas{
			w:      opts.WorldW,
			h:      opts.WorldH,
			labels: make(map[string]*ebiten.Image),
		},
		isDown: ebiten.IsKeyPressed,
	}
}

// Update runs one tick.
func (h *Host) Update() error {
	frame := h.tracker.Next(heldActions(h.isDown))
	if h.ctrl.Step(frame).Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the session.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	h.canvas.dst = screen
	h.ctrl.Render(h.canvas)
}

// Layout keeps the logical screen at the world size.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.canvas.w), int(h.canvas.h)
}

// Run opens the window and blocks until the session quits or the window
// is closed.
func Run(ctrl *session.Controller, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	ebiten.SetWindowSize(int(opts.WorldW), int(opts.WorldH))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.FPS)

	err := ebiten.RunGame(NewHost(ctrl, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
