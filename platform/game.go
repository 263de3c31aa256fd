package platform

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/drift/config"
	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
)

// Overlay is drawn on top of the world each frame. The Dear ImGui backend
// satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game by translating Ebiten callbacks into frame events.
type Game struct {
	driver  *loop.Driver
	window  config.Window
	logger  *log.Logger
	poller  *GamepadPoller
	overlay Overlay
	reloads <-chan config.Config

	dt     float64
	events []sim.Event
}

type Option func(*Game)

// WithOverlay draws o above the world and brackets every update with its frame calls.
func WithOverlay(o Overlay) Option {
	return func(g *Game) { g.overlay = o }
}

// WithGamepads replaces the controller source.
func WithGamepads(r GamepadReader) Option {
	return func(g *Game) { g.poller = NewGamepadPoller(r) }
}

// WithReloads applies the sim section of every config received on ch.
func WithReloads(ch <-chan config.Config) Option {
	return func(g *Game) { g.reloads = ch }
}

func NewGame(driver *loop.Driver, window config.Window, logger *log.Logger, opts ...Option) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		driver: driver,
		window: window,
		logger: logger,
		poller: NewGamepadPoller(EbitenGamepads()),
		dt:     1.0 / float64(window.TPS),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Update() error {
	if g.window.ExitOnEscape && ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.applyReloads()

	g.events = g.poller.Poll(g.events[:0])
	for _, ev := range g.events {
		g.driver.Handle(ev, nil)
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.driver.Handle(sim.UpdateEvent{DT: g.dt}, nil)
	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.driver.Scheduler().World().SetConfig(cfg.Sim)
			g.logger.Info("applied config", "speed", cfg.Sim.Speed, "rotation_speed", cfg.Sim.RotationSpeed, "wrap_bound", cfg.Sim.WrapBound)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	surface := NewSurface(screen, g.window.SRGB)
	g.driver.Handle(sim.RenderEvent{Viewport: surface.Viewport()}, surface)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window described by the game's config and blocks until it closes.
func Run(g *Game) error {
	opts, err := RunOptions(g.window)
	if err != nil {
		return err
	}
	ApplyWindow(g.window)
	return ebiten.RunGameWithOptions(g, opts)
}
