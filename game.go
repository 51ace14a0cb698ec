package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/padshot/config"
	"github.com/milk9111/padshot/obj"
)

type Game struct {
	cfg config.Config

	input   *obj.Input
	ship    *obj.Ship
	bullets *obj.Bullets

	gamepadID ebiten.GamepadID
	reading   obj.Reading
	statusMsg string

	paused  bool
	pauseUI *ebitenui.UI

	watcher *config.Watcher
}

func NewGame(cfg config.Config) *Game {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	g := &Game{
		cfg:       cfg,
		input:     obj.NewInput(cfg.Input),
		ship:      obj.NewShip(cfg.Ship, w/2-cfg.Ship.Size/2, h/2-cfg.Ship.Size/2),
		bullets:   obj.NewBullets(cfg.Bullet.CompactThreshold),
		statusMsg: "no controller connected",
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// SetWatcher attaches a config watcher whose events are drained each frame.
func (g *Game) SetWatcher(w *config.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	// Connect/disconnect are edge-triggered; they only flip the
	// connectivity flag and the status message, never touch the rest of
	// the frame's state.
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		if g.ship.Connected {
			continue
		}
		g.gamepadID = id
		g.ship.Connected = true
		g.statusMsg = "gamepad connected: " + ebiten.GamepadName(id)
		log.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(id))
	}
	if g.ship.Connected && inpututil.IsGamepadJustDisconnected(g.gamepadID) {
		g.ship.Connected = false
		g.statusMsg = "no controller connected"
		log.Info("gamepad disconnected", "id", g.gamepadID)
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(g.ship.Connected && inpututil.IsStandardGamepadButtonJustPressed(g.gamepadID, ebiten.StandardGamepadButtonCenterRight)) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	var sample obj.Sample
	if g.ship.Connected {
		g.reading = g.input.Poll(g.gamepadID)
		sample = g.input.Apply(g.reading)
	}

	obj.Step(g.ship, g.bullets, sample, time.Now(), obj.Params{
		BoundW:      float64(g.cfg.Window.Width),
		BoundH:      float64(g.cfg.Window.Height),
		BulletSpeed: g.cfg.Bullet.Speed,
	})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background)

	g.bullets.Draw(screen, g.cfg.Bullet.Radius, g.cfg.Colors.Bullet)
	g.ship.Draw(screen, g.cfg.Colors)

	ebitenutil.DebugPrintAt(screen, g.statusMsg, 8, 8)
	if g.ship.Connected {
		ebitenutil.DebugPrintAt(screen, g.input.Status(g.reading, g.ship, g.bullets.Live()), 8, 24)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Warn("config reload failed", "path", path, "err", err)
			return
		}
		g.applyConfig(cfg)
		log.Info("config reloaded", "path", path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Warn("config watcher", "err", err)
		}
	default:
	}
}

// applyConfig swaps in new tuning without resetting ship or bullet state.
func (g *Game) applyConfig(cfg config.Config) {
	g.cfg = cfg
	g.input = obj.NewInput(cfg.Input)
	g.ship.Size = cfg.Ship.Size
	g.ship.Cooldown = cfg.Ship.Cooldown()
	g.bullets.SetThreshold(cfg.Bullet.CompactThreshold)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
