package obj

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/padshot/common"
	"github.com/milk9111/padshot/config"
	"golang.org/x/image/colornames"
)

// Ship is the player-controlled square. X/Y is the top-left corner; the
// square rotates about its own center.
type Ship struct {
	X, Y  float64
	Angle float64 // radians
	Size  float64

	Connected bool
	Firing    bool
	LastShot  time.Time
	Cooldown  time.Duration

	img *ebiten.Image
}

func NewShip(cfg config.Ship, x, y float64) *Ship {
	return &Ship{
		X:        x,
		Y:        y,
		Size:     cfg.Size,
		Cooldown: cfg.Cooldown(),
	}
}

// Center returns the rotation origin and bullet spawn point.
func (s *Ship) Center() (float64, float64) {
	return s.X + s.Size/2, s.Y + s.Size/2
}

// Move applies a position delta, then clamps each axis independently so
// the square stays fully inside the bounds.
func (s *Ship) Move(dx, dy, boundW, boundH float64) {
	s.X = common.Clamp(s.X+dx, 0, boundW-s.Size)
	s.Y = common.Clamp(s.Y+dy, 0, boundH-s.Size)
}

// TryFire spawns one bullet at the ship center when the trigger is held
// and the cooldown has elapsed. Reports whether a bullet was spawned.
func (s *Ship) TryFire(bullets *Bullets, speed float64, now time.Time) bool {
	if !s.Firing {
		return false
	}
	if now.Sub(s.LastShot) < s.Cooldown {
		return false
	}
	cx, cy := s.Center()
	bullets.Spawn(cx, cy, s.Angle, speed)
	s.LastShot = now
	return true
}

// Draw renders the square rotated about its center. Fill color reflects
// connectivity and trigger state; a small marker strip shows which way
// the ship is facing.
func (s *Ship) Draw(screen *ebiten.Image, colors config.Colors) {
	size := int(s.Size)
	if size <= 0 {
		return
	}
	if s.img == nil || s.img.Bounds().Dx() != size {
		s.img = ebiten.NewImage(size, size)
	}

	var fill config.Color
	switch {
	case !s.Connected:
		fill = colors.Disconnected
	case s.Firing:
		fill = colors.Firing
	default:
		fill = colors.Idle
	}
	s.img.Fill(fill)

	// forward marker: offset toward +x in local space, pre-rotation
	mw := float32(s.Size) / 4
	mh := float32(s.Size) / 8
	vector.DrawFilledRect(s.img, float32(s.Size)-mw-2, float32(s.Size)/2-mh/2, mw, mh, colornames.White, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.Size/2, -s.Size/2)
	op.GeoM.Rotate(s.Angle)
	cx, cy := s.Center()
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(s.img, op)
}
