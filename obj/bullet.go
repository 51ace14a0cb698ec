package obj

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Bullet is a projectile moving in a straight line. Angle and Speed are
// fixed at spawn; Alive flips to false once either coordinate leaves the
// bounds and never flips back.
type Bullet struct {
	X, Y  float64
	Angle float64
	Speed float64
	Alive bool
}

// Bullets holds every spawned bullet, live and dead. Dead entries are kept
// in place until the total count exceeds the compaction threshold, then
// dropped in one pass; this avoids reslicing on every retirement.
type Bullets struct {
	items     []*Bullet
	threshold int
	pool      sync.Pool
}

func NewBullets(threshold int) *Bullets {
	return &Bullets{
		threshold: threshold,
		pool:      sync.Pool{New: func() any { return &Bullet{} }},
	}
}

// SetThreshold replaces the compaction threshold (config reload).
func (bs *Bullets) SetThreshold(threshold int) {
	bs.threshold = threshold
}

// Spawn adds a live bullet, reusing a pooled instance when one is free.
func (bs *Bullets) Spawn(x, y, angle, speed float64) {
	b := bs.pool.Get().(*Bullet)
	b.X = x
	b.Y = y
	b.Angle = angle
	b.Speed = speed
	b.Alive = true
	bs.items = append(bs.items, b)
}

// Update advances every live bullet and retires those that leave the
// bounds, then compacts iff the stored count exceeds the threshold.
func (bs *Bullets) Update(boundW, boundH float64) {
	for _, b := range bs.items {
		if !b.Alive {
			continue
		}
		b.X += b.Speed * math.Cos(b.Angle)
		b.Y += b.Speed * math.Sin(b.Angle)
		if b.X < 0 || b.X > boundW || b.Y < 0 || b.Y > boundH {
			b.Alive = false
		}
	}

	if len(bs.items) > bs.threshold {
		bs.compact()
	}
}

func (bs *Bullets) compact() {
	writeIdx := 0
	for _, b := range bs.items {
		if !b.Alive {
			bs.pool.Put(b)
			continue
		}
		bs.items[writeIdx] = b
		writeIdx++
	}
	for i := writeIdx; i < len(bs.items); i++ {
		bs.items[i] = nil
	}
	bs.items = bs.items[:writeIdx]
}

// Live counts bullets still in flight.
func (bs *Bullets) Live() int {
	n := 0
	for _, b := range bs.items {
		if b.Alive {
			n++
		}
	}
	return n
}

// Len is the stored count including dead entries awaiting compaction.
func (bs *Bullets) Len() int {
	return len(bs.items)
}

// Draw renders each live bullet as a filled disc.
func (bs *Bullets) Draw(screen *ebiten.Image, radius float64, clr color.Color) {
	for _, b := range bs.items {
		if !b.Alive {
			continue
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(radius), clr, true)
	}
}
