package obj

import "time"

// Params is the per-frame tuning the updater needs.
type Params struct {
	BoundW, BoundH float64
	BulletSpeed    float64
}

// Step runs one update pass: apply the sampled input to the ship, spawn a
// bullet if the trigger allows it, then advance every bullet. With no
// controller connected the whole pass is skipped and state is left as-is;
// only rendering re-executes that frame.
func Step(ship *Ship, bullets *Bullets, s Sample, now time.Time, p Params) {
	if !ship.Connected {
		return
	}

	ship.Firing = s.Fire
	ship.Move(s.DX, s.DY, p.BoundW, p.BoundH)
	if s.AngleSet {
		ship.Angle = s.Angle
	}
	ship.TryFire(bullets, p.BulletSpeed, now)

	bullets.Update(p.BoundW, p.BoundH)
}
