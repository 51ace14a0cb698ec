package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padshot/config"
)

// Reading is one frame of raw gamepad state. Indices the controller does
// not expose read as zero/false rather than erroring.
type Reading struct {
	ID      string
	Axes    []float64
	Buttons []bool
}

// Axis returns the raw value of axis i, or 0 when the axis is missing.
func (r Reading) Axis(i int) float64 {
	if i < 0 || i >= len(r.Axes) {
		return 0
	}
	return r.Axes[i]
}

// Pressed reports whether button i is down, or false when it is missing.
func (r Reading) Pressed(i int) bool {
	if i < 0 || i >= len(r.Buttons) {
		return false
	}
	return r.Buttons[i]
}

// Sample is the derived per-frame input: a position delta, an optional new
// orientation, and the fire signal.
type Sample struct {
	DX, DY float64
	// Angle is only meaningful when AngleSet is true; otherwise the ship
	// keeps its previous orientation (sample and hold).
	Angle    float64
	AngleSet bool
	Fire     bool
}

// Input derives movement, orientation, and fire from raw gamepad readings
// according to the configured mapping.
type Input struct {
	DeadZone       float64
	MoveSpeed      float64
	LeftStick      [2]int
	RightStick     [2]int
	TriggerButtons []int
}

func NewInput(cfg config.Input) *Input {
	return &Input{
		DeadZone:       cfg.DeadZone,
		MoveSpeed:      cfg.MoveSpeed,
		LeftStick:      cfg.LeftStickAxes,
		RightStick:     cfg.RightStickAxes,
		TriggerButtons: cfg.TriggerButtons,
	}
}

// Poll captures the raw state of the given gamepad.
func (in *Input) Poll(id ebiten.GamepadID) Reading {
	r := Reading{ID: ebiten.GamepadName(id)}

	axes := ebiten.GamepadAxisCount(id)
	r.Axes = make([]float64, axes)
	for a := 0; a < axes; a++ {
		r.Axes[a] = ebiten.GamepadAxis(id, a)
	}

	buttons := ebiten.GamepadButtonCount(id)
	r.Buttons = make([]bool, buttons)
	for b := 0; b < buttons; b++ {
		r.Buttons[b] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b))
	}

	return r
}

// Apply derives a Sample from a raw reading. It is pure with respect to
// the device, so it can be exercised without hardware.
func (in *Input) Apply(r Reading) Sample {
	var s Sample

	s.DX = in.filtered(r.Axis(in.LeftStick[0])) * in.MoveSpeed
	s.DY = in.filtered(r.Axis(in.LeftStick[1])) * in.MoveSpeed

	// Orientation follows the right stick only while it is deflected past
	// the dead zone; inside it the previous angle is kept.
	rx := r.Axis(in.RightStick[0])
	ry := r.Axis(in.RightStick[1])
	if math.Abs(rx) > in.DeadZone || math.Abs(ry) > in.DeadZone {
		s.Angle = math.Atan2(ry, rx)
		s.AngleSet = true
	}

	for _, b := range in.TriggerButtons {
		if r.Pressed(b) {
			s.Fire = true
			break
		}
	}

	return s
}

func (in *Input) filtered(v float64) float64 {
	if math.Abs(v) <= in.DeadZone {
		return 0
	}
	return v
}
