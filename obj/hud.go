package obj

import (
	"fmt"

	"github.com/milk9111/padshot/common"
)

// Status formats the per-frame status paragraph: controller id, raw stick
// values, derived orientation in degrees, trigger state, and live bullet
// count.
func (in *Input) Status(r Reading, ship *Ship, live int) string {
	trigger := "released"
	if ship.Firing {
		trigger = "held"
	}
	return fmt.Sprintf(
		"gamepad: %s\nleft stick: %+.2f %+.2f  right stick: %+.2f %+.2f\nangle: %.1f deg  trigger: %s\nbullets: %d live",
		r.ID,
		r.Axis(in.LeftStick[0]), r.Axis(in.LeftStick[1]),
		r.Axis(in.RightStick[0]), r.Axis(in.RightStick[1]),
		common.Deg(ship.Angle),
		trigger,
		live,
	)
}
