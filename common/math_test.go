package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -1, 0, 10, 0},
		{"above", 11, 0, 10, 10},
		{"at_low", 0, 0, 10, 0},
		{"at_high", 10, 0, 10, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestDeg(t *testing.T) {
	if got := Deg(math.Pi); got != 180 {
		t.Fatalf("Deg(pi) = %v, want 180", got)
	}
	if got := Deg(-math.Pi / 2); got != -90 {
		t.Fatalf("Deg(-pi/2) = %v, want -90", got)
	}
}
