package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/padshot.yaml
var defaultYAML []byte

// localPath is the config looked for next to the binary when no explicit
// path is given.
const localPath = "configs/padshot.yaml"

// Config is the full tuning surface of the demo.
type Config struct {
	Window Window `yaml:"window"`
	Input  Input  `yaml:"input"`
	Ship   Ship   `yaml:"ship"`
	Bullet Bullet `yaml:"bullet"`
	Colors Colors `yaml:"colors"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Input holds the gamepad mapping. Controller layouts vary, so the trigger
// is a list of candidate button indices; any pressed candidate counts.
type Input struct {
	DeadZone       float64 `yaml:"dead_zone"`
	MoveSpeed      float64 `yaml:"move_speed"`
	LeftStickAxes  [2]int  `yaml:"left_stick_axes"`
	RightStickAxes [2]int  `yaml:"right_stick_axes"`
	TriggerButtons []int   `yaml:"trigger_buttons"`
}

type Ship struct {
	Size       float64 `yaml:"size"`
	CooldownMs int     `yaml:"cooldown_ms"`
}

// Cooldown returns the minimum time between two bullet spawns.
func (s Ship) Cooldown() time.Duration {
	return time.Duration(s.CooldownMs) * time.Millisecond
}

type Bullet struct {
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	CompactThreshold int     `yaml:"compact_threshold"`
}

type Colors struct {
	Background   Color `yaml:"background"`
	Idle         Color `yaml:"idle"`
	Firing       Color `yaml:"firing"`
	Disconnected Color `yaml:"disconnected"`
	Bullet       Color `yaml:"bullet"`
}

// Default returns the built-in tuning used when no config file is found
// and the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "padshot"},
		Input: Input{
			DeadZone:       0.1,
			MoveSpeed:      5,
			LeftStickAxes:  [2]int{0, 1},
			RightStickAxes: [2]int{2, 3},
			TriggerButtons: []int{7, 5, 9},
		},
		Ship:   Ship{Size: 50, CooldownMs: 100},
		Bullet: Bullet{Speed: 10, Radius: 5, CompactThreshold: 100},
		Colors: Colors{
			Background:   Color{colornames.Midnightblue},
			Idle:         Color{colornames.Forestgreen},
			Firing:       Color{colornames.Crimson},
			Disconnected: Color{colornames.Gray},
			Bullet:       Color{colornames.Gold},
		},
	}
}

// Load reads the tuning config.
// Search order: customPath -> ./configs/padshot.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte, source string) (Config, error) {
	// start from defaults so partial files only override what they name
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", source, err)
	}
	return cfg, nil
}

// Color wraps color.Color with "#rrggbb" / "#rrggbbaa" YAML parsing.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
