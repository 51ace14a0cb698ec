package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Input.DeadZone != 0.1 {
		t.Fatalf("expected dead zone 0.1, got %v", cfg.Input.DeadZone)
	}
	if cfg.Ship.CooldownMs != 100 {
		t.Fatalf("expected cooldown 100ms, got %d", cfg.Ship.CooldownMs)
	}
	if cfg.Bullet.CompactThreshold != 100 {
		t.Fatalf("expected compact threshold 100, got %d", cfg.Bullet.CompactThreshold)
	}
	if len(cfg.Input.TriggerButtons) == 0 {
		t.Fatal("expected trigger button candidates")
	}
}

func TestLoadCustomFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "partial_override_keeps_defaults",
			content: "ship:\n  size: 64\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Ship.Size != 64 {
					t.Fatalf("expected size 64, got %v", cfg.Ship.Size)
				}
				if cfg.Bullet.Speed != 10 {
					t.Fatalf("expected default bullet speed, got %v", cfg.Bullet.Speed)
				}
			},
		},
		{
			name:    "trigger_mapping",
			content: "input:\n  trigger_buttons: [3, 11]\n",
			check: func(t *testing.T, cfg Config) {
				if len(cfg.Input.TriggerButtons) != 2 || cfg.Input.TriggerButtons[0] != 3 || cfg.Input.TriggerButtons[1] != 11 {
					t.Fatalf("expected [3 11], got %v", cfg.Input.TriggerButtons)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "padshot.yaml")
			if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestColorUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff0000"`, color.NRGBA{R: 0xff, A: 0xff}, false},
		{"rgb_no_hash", `"00ff00"`, color.NRGBA{G: 0xff, A: 0xff}, false},
		{"rgba", `"#0000ff80"`, color.NRGBA{B: 0xff, A: 0x80}, false},
		{"too_short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2, 3]`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Color
			err := yaml.Unmarshal([]byte(c.yaml), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.yaml)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}
