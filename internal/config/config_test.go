package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnowballConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSnowballConfig():\n%+v\n%+v", cfg, DefaultSnowballConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultSnowballConfig()

	if cfg.Physics.PlayerSpeed != 30 {
		t.Errorf("PlayerSpeed = %v, expected 30", cfg.Physics.PlayerSpeed)
	}
	if cfg.Physics.InputForce != 50 || cfg.Physics.Drag != 1 {
		t.Errorf("InputForce/Drag = %v/%v, expected 50/1", cfg.Physics.InputForce, cfg.Physics.Drag)
	}
	if cfg.Pickup.WeightGain != 0.15 || cfg.Pickup.WinThreshold != 4 {
		t.Errorf("WeightGain/WinThreshold = %v/%v, expected 0.15/4", cfg.Pickup.WeightGain, cfg.Pickup.WinThreshold)
	}
	if cfg.Camera.Offset != [3]float32{0, -14, 25} {
		t.Errorf("Camera.Offset = %v, expected [0 -14 25]", cfg.Camera.Offset)
	}
	if cfg.Features.MouseLook || cfg.Features.HipWobble {
		t.Error("mouse look and hip wobble should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  player_speed: 12\nterminal:\n  key_hold: 1s\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.PlayerSpeed != 12 {
		t.Errorf("PlayerSpeed = %v, expected 12", cfg.Physics.PlayerSpeed)
	}
	if cfg.Physics.InputForce != 50 {
		t.Errorf("InputForce = %v, expected default 50", cfg.Physics.InputForce)
	}
	if cfg.Terminal.KeyHold != time.Second {
		t.Errorf("KeyHold = %v, expected 1s", cfg.Terminal.KeyHold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnowballConfig)
		want   string
	}{
		{"zero speed", func(c *SnowballConfig) { c.Physics.PlayerSpeed = 0 }, "player_speed"},
		{"zero weight", func(c *SnowballConfig) { c.Physics.InitialWeight = 0 }, "initial_weight"},
		{"negative drag", func(c *SnowballConfig) { c.Physics.Drag = -1 }, "drag"},
		{"negative gain", func(c *SnowballConfig) { c.Pickup.WeightGain = -0.1 }, "weight_gain"},
		{"zero threshold", func(c *SnowballConfig) { c.Pickup.WinThreshold = 0 }, "win_threshold"},
		{"zero spin axis", func(c *SnowballConfig) { c.Pickup.SpinAxis = [3]float32{} }, "spin_axis"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnowballConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("pickup:\n  win_threshold: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(good)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pickup.WinThreshold != 2 {
		t.Errorf("WinThreshold = %d, expected 2", cfg.Pickup.WinThreshold)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pickup:\n  win_threshold: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject an invalid config")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}
