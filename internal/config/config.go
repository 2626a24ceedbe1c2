// Package config provides YAML-based configuration loading for the snowball mode.
package config

import (
	"fmt"
	"time"
)

// SnowballConfig contains all tunables of the snowball mode and its hosts.
type SnowballConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Pickup    PickupConfig    `yaml:"pickup"`
	Colliders ColliderConfig  `yaml:"colliders"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Features  FeatureFlags    `yaml:"features"`
	Light     LightConfig     `yaml:"light"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// PhysicsConfig defines ball movement parameters.
type PhysicsConfig struct {
	PlayerSpeed   float32 `yaml:"player_speed"`   // Input displacement rate, units/sec
	InputForce    float32 `yaml:"input_force"`    // Force multiplier applied to the input direction
	Drag          float32 `yaml:"drag"`           // Drag coefficient against current speed
	InitialWeight float32 `yaml:"initial_weight"` // Starting ball weight (also its radius proxy)
}

// PickupConfig defines coin collection parameters.
type PickupConfig struct {
	WeightGain   float32    `yaml:"weight_gain"`   // Weight added per coin
	WinThreshold int        `yaml:"win_threshold"` // Coins needed to win
	SpinDegrees  float32    `yaml:"spin_degrees"`  // Coin spin rate, degrees/sec
	SpinAxis     [3]float32 `yaml:"spin_axis"`
	Parking      [3]float32 `yaml:"parking"` // Where collected coins are moved
}

// ColliderConfig defines the approximate sphere contact test against obstacles.
type ColliderConfig struct {
	ContactShrink float32 `yaml:"contact_shrink"` // Empirical factor on the combined radius
	ScaleFactor   float32 `yaml:"scale_factor"`   // Collider scale to radius factor
}

// CameraConfig defines the rigid chase camera.
type CameraConfig struct {
	Offset [3]float32 `yaml:"offset"`
}

// AnimationConfig defines the decorative wobble.
type AnimationConfig struct {
	WobbleRate float32       `yaml:"wobble_rate"` // Phase cycles per second
	Joints     []JointWobble `yaml:"joints"`
	Hip        JointWobble   `yaml:"hip"`
}

// JointWobble rotates a node about Axis by Amplitude*sin(wobble*Frequency*2π) degrees,
// relative to its baseline rotation.
type JointWobble struct {
	Node      string     `yaml:"node"`
	Amplitude float32    `yaml:"amplitude"`
	Frequency float32    `yaml:"frequency"`
	Axis      [3]float32 `yaml:"axis"`
}

// FeatureFlags toggles optional behaviors.
type FeatureFlags struct {
	MouseLook   bool `yaml:"mouse_look"`   // Rotate the camera from captured mouse motion
	HipWobble   bool `yaml:"hip_wobble"`   // Wobble the ground about its baseline
	JointWobble bool `yaml:"joint_wobble"` // Wobble the decorative joints
}

// LightConfig defines the single directional light handed to the renderer.
type LightConfig struct {
	Type       int        `yaml:"type"`
	Direction  [3]float32 `yaml:"direction"`
	Energy     [3]float32 `yaml:"energy"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// OverlayConfig defines the instructional text.
type OverlayConfig struct {
	LineHeight float32 `yaml:"line_height"`
	Hint       string  `yaml:"hint"`
	Goal       string  `yaml:"goal"`
	Win        string  `yaml:"win"`
}

// TerminalConfig defines terminal host behavior.
type TerminalConfig struct {
	// KeyHold is how long a key stays pressed after its last repeat, since terminals
	// do not report key releases.
	KeyHold time.Duration `yaml:"key_hold"`
}

// Validate checks the values the simulation relies on.
func (c SnowballConfig) Validate() error {
	if c.Physics.PlayerSpeed <= 0 {
		return fmt.Errorf("config: physics.player_speed must be positive, got %v", c.Physics.PlayerSpeed)
	}
	if c.Physics.InitialWeight <= 0 {
		return fmt.Errorf("config: physics.initial_weight must be positive, got %v", c.Physics.InitialWeight)
	}
	if c.Physics.Drag < 0 {
		return fmt.Errorf("config: physics.drag must not be negative, got %v", c.Physics.Drag)
	}
	if c.Pickup.WeightGain < 0 {
		return fmt.Errorf("config: pickup.weight_gain must not be negative, got %v", c.Pickup.WeightGain)
	}
	if c.Pickup.WinThreshold < 1 {
		return fmt.Errorf("config: pickup.win_threshold must be at least 1, got %d", c.Pickup.WinThreshold)
	}
	if c.Pickup.SpinAxis == ([3]float32{}) {
		return fmt.Errorf("config: pickup.spin_axis must not be zero")
	}
	return nil
}
