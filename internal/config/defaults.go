package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snowball.yaml
var defaultSnowballYAML []byte

// DefaultSnowballConfig returns the default snowball configuration.
func DefaultSnowballConfig() SnowballConfig {
	return SnowballConfig{
		Physics: PhysicsConfig{
			PlayerSpeed:   30,
			InputForce:    50,
			Drag:          1.0,
			InitialWeight: 1.0,
		},
		Pickup: PickupConfig{
			WeightGain:   0.15,
			WinThreshold: 4,
			SpinDegrees:  700,
			SpinAxis:     [3]float32{1, 0, 0},
			Parking:      [3]float32{1000, 0, 0},
		},
		Colliders: ColliderConfig{
			ContactShrink: 0.7,
			ScaleFactor:   0.5,
		},
		Camera: CameraConfig{
			Offset: [3]float32{0, -14, 25},
		},
		Animation: AnimationConfig{
			WobbleRate: 0.1,
			Joints: []JointWobble{
				{Node: "UpperLeg.FL", Amplitude: 7, Frequency: 2, Axis: [3]float32{0, 0, 1}},
				{Node: "LowerLeg.FL", Amplitude: 10, Frequency: 3, Axis: [3]float32{0, 0, 1}},
			},
			Hip: JointWobble{Node: "Ground", Amplitude: 5, Frequency: 1, Axis: [3]float32{0, 1, 0}},
		},
		Features: FeatureFlags{
			MouseLook:   false,
			HipWobble:   false,
			JointWobble: true,
		},
		Light: LightConfig{
			Type:       1,
			Direction:  [3]float32{0, 0, -1},
			Energy:     [3]float32{1, 1, 0.95},
			ClearColor: [4]float32{0.5, 0.5, 0.5, 1},
		},
		Overlay: OverlayConfig{
			LineHeight: 0.09,
			Hint:       "WASD moves the ball; escape ungrabs mouse",
			Goal:       "Eat all coin to grow up",
			Win:        "Eat Other snow ball to grow up",
		},
		Terminal: TerminalConfig{
			KeyHold: 450 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnowballYAML
}
