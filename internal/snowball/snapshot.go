package snowball

// Snapshot contains the observable mode state for logging and headless runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame         uint64     `yaml:"frame"`
	Phase         string     `yaml:"phase"`
	Weight        float32    `yaml:"weight"`
	Speed         [3]float32 `yaml:"speed"`
	BallPosition  [3]float32 `yaml:"ball_position"`
	CameraPos     [3]float32 `yaml:"camera_position"`
	Collected     int        `yaml:"collected"`
	CoinCount     int        `yaml:"coin_count"`
	Won           bool       `yaml:"won"`
	MouseCaptured bool       `yaml:"mouse_captured"`
	Wobble        float32    `yaml:"wobble"`
}

// Snapshot returns the current mode state as a Snapshot.
func (m *Mode) Snapshot() Snapshot {
	return Snapshot{
		Frame:         m.frame,
		Phase:         string(m.Phase()),
		Weight:        m.weight,
		Speed:         m.speed,
		BallPosition:  m.Ball().Position,
		CameraPos:     m.CameraPosition(),
		Collected:     m.collected,
		CoinCount:     len(m.coins),
		Won:           m.won,
		MouseCaptured: m.mouseCaptured,
		Wobble:        m.wobble,
	}
}

// Frame returns the number of updates applied.
func (m *Mode) Frame() uint64 {
	return m.frame
}
