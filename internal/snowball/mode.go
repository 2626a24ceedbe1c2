// Package snowball implements the snowball-rolling gameplay mode.
// The player rolls a snowball across a ground plane, picks up spinning coins to grow, and
// is stopped dead by rocks. The host drives the mode with HandleEvent, Update and Draw on
// a single goroutine.
package snowball

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/config"
	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/scene"
)

// Scene node names and prefixes the mode binds to.
const (
	GroundName     = "Ground"
	BallName       = "Sphere"
	CoinPrefix     = "Coin"
	ColliderPrefix = "Coll"
)

// Construction errors. New wraps them with detail; test with errors.Is.
var (
	ErrGroundMissing = errors.New("ground not found")
	ErrBallMissing   = errors.New("sphere not found")
	ErrCameraCount   = errors.New("expecting scene to have exactly one camera")
)

// Phase is the coarse game state.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
)

type coin struct {
	node      scene.Handle
	collected bool
}

type joint struct {
	node scene.Handle
	base mgl32.Quat
	axis mgl32.Vec3
	amp  float32 // degrees
	freq float32 // cycles per wobble period
}

// Mode is the gameplay simulator. It owns a private copy of the scene graph and writes
// only the transforms it bound at construction.
type Mode struct {
	cfg    config.SnowballConfig
	graph  *scene.Graph
	logger *log.Logger

	ground    scene.Handle
	ball      scene.Handle
	camera    int
	coins     []coin
	colliders []scene.Handle
	joints    []joint
	hip       *joint // nil when the configured hip node is absent

	buttons       core.Buttons
	mouseCaptured bool
	mouseMotion   mgl32.Vec2

	frame     uint64
	wobble    float32
	weight    float32
	speed     mgl32.Vec3
	force     mgl32.Vec3
	collected int
	won       bool
}

// Option customizes a Mode at construction.
type Option func(*Mode)

// WithLogger routes mode logs to l. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(m *Mode) {
		if l != nil {
			m.logger = l
		}
	}
}

// New binds a mode to a copy of graph. It fails if the ground, the player ball, or
// exactly one camera cannot be found.
func New(graph *scene.Graph, cfg config.SnowballConfig, opts ...Option) (*Mode, error) {
	if graph == nil {
		return nil, fmt.Errorf("snowball: nil scene graph")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snowball: %w", err)
	}

	m := &Mode{
		cfg:    cfg,
		graph:  graph.Clone(),
		logger: log.New(io.Discard),
		weight: cfg.Physics.InitialWeight,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.bind(); err != nil {
		return nil, fmt.Errorf("snowball: %w", err)
	}

	m.logger.Info("scene bound",
		"coins", len(m.coins),
		"colliders", len(m.colliders),
		"joints", len(m.joints),
	)
	return m, nil
}

// bind resolves every handle the mode needs in one pass over the graph.
func (m *Mode) bind() error {
	g := m.graph

	ground, ok := g.Find(GroundName)
	if !ok {
		return ErrGroundMissing
	}
	ball, ok := g.Find(BallName)
	if !ok {
		return ErrBallMissing
	}
	if len(g.Cameras) != 1 {
		return fmt.Errorf("%w, but it has %d", ErrCameraCount, len(g.Cameras))
	}

	m.ground = ground
	m.ball = ball
	m.camera = 0

	for _, h := range g.FindPrefix(CoinPrefix) {
		m.coins = append(m.coins, coin{node: h})
	}
	m.colliders = g.FindPrefix(ColliderPrefix)

	hip := m.cfg.Animation.Hip
	if h, ok := g.Find(hip.Node); ok {
		j := newJoint(h, g.At(h).Rotation, hip)
		m.hip = &j
	} else {
		m.logger.Debug("hip node not in scene", "node", hip.Node)
	}

	for _, jw := range m.cfg.Animation.Joints {
		h, ok := g.Find(jw.Node)
		if !ok {
			m.logger.Debug("wobble joint not in scene", "node", jw.Node)
			continue
		}
		m.joints = append(m.joints, newJoint(h, g.At(h).Rotation, jw))
	}

	return nil
}

func newJoint(h scene.Handle, base mgl32.Quat, jw config.JointWobble) joint {
	axis := vec3(jw.Axis)
	if axis.Len() > 0 {
		axis = axis.Normalize()
	} else {
		axis = mgl32.Vec3{0, 0, 1}
	}
	return joint{
		node: h,
		base: base,
		axis: axis,
		amp:  jw.Amplitude,
		freq: jw.Frequency,
	}
}

func vec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}

// Graph returns the mode's scene graph. Hosts render from it; only the mode writes it.
func (m *Mode) Graph() *scene.Graph {
	return m.graph
}

// Camera returns the bound camera.
func (m *Mode) Camera() *scene.Camera {
	return &m.graph.Cameras[m.camera]
}

// Ball returns the player ball transform.
func (m *Mode) Ball() *scene.Transform {
	return m.graph.At(m.ball)
}

// CameraPosition returns the camera node position.
func (m *Mode) CameraPosition() mgl32.Vec3 {
	return m.graph.At(m.Camera().Transform).Position
}

// Weight returns the ball weight, which is also its radius proxy.
func (m *Mode) Weight() float32 {
	return m.weight
}

// Speed returns the ball velocity in world units per second.
func (m *Mode) Speed() mgl32.Vec3 {
	return m.speed
}

// Force returns the force applied on the last update.
func (m *Mode) Force() mgl32.Vec3 {
	return m.force
}

// Collected returns the number of coins picked up.
func (m *Mode) Collected() int {
	return m.collected
}

// CoinCount returns the number of coins bound at construction.
func (m *Mode) CoinCount() int {
	return len(m.coins)
}

// ColliderCount returns the number of colliders bound at construction.
func (m *Mode) ColliderCount() int {
	return len(m.colliders)
}

// Won reports whether the win threshold has been reached.
func (m *Mode) Won() bool {
	return m.won
}

// Phase returns PhaseWon once the player has won, PhasePlaying before.
func (m *Mode) Phase() Phase {
	if m.won {
		return PhaseWon
	}
	return PhasePlaying
}

// Wobble returns the decorative phase in [0,1).
func (m *Mode) Wobble() float32 {
	return m.wobble
}

// Buttons returns the current button states.
func (m *Mode) Buttons() core.Buttons {
	return m.buttons
}

// MouseCaptured reports whether the pointer is captured for mouse look.
func (m *Mode) MouseCaptured() bool {
	return m.mouseCaptured
}

// MouseMotion returns the last normalized motion delta recorded while captured.
func (m *Mode) MouseMotion() mgl32.Vec2 {
	return m.mouseMotion
}
