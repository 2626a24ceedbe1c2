package snowball

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Update advances the simulation by elapsed seconds.
// The step order is fixed: integration before collision response, collision response
// before the camera follows.
func (m *Mode) Update(elapsed float32) {
	m.frame++

	m.animate(elapsed)

	move := m.InputDisplacement(elapsed)
	right, forward, _ := m.GroundAxes()
	dir := right.Mul(move.X()).Add(forward.Mul(move.Y()))
	m.force = dir.Mul(m.cfg.Physics.InputForce).Sub(m.speed.Mul(m.cfg.Physics.Drag))
	m.speed = m.speed.Add(m.force.Mul(elapsed))

	ball := m.graph.At(m.ball)
	ball.Scale = mgl32.Vec3{m.weight, m.weight, m.weight}

	m.spinCoins(elapsed)
	m.collectCoins()
	m.resolveColliders(elapsed)

	ball.Position = ball.Position.Add(m.speed.Mul(elapsed))

	cam := m.graph.At(m.Camera().Transform)
	cam.Position = ball.Position.Add(vec3(m.cfg.Camera.Offset))

	m.buttons.EndFrame()
}

// animate advances the wobble phase and poses the decorative joints relative to their
// baseline rotations.
func (m *Mode) animate(elapsed float32) {
	m.wobble += elapsed * m.cfg.Animation.WobbleRate
	m.wobble -= float32(math.Floor(float64(m.wobble)))
	// Rounding can land exactly on 1 for tiny negative phases.
	if m.wobble >= 1 {
		m.wobble = 0
	}

	if m.cfg.Features.HipWobble && m.hip != nil {
		m.pose(*m.hip)
	}
	if m.cfg.Features.JointWobble {
		for _, j := range m.joints {
			m.pose(j)
		}
	}
}

func (m *Mode) pose(j joint) {
	angle := j.amp * float32(math.Sin(float64(m.wobble*j.freq*2*math.Pi)))
	m.graph.At(j.node).Rotation = j.base.Mul(mgl32.QuatRotate(mgl32.DegToRad(angle), j.axis))
}

// InputDisplacement combines the held buttons into this frame's 2D displacement.
// Diagonals are normalized so every direction has length PlayerSpeed*elapsed.
func (m *Mode) InputDisplacement(elapsed float32) mgl32.Vec2 {
	x, y := m.buttons.Axes()
	move := mgl32.Vec2{x, y}
	if move == (mgl32.Vec2{}) {
		return move
	}
	return move.Normalize().Mul(m.cfg.Physics.PlayerSpeed * elapsed)
}

// GroundAxes returns the ground's world right, forward and up unit vectors
// (columns 0, 1 and -2 of its local-to-world matrix).
func (m *Mode) GroundAxes() (right, forward, up mgl32.Vec3) {
	w := m.graph.LocalToWorld(m.ground)
	right = w.Col(0).Vec3().Normalize()
	forward = w.Col(1).Vec3().Normalize()
	up = w.Col(2).Vec3().Normalize().Mul(-1)
	return right, forward, up
}

// spinCoins composes a spin onto every coin's current rotation, so it accumulates.
func (m *Mode) spinCoins(elapsed float32) {
	spin := mgl32.QuatRotate(mgl32.DegToRad(m.cfg.Pickup.SpinDegrees*elapsed), vec3(m.cfg.Pickup.SpinAxis).Normalize())
	for _, c := range m.coins {
		t := m.graph.At(c.node)
		t.Rotation = t.Rotation.Mul(spin)
	}
}

// collectCoins picks up every uncollected coin closer to the ball than its weight.
func (m *Mode) collectCoins() {
	ballPos := m.graph.At(m.ball).Position
	for i := range m.coins {
		c := &m.coins[i]
		if c.collected {
			continue
		}
		t := m.graph.At(c.node)
		if t.Position.Sub(ballPos).Len() >= m.weight {
			continue
		}

		c.collected = true
		t.Position = vec3(m.cfg.Pickup.Parking)
		t.Hidden = true
		m.collected++
		m.weight += m.cfg.Pickup.WeightGain

		m.logger.Debug("coin collected",
			"coin", t.Name,
			"collected", m.collected,
			"weight", m.weight,
		)

		if m.collected == m.cfg.Pickup.WinThreshold {
			m.won = true
			m.logger.Info("all coins eaten", "frame", m.frame, "weight", m.weight)
		}
	}
}

// resolveColliders stops the ball dead when it is inside a collider's contact radius and
// its next step would bring it closer. This is a broad-phase sphere test only.
func (m *Mode) resolveColliders(elapsed float32) {
	ball := m.graph.At(m.ball)
	for _, h := range m.colliders {
		c := m.graph.At(h)
		dist := c.Position.Sub(ball.Position).Len()
		if dist >= m.ContactRadius(c.Scale) {
			continue
		}
		next := ball.Position.Add(m.speed.Mul(elapsed))
		if next.Sub(c.Position).Len() < dist {
			m.speed = mgl32.Vec3{}
		}
	}
}

// ContactRadius is the approximate combined radius of the ball and a collider with the
// given scale: shrink * |weight*(1,1,1) + scale*scaleFactor|.
func (m *Mode) ContactRadius(colliderScale mgl32.Vec3) float32 {
	w := mgl32.Vec3{m.weight, m.weight, m.weight}
	return m.cfg.Colliders.ContactShrink * w.Add(colliderScale.Mul(m.cfg.Colliders.ScaleFactor)).Len()
}
