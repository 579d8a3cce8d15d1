// Package physics advances a single car by one tick: scalar speed and
// steering integrators, terrain speed caps and a bounce-back collision
// response. It is deliberately not a rigid-body simulation.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/collision"
	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
)

// State is the per-car integrator state. It is owned by the simulation loop
// and never persisted.
type State struct {
	Speed         float64
	Acceleration  float64
	SteeringAngle float64
}

// Input is the control sample for one tick.
type Input struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
}

// Idle reports whether no control is held.
func (in Input) Idle() bool {
	return !in.Accelerate && !in.Brake && !in.Left && !in.Right
}

// Result is the outcome of one Step.
type Result struct {
	State
	Collided bool
	OnGrass  bool
	// Hit is the obstacle that stopped the car, if any.
	Hit collision.Obstacle
}

// Vehicle is the moving actor the integrator drives.
type Vehicle interface {
	collision.Body
	Yaw() float64
	SetYaw(float64)
	SetPosition(mgl64.Vec3)
}

// Integrator steps vehicles with a fixed tuning.
type Integrator struct {
	cfg      config.Physics
	detector collision.Detector
}

// NewIntegrator builds an integrator for cfg.
func NewIntegrator(cfg config.Physics) *Integrator {
	return &Integrator{
		cfg:      cfg,
		detector: collision.Detector{HitboxScale: cfg.HitboxScale},
	}
}

// Config returns the tuning in use.
func (in *Integrator) Config() config.Physics { return in.cfg }

// MaxSpeed is the forward speed cap at the vehicle's position.
func (in *Integrator) MaxSpeed(onGrass bool) float64 {
	if onGrass {
		return in.cfg.MaxSpeed * in.cfg.GrassSpeedScale
	}
	return in.cfg.MaxSpeed
}

// Step advances v by dt seconds. others are the scene's vehicles (v itself
// may be among them), tiles the static obstacles. A nil map skips the grass
// cap and the height snap.
func (in *Integrator) Step(v Vehicle, st State, input Input, dt float64, others, tiles []collision.Obstacle, m *terrain.MapDefinition) Result {
	cfg := in.cfg
	if dt < 0 {
		dt = 0
	}

	// Steering.
	switch {
	case input.Left:
		st.SteeringAngle += cfg.SteeringRate * dt
	case input.Right:
		st.SteeringAngle -= cfg.SteeringRate * dt
	default:
		st.SteeringAngle = approachZero(st.SteeringAngle, cfg.SteeringFriction*dt)
	}
	st.SteeringAngle = clamp(st.SteeringAngle, -cfg.MaxSteering, cfg.MaxSteering)

	// Longitudinal acceleration.
	switch {
	case input.Accelerate:
		st.Acceleration = cfg.AccelerationRate
	case input.Brake:
		st.Acceleration = -cfg.BrakeRate
	default:
		st.Acceleration = -sign(st.Speed) * cfg.Friction
		if math.Abs(st.Speed) < cfg.Friction*dt {
			st.Speed = 0
			st.Acceleration = 0
		}
	}
	st.Speed += st.Acceleration * dt

	pos := v.Position()
	onGrass := m != nil && terrain.IsOnGrass(pos.X(), pos.Z(), m)
	maxSpeed := in.MaxSpeed(onGrass)
	st.Speed = clamp(st.Speed, -cfg.MaxSpeed/2, maxSpeed)

	if input.Brake && math.Abs(st.Speed) < cfg.HardStopSpeed {
		st.Speed = 0
	}

	if math.Abs(st.Speed) > cfg.RotationThreshold {
		v.SetYaw(v.Yaw() + st.SteeringAngle*dt*sign(st.Speed))
	}

	proposed := pos.Add(vehicle.Forward(v.Yaw()).Mul(st.Speed * dt))

	res := Result{}
	if hit, ok := in.detector.FirstHit(v, &proposed, others); ok {
		res.Collided, res.Hit = true, hit
	} else if hit, ok := in.detector.FirstHit(v, &proposed, tiles); ok {
		res.Collided, res.Hit = true, hit
	}

	if res.Collided {
		st.Speed *= -cfg.CollisionBounceFactor
	} else {
		pos = proposed
	}

	if m != nil {
		res.OnGrass = terrain.IsOnGrass(pos.X(), pos.Z(), m)
		if res.OnGrass {
			pos[1] = cfg.GrassHeight
		} else {
			pos[1] = cfg.RoadHeight
		}
	}
	v.SetPosition(pos)

	res.State = st
	return res
}

func approachZero(x, step float64) float64 {
	if math.Abs(x) <= step {
		return 0
	}
	return x - sign(x)*step
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
