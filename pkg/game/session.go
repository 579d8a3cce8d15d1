package game

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/golangdaddy/reroute/pkg/camera"
	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/input"
	"github.com/golangdaddy/reroute/pkg/lighting"
	"github.com/golangdaddy/reroute/pkg/physics"
	"github.com/golangdaddy/reroute/pkg/render"
	"github.com/golangdaddy/reroute/pkg/rewind"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
	"github.com/golangdaddy/reroute/pkg/world"
)

const (
	// HornRadius is how close a parked car must be to react to the horn.
	HornRadius = 15.0
	// HornCooldown limits social reactions to one per this many seconds.
	HornCooldown = 1.0
	// StartTimeOfDay is the clock at the start of every level, mid-morning.
	StartTimeOfDay = 0.35
)

// Audio is the sound the session drives.
type Audio interface {
	SetIdleMode(on bool)
	Honk()
}

// SessionConfig is everything needed to start a level.
type SessionConfig struct {
	Map       *terrain.MapDefinition
	Car       *vehicle.Car
	Tuning    config.Tuning
	DayLength float64
	Aspect    float64
	Tracker   *achievements.Tracker
	Audio     Audio
	Logger    zerolog.Logger
}

// Session is one level being played. It owns the simulation and is advanced
// by Tick; drawing and polling happen in the gameplay screen.
type Session struct {
	world      *world.World
	integrator *physics.Integrator
	state      physics.State
	history    *rewind.Buffer
	rig        *lighting.Rig
	cam        *camera.Camera
	controls   *camera.ChaseControls
	idle       *camera.IdleCamera
	fade       *render.FadeOverlay
	tracker    *achievements.Tracker
	audio      Audio
	logger     zerolog.Logger

	clock        float64
	lastInput    float64
	paused       bool
	rewinding    bool
	finished     bool
	colliding    bool
	hornCooldown float64
}

// NewSession lays out the level and places the chase camera behind the car.
func NewSession(cfg SessionConfig) (*Session, error) {
	w, err := world.New(cfg.Map, cfg.Car, cfg.Tuning.Physics.RoadHeight)
	if err != nil {
		return nil, err
	}

	tracker := cfg.Tracker
	if tracker == nil {
		// Progress is not kept, but the hooks still run.
		tracker = achievements.NewTracker(nil, nil, cfg.Logger)
	}

	s := &Session{
		world:      w,
		integrator: physics.NewIntegrator(cfg.Car.Tune(cfg.Tuning.Physics)),
		history:    rewind.NewBuffer(rewind.DefaultCapacity),
		rig:        lighting.NewRig(cfg.DayLength, StartTimeOfDay),
		cam:        camera.New(cfg.Tuning.IdleCamera.DefaultFOV, cfg.Aspect),
		controls:   camera.NewChaseControls(),
		fade:       &render.FadeOverlay{},
		tracker:    tracker,
		audio:      cfg.Audio,
		logger:     cfg.Logger,
	}

	deps := camera.IdleDeps{
		Camera:    s.cam,
		Controls:  s.controls,
		Overlay:   s.fade,
		Lights:    s.rig,
		OnTrigger: s.tracker.OnIdleCamera,
		Subject:   func() camera.Subject { return s.world.Player },
		LastInput: func() float64 { return s.lastInput },
	}
	if cfg.Audio != nil {
		deps.Music = cfg.Audio
	}
	s.idle = camera.NewIdleCamera(cfg.Tuning.IdleCamera, deps, cfg.Logger)

	s.controls.Snap(s.cam, w.Player.Position(), w.Player.Yaw())
	s.tracker.OnLevelStart()
	s.logger.Info().Str("map", cfg.Map.Name).Str("car", cfg.Car.Name()).Msg("level started")
	return s, nil
}

// Tick advances the level by dt seconds of wall time with this tick's input.
func (s *Session) Tick(f input.Frame, dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.clock += dt

	if f.Any {
		s.lastInput = s.clock
		s.idle.Deactivate()
	}
	if s.finished {
		return
	}
	if f.Pause {
		s.paused = !s.paused
		s.logger.Debug().Bool("paused", s.paused).Msg("pause toggled")
	}
	if s.paused {
		return
	}

	s.hornCooldown = math.Max(0, s.hornCooldown-dt)
	if f.Horn {
		s.honk()
	}

	scaled := dt * s.idle.TimeScale()
	if f.Rewind {
		if !s.rewinding {
			s.tracker.OnRewind()
		}
		s.rewinding = true
		s.stepBack()
	} else {
		s.rewinding = false
		s.drive(f.Drive, scaled)
	}

	s.rig.Update(scaled)
	s.tracker.OnTimeOfDay(s.rig.TimeOfDay())

	s.idle.CheckIdle(s.clock, s.paused, s.rewinding)
	s.idle.Update(dt)
	p := s.world.Player
	s.controls.Update(s.cam, p.Position(), p.Yaw(), dt)
}

func (s *Session) drive(in physics.Input, dt float64) {
	p := s.world.Player
	before := p.Position()
	res := s.integrator.Step(p, s.state, in, dt, s.world.Vehicles(), s.world.Collidables(), s.world.Map)
	s.state = res.State

	if res.Collided && !s.colliding {
		s.tracker.OnCollision()
		s.logger.Debug().Float64("speed", res.Speed).Msg("collision")
	}
	s.colliding = res.Collided
	s.tracker.OnTerrain(res.OnGrass)
	s.tracker.OnSpeed(res.Speed, s.integrator.MaxSpeed(res.OnGrass))
	if res.Speed < 0 {
		s.tracker.OnReverse(p.Position().Sub(before).Len())
	}

	s.history.Push(rewind.Snapshot{Position: p.Position(), Yaw: p.Yaw(), State: s.state})

	switch {
	case s.world.OutOfBounds(p):
		s.tracker.OnOutOfBounds()
		s.world.Respawn(p)
		s.state = physics.State{}
		s.history.Clear()
		s.controls.Snap(s.cam, p.Position(), p.Yaw())
		s.logger.Info().Msg("car left the map, respawned")
	case s.world.AtFinish(p):
		s.finished = true
		s.state = physics.State{}
		s.tracker.OnLevelComplete()
		s.logger.Info().Float64("clock", s.clock).Msg("level complete")
	}
}

// stepBack restores the most recent snapshot. An empty buffer holds the car.
func (s *Session) stepBack() {
	snap, ok := s.history.Pop()
	if !ok {
		s.state = physics.State{}
		return
	}
	p := s.world.Player
	p.SetPosition(snap.Position)
	p.SetYaw(snap.Yaw)
	s.state = snap.State
}

func (s *Session) honk() {
	if s.audio != nil {
		s.audio.Honk()
	}
	if s.hornCooldown > 0 {
		return
	}
	pos := s.world.Player.Position()
	for _, other := range s.world.Parked {
		if other.Position().Sub(pos).Len() <= HornRadius {
			s.hornCooldown = HornCooldown
			s.tracker.OnSocialReaction()
			return
		}
	}
}

// World is the level being played.
func (s *Session) World() *world.World { return s.world }

// Camera is the view the level is drawn from.
func (s *Session) Camera() *camera.Camera { return s.cam }

// Idle is the showcase camera.
func (s *Session) Idle() *camera.IdleCamera { return s.idle }

// Fade is the full-screen overlay the showcase fades through.
func (s *Session) Fade() *render.FadeOverlay { return s.fade }

// Lights is the day/night rig.
func (s *Session) Lights() *lighting.Rig { return s.rig }

// State is the player's integrator state.
func (s *Session) State() physics.State { return s.state }

// MaxSpeed is the player's forward cap on road.
func (s *Session) MaxSpeed() float64 { return s.integrator.MaxSpeed(false) }

// MaxSteering is the steering clamp.
func (s *Session) MaxSteering() float64 { return s.integrator.Config().MaxSteering }

// Clock is the wall time since the level started.
func (s *Session) Clock() float64 { return s.clock }

// History is the rewind buffer.
func (s *Session) History() *rewind.Buffer { return s.history }

func (s *Session) Paused() bool    { return s.paused }
func (s *Session) Rewinding() bool { return s.rewinding }
func (s *Session) Finished() bool  { return s.finished }

// Scene collects what the renderer needs for this frame.
func (s *Session) Scene() render.Scene {
	return render.Scene{
		World:   s.world,
		Lights:  s.rig.Intensities(),
		Night:   s.rig.Night(),
		Sky:     s.rig.SkyColor(),
		Firefly: s.idle.Firefly(),
	}
}

// HUD collects the overlay state for this frame.
func (s *Session) HUD() render.HUDState {
	return render.HUDState{
		Speed:       s.state.Speed,
		MaxSpeed:    s.MaxSpeed(),
		Steering:    s.state.SteeringAngle,
		MaxSteering: s.MaxSteering(),
		TimeOfDay:   s.rig.TimeOfDay(),
		CarName:     s.world.Player.Car.Name(),
		MapName:     s.world.Map.Name,
		RewindFill:  s.history.Fraction(),
		Rewinding:   s.rewinding,
		Paused:      s.paused,
		Finished:    s.finished,
	}
}
