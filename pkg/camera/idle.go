package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/lighting"
)

// Phase is the top-level idle camera state.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseActive
	// PhaseReturning is reserved; Deactivate goes straight to inactive.
	PhaseReturning
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseActive:
		return "active"
	case PhaseReturning:
		return "returning"
	}
	return "unknown"
}

// SubPhase is the step of the timeline while active.
type SubPhase int

const (
	SubFadeIn SubPhase = iota
	SubBlackHold
	SubFadeOut
	SubOrbit
)

func (s SubPhase) String() string {
	switch s {
	case SubFadeIn:
		return "fade-in"
	case SubBlackHold:
		return "black-hold"
	case SubFadeOut:
		return "fade-out"
	case SubOrbit:
		return "orbit"
	}
	return "unknown"
}

// Subject is the car the idle camera shows off.
type Subject interface {
	Position() mgl64.Vec3
	Yaw() float64
	Visible() bool
	SetVisible(bool)
}

// Overlay is the full-screen fade.
type Overlay interface {
	SetOpacity(float64)
}

// Lights can be dimmed and restored.
type Lights interface {
	Snapshot() lighting.Intensities
	Dim(scale float64)
	Restore(lighting.Intensities)
}

// Music has a muffled idle mode.
type Music interface {
	SetIdleMode(on bool)
}

// IdleDeps are the collaborators the idle camera drives. Any of them may be
// nil; the matching step is skipped.
type IdleDeps struct {
	Camera    *Camera
	Controls  *ChaseControls
	Overlay   Overlay
	Lights    Lights
	Music     Music
	OnTrigger func()
	Subject   func() Subject
	LastInput func() float64
}

type idleSession struct {
	sub     SubPhase
	timer   float64
	segment int
	opacity float64

	controlsWere bool
	visibleWere  bool
	subject      Subject
	lights       lighting.Intensities
	haveLights   bool
	firefly      *Firefly
}

// IdleCamera takes over the view after the player stops touching the
// controls, fades to black and then orbits the car until input returns.
type IdleCamera struct {
	cfg    config.IdleCamera
	deps   IdleDeps
	logger zerolog.Logger

	phase   Phase
	session *idleSession
}

// NewIdleCamera wires the idle camera to deps.
func NewIdleCamera(cfg config.IdleCamera, deps IdleDeps, logger zerolog.Logger) *IdleCamera {
	return &IdleCamera{cfg: cfg, deps: deps, logger: logger, phase: PhaseInactive}
}

// Phase is the current top-level state.
func (ic *IdleCamera) Phase() Phase { return ic.phase }

// Active reports whether the showcase is running.
func (ic *IdleCamera) Active() bool { return ic.phase == PhaseActive }

// SubPhase is the current timeline step. It is SubFadeIn when inactive.
func (ic *IdleCamera) SubPhase() SubPhase {
	if ic.session == nil {
		return SubFadeIn
	}
	return ic.session.sub
}

// Opacity of the fade overlay.
func (ic *IdleCamera) Opacity() float64 {
	if ic.session == nil {
		return 0
	}
	return ic.session.opacity
}

// Segment is the index of the orbit segment playing.
func (ic *IdleCamera) Segment() int {
	if ic.session == nil {
		return 0
	}
	return ic.session.segment
}

// Firefly is the decorative light, or nil when inactive.
func (ic *IdleCamera) Firefly() *Firefly {
	if ic.session == nil {
		return nil
	}
	return ic.session.firefly
}

// TimeScale is how fast the rest of the game should run. Gameplay crawls
// while the screen fades to black.
func (ic *IdleCamera) TimeScale() float64 {
	if ic.session == nil {
		return 1
	}
	switch ic.session.sub {
	case SubFadeIn, SubBlackHold:
		return ic.cfg.SlowTimeScale
	}
	return 1
}

// CheckIdle activates the camera when the last input is older than the
// trigger delay. It returns true if it activated.
func (ic *IdleCamera) CheckIdle(now float64, paused, rewinding bool) bool {
	if ic.phase != PhaseInactive || paused || rewinding || ic.deps.LastInput == nil {
		return false
	}
	if now-ic.deps.LastInput() <= ic.cfg.TriggerAfter {
		return false
	}
	ic.Activate()
	return true
}

// Activate starts the showcase. It is a no-op when already active.
func (ic *IdleCamera) Activate() {
	if ic.phase != PhaseInactive {
		return
	}
	s := &idleSession{sub: SubFadeIn}

	if c := ic.deps.Controls; c != nil {
		s.controlsWere = c.Enabled
		c.Enabled = false
	}
	if ic.deps.Subject != nil {
		if subj := ic.deps.Subject(); subj != nil {
			s.subject = subj
			s.visibleWere = subj.Visible()
		}
	}
	if ic.deps.OnTrigger != nil {
		ic.deps.OnTrigger()
	}
	if l := ic.deps.Lights; l != nil {
		s.lights = l.Snapshot()
		s.haveLights = true
	}
	if m := ic.deps.Music; m != nil {
		m.SetIdleMode(true)
	}
	s.firefly = newFirefly(ic.cfg.Firefly)

	ic.session = s
	ic.phase = PhaseActive
	ic.setOpacity(0)
	ic.logger.Debug().Msg("idle camera activated")
}

// Deactivate hands the view back to the player.
func (ic *IdleCamera) Deactivate() {
	if ic.phase != PhaseActive || ic.session == nil {
		return
	}
	s := ic.session

	if s.subject != nil {
		s.subject.SetVisible(s.visibleWere)
	}
	if cam := ic.deps.Camera; cam != nil {
		cam.FOV = ic.cfg.DefaultFOV
		cam.UpdateProjection()
	}
	if c := ic.deps.Controls; c != nil {
		c.Enabled = s.controlsWere
	}
	ic.setOpacity(0)
	if l := ic.deps.Lights; l != nil && s.haveLights {
		l.Restore(s.lights)
	}
	if m := ic.deps.Music; m != nil {
		m.SetIdleMode(false)
	}

	ic.session = nil
	ic.phase = PhaseInactive
	ic.logger.Debug().Msg("idle camera deactivated")
}

// Update runs the timeline by dt seconds. Leftover time carries into the
// next step so a long frame cannot stall the sequence.
func (ic *IdleCamera) Update(dt float64) {
	if ic.phase != PhaseActive || ic.session == nil || dt < 0 {
		return
	}
	s := ic.session
	s.timer += dt
	fade := ic.cfg.FadeDuration

	for {
		switch s.sub {
		case SubFadeIn:
			if s.timer < fade {
				ic.setOpacity(s.timer / fade)
				return
			}
			s.timer -= fade
			s.sub = SubBlackHold
			ic.enterBlackHold()
		case SubBlackHold:
			ic.setOpacity(1)
			if s.timer < ic.cfg.BlackHoldDuration {
				return
			}
			s.timer -= ic.cfg.BlackHoldDuration
			s.sub = SubFadeOut
			s.firefly.Visible = true
		case SubFadeOut:
			if s.timer < fade {
				ic.setOpacity(1 - s.timer/fade)
				ic.updateFirefly(dt)
				return
			}
			s.timer -= fade
			s.sub = SubOrbit
		case SubOrbit:
			ic.setOpacity(0)
			ic.orbit()
			ic.updateFirefly(dt)
			return
		default:
			return
		}
	}
}

func (ic *IdleCamera) enterBlackHold() {
	s := ic.session
	if l := ic.deps.Lights; l != nil {
		l.Dim(ic.cfg.DimScale)
	}
	if s.subject != nil {
		s.subject.SetVisible(true)
	}
	if len(ic.cfg.Segments) > 0 {
		ic.place(ic.cfg.Segments[0], 0)
	}
}

func (ic *IdleCamera) orbit() {
	s := ic.session
	segs := ic.cfg.Segments
	if len(segs) == 0 {
		return
	}
	for s.timer >= segs[s.segment].Duration {
		s.timer -= segs[s.segment].Duration
		s.segment = (s.segment + 1) % len(segs)
	}
	seg := segs[s.segment]
	ic.place(seg, EaseInOutCubic(s.timer/seg.Duration))
}

func (ic *IdleCamera) updateFirefly(dt float64) {
	s := ic.session
	if s.firefly == nil || s.subject == nil {
		return
	}
	s.firefly.Update(s.subject.Position(), dt)
}

// place puts the camera on a sphere around the subject. Orbit is measured
// from the car's heading.
func (ic *IdleCamera) place(seg config.Segment, t float64) {
	cam, subj := ic.deps.Camera, ic.session.subject
	if cam == nil || subj == nil {
		return
	}
	yaw := subj.Yaw()
	orbit := mgl64.DegToRad(lerp(seg.Orbit.From, seg.Orbit.To, t)) + yaw
	elev := mgl64.DegToRad(lerp(seg.Elevation.From, seg.Elevation.To, t))
	dist := lerp(seg.Distance.From, seg.Distance.To, t)

	pos := subj.Position()
	offset := mgl64.Vec3{
		dist * math.Cos(elev) * math.Sin(orbit),
		dist * math.Sin(elev),
		dist * math.Cos(elev) * math.Cos(orbit),
	}
	look := pos.Add(forward(yaw).Mul(ic.cfg.LookAhead)).Add(mgl64.Vec3{0, ic.cfg.LookHeight, 0})
	if seg.Pitch != nil {
		look[1] += dist * math.Tan(mgl64.DegToRad(lerp(seg.Pitch.From, seg.Pitch.To, t)))
	}

	cam.Position = pos.Add(offset)
	cam.Target = look
	cam.FOV = lerp(seg.FOV.From, seg.FOV.To, t)
	cam.UpdateProjection()
}

func (ic *IdleCamera) setOpacity(o float64) {
	if ic.session != nil {
		ic.session.opacity = o
	}
	if ic.deps.Overlay != nil {
		ic.deps.Overlay.SetOpacity(o)
	}
}
