package game

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/input"
	"github.com/golangdaddy/reroute/pkg/physics"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
)

const tick = 1.0 / 60

const straight = `
.........
.S#####F.
.........
`

const withParked = `
.........
.SC####F.
.........
`

type fakeAudio struct {
	idle  bool
	honks int
}

func (f *fakeAudio) SetIdleMode(on bool) { f.idle = on }
func (f *fakeAudio) Honk()               { f.honks++ }

type harness struct {
	session *Session
	tracker *achievements.Tracker
	audio   *fakeAudio
}

func newHarness(t *testing.T, layout string, dayLength float64) *harness {
	t.Helper()
	m, err := terrain.ParseMap("test", strings.NewReader(layout))
	require.NoError(t, err)
	car, ok := vehicle.Inventory.ByID("hatchback")
	require.True(t, ok)

	h := &harness{
		tracker: achievements.NewTracker(achievements.NewMemoryStore(), nil, zerolog.Nop()),
		audio:   &fakeAudio{},
	}
	h.session, err = NewSession(SessionConfig{
		Map:       m,
		Car:       car,
		Tuning:    config.DefaultTuning(),
		DayLength: dayLength,
		Aspect:    16.0 / 9,
		Tracker:   h.tracker,
		Audio:     h.audio,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	return h
}

func held(in physics.Input) input.Frame {
	return input.Frame{Drive: in, Any: true}
}

func TestNewSession_PlacesCarOnStart(t *testing.T) {
	h := newHarness(t, straight, 240)
	p := h.session.World().Player.Position()
	assert.InDelta(t, 10.0, p.X(), 1e-9)
	assert.InDelta(t, 10.0, p.Z(), 1e-9)

	cam := h.session.Camera()
	assert.Less(t, cam.Position.X(), p.X(), "chase camera sits behind the car")
	assert.False(t, h.session.Finished())
	assert.Equal(t, 0.0, h.session.State().Speed)
}

func TestNewSession_RejectsMapWithoutStart(t *testing.T) {
	m := &terrain.MapDefinition{Name: "empty", TileSize: 10, Cols: 1, Rows: 1, Tiles: [][]terrain.Tile{{{Kind: terrain.Road}}}}
	car, _ := vehicle.Inventory.ByID("hatchback")
	_, err := NewSession(SessionConfig{
		Map:     m,
		Car:     car,
		Tuning:  config.DefaultTuning(),
		Tracker: achievements.NewTracker(achievements.NewMemoryStore(), nil, zerolog.Nop()),
		Logger:  zerolog.Nop(),
	})
	assert.Error(t, err)
}

func TestSession_DriveToFinish(t *testing.T) {
	h := newHarness(t, straight, 240)
	for i := 0; i < 600 && !h.session.Finished(); i++ {
		h.session.Tick(held(physics.Input{Accelerate: true}), tick)
	}
	require.True(t, h.session.Finished())

	for _, id := range []string{
		achievements.RoadTrip,
		achievements.CleanDriver,
		achievements.TarmacOnly,
		achievements.InsideTheLines,
		achievements.PerfectRun,
		achievements.SpeedDemon,
	} {
		assert.True(t, h.tracker.IsUnlocked(id), id)
	}
	assert.False(t, h.tracker.IsUnlocked(achievements.FirstCrash))

	// The car is parked once the level is over.
	pos := h.session.World().Player.Position()
	h.session.Tick(held(physics.Input{Accelerate: true}), tick)
	assert.Equal(t, pos, h.session.World().Player.Position())
	assert.True(t, h.session.HUD().Finished)
}

func TestSession_OutOfBoundsRespawns(t *testing.T) {
	h := newHarness(t, straight, 240)
	for i := 0; i < 600 && !h.tracker.IsUnlocked(achievements.OutOfBounds); i++ {
		h.session.Tick(held(physics.Input{Brake: true}), tick)
	}
	require.True(t, h.tracker.IsUnlocked(achievements.OutOfBounds))
	assert.True(t, h.tracker.IsUnlocked(achievements.OffRoad))
	assert.True(t, h.tracker.Session().WentOutOfBounds)

	p := h.session.World().Player.Position()
	assert.InDelta(t, 10.0, p.X(), 1e-9)
	assert.InDelta(t, 10.0, p.Z(), 1e-9)
	assert.Equal(t, physics.State{}, h.session.State())
	assert.Equal(t, 0, h.session.History().Len())
}

func TestSession_PauseFreezesTheCar(t *testing.T) {
	h := newHarness(t, straight, 240)
	h.session.Tick(input.Frame{Pause: true, Any: true}, tick)
	require.True(t, h.session.Paused())

	start := h.session.World().Player.Position()
	for i := 0; i < 30; i++ {
		h.session.Tick(held(physics.Input{Accelerate: true}), tick)
	}
	assert.Equal(t, start, h.session.World().Player.Position())

	h.session.Tick(input.Frame{Pause: true, Any: true}, tick)
	assert.False(t, h.session.Paused())
	h.session.Tick(held(physics.Input{Accelerate: true}), tick)
	assert.Greater(t, h.session.World().Player.Position().X(), start.X())
}

func TestSession_RewindReturnsAlongThePath(t *testing.T) {
	h := newHarness(t, straight, 240)
	start := h.session.World().Player.Position()
	for i := 0; i < 30; i++ {
		h.session.Tick(held(physics.Input{Accelerate: true}), tick)
	}
	require.Equal(t, 30, h.session.History().Len())
	moved := h.session.World().Player.Position()
	require.Greater(t, moved.X(), start.X())

	for i := 0; i < 40; i++ {
		h.session.Tick(input.Frame{Rewind: true, Any: true}, tick)
	}
	assert.True(t, h.session.Rewinding())
	assert.InDelta(t, start.X(), h.session.World().Player.Position().X(), 0.01)
	assert.Equal(t, 0, h.session.History().Len())
	assert.True(t, h.tracker.IsUnlocked(achievements.SecondChance))
	assert.Equal(t, 1, h.tracker.Count(achievements.TimeLord), "holding the key counts once")

	h.session.Tick(input.Frame{Any: true}, tick)
	assert.False(t, h.session.Rewinding())
	h.session.Tick(input.Frame{Rewind: true, Any: true}, tick)
	assert.Equal(t, 2, h.tracker.Count(achievements.TimeLord))
}

func TestSession_HornNearParkedCar(t *testing.T) {
	h := newHarness(t, withParked, 240)
	horn := input.Frame{Horn: true, Any: true}

	h.session.Tick(horn, tick)
	h.session.Tick(horn, tick)
	assert.Equal(t, 2, h.audio.honks)
	assert.Equal(t, 1, h.tracker.Count(achievements.HonkHonk), "cooldown")

	for i := 0; i < 70; i++ {
		h.session.Tick(input.Frame{Any: true}, tick)
	}
	h.session.Tick(horn, tick)
	assert.Equal(t, 2, h.tracker.Count(achievements.HonkHonk))
}

func TestSession_HornWithNobodyAround(t *testing.T) {
	h := newHarness(t, straight, 240)
	h.session.Tick(input.Frame{Horn: true, Any: true}, tick)
	assert.Equal(t, 1, h.audio.honks)
	assert.Equal(t, 0, h.tracker.Count(achievements.HonkHonk))
}

func TestSession_IdleCameraTakesOverAndHandsBack(t *testing.T) {
	h := newHarness(t, straight, 240)
	trigger := config.DefaultIdleCamera().TriggerAfter

	for i := 0; i < int(trigger/0.5)+2; i++ {
		h.session.Tick(input.Frame{}, 0.5)
	}
	require.True(t, h.session.Idle().Active())
	assert.True(t, h.tracker.IsUnlocked(achievements.Screensaver))
	assert.True(t, h.audio.idle)
	assert.Greater(t, h.session.Fade().Opacity(), 0.0)

	h.session.Tick(input.Frame{Any: true}, tick)
	assert.False(t, h.session.Idle().Active())
	assert.False(t, h.audio.idle)
	assert.Equal(t, 0.0, h.session.Fade().Opacity())
}

func TestSession_PausedNeverGoesIdle(t *testing.T) {
	h := newHarness(t, straight, 240)
	h.session.Tick(input.Frame{Pause: true, Any: true}, tick)
	for i := 0; i < 100; i++ {
		h.session.Tick(input.Frame{}, 0.5)
	}
	assert.False(t, h.session.Idle().Active())
}

func TestSession_FullDayUnlocksFullCircle(t *testing.T) {
	h := newHarness(t, straight, 2)
	for i := 0; i < 100; i++ {
		h.session.Tick(input.Frame{Any: true}, 0.05)
	}
	assert.True(t, h.tracker.IsUnlocked(achievements.FullCircle))
	assert.Equal(t, 1, h.tracker.Count(achievements.NightShift))
}

func TestSession_NextLevelRestartsDayDetection(t *testing.T) {
	h := newHarness(t, straight, 2)
	for i := 0; i < 20; i++ {
		h.session.Tick(input.Frame{Any: true}, 0.05)
	}

	m, err := terrain.ParseMap("test", strings.NewReader(straight))
	require.NoError(t, err)
	car, _ := vehicle.Inventory.ByID("hatchback")
	next, err := NewSession(SessionConfig{
		Map:       m,
		Car:       car,
		Tuning:    config.DefaultTuning(),
		DayLength: 2,
		Aspect:    16.0 / 9,
		Tracker:   h.tracker,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		next.Tick(input.Frame{Any: true}, 0.05)
	}
	assert.False(t, h.tracker.IsUnlocked(achievements.FullCircle))
	assert.Equal(t, 0, h.tracker.Count(achievements.NightShift))
}

func TestNewSession_WithoutTracker(t *testing.T) {
	m, err := terrain.ParseMap("test", strings.NewReader(straight))
	require.NoError(t, err)
	car, _ := vehicle.Inventory.ByID("hatchback")
	s, err := NewSession(SessionConfig{
		Map:       m,
		Car:       car,
		Tuning:    config.DefaultTuning(),
		DayLength: 240,
		Aspect:    16.0 / 9,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		for i := 0; i < 600 && !s.Finished(); i++ {
			s.Tick(held(physics.Input{Accelerate: true}), tick)
		}
	})
	assert.True(t, s.Finished())
}

func TestSession_SceneAndHUD(t *testing.T) {
	h := newHarness(t, straight, 240)
	sc := h.session.Scene()
	assert.Same(t, h.session.World(), sc.World)
	assert.Nil(t, sc.Firefly)

	hud := h.session.HUD()
	assert.Equal(t, "test", hud.MapName)
	assert.Equal(t, "Honda Civic", hud.CarName)
	assert.InDelta(t, 20.0, hud.MaxSpeed, 1e-9)
}
