package config

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPhysics_Valid(t *testing.T) {
	p := DefaultPhysics()
	require.NoError(t, p.Validate())
	assert.Equal(t, 5.0, p.AccelerationRate)
	assert.InDelta(t, math.Pi/4, p.MaxSteering, 1e-12)
}

func TestParsePhysics_PartialOverride(t *testing.T) {
	p, err := ParsePhysics([]byte("maxSpeed: 30\ngrassSpeedScale: 0.4\n"))
	require.NoError(t, err)

	assert.Equal(t, 30.0, p.MaxSpeed)
	assert.Equal(t, 0.4, p.GrassSpeedScale)
	assert.Equal(t, 5.0, p.AccelerationRate, "untouched keys keep defaults")
}

func TestParsePhysics_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative max speed", "maxSpeed: -1"},
		{"steering above quarter turn", "maxSteering: 1.2"},
		{"hitbox grows", "hitboxScale: 1.5"},
		{"not yaml", "maxSpeed: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePhysics([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseIdleCamera_SegmentsReplaceDefaults(t *testing.T) {
	doc := `
triggerAfter: 10
segments:
  - name: only
    duration: 4
    orbit: {from: 0, to: 90}
    elevation: {from: 10, to: 20}
    distance: {from: 5, to: 6}
    fov: {from: 50, to: 50}
`
	c, err := ParseIdleCamera([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 10.0, c.TriggerAfter)
	require.Len(t, c.Segments, 1)
	assert.Equal(t, "only", c.Segments[0].Name)
	assert.Nil(t, c.Segments[0].Pitch)
	assert.Equal(t, 1.5, c.FadeDuration)
}

func TestParseIdleCamera_KeepsDefaultSegments(t *testing.T) {
	c, err := ParseIdleCamera([]byte("dimScale: 0.5\n"))
	require.NoError(t, err)
	assert.Len(t, c.Segments, len(DefaultIdleCamera().Segments))
	assert.Equal(t, 0.5, c.DimScale)
}

func TestParseIdleCamera_RejectsZeroDuration(t *testing.T) {
	doc := `
segments:
  - name: broken
    duration: 0
    distance: {from: 5, to: 6}
`
	_, err := ParseIdleCamera([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestIdleCamera_TotalFade(t *testing.T) {
	c := DefaultIdleCamera()
	assert.InDelta(t, 4.0, c.TotalFade(), 1e-12)
}

func TestLoadTuning(t *testing.T) {
	fsys := fstest.MapFS{
		PhysicsFile: {Data: []byte("friction: 4\n")},
	}
	tun, err := LoadTuning(fsys)
	require.NoError(t, err)

	assert.Equal(t, 4.0, tun.Physics.Friction)
	assert.Equal(t, DefaultIdleCamera().TriggerAfter, tun.IdleCamera.TriggerAfter)
}

func TestLoadTuning_BrokenDocument(t *testing.T) {
	fsys := fstest.MapFS{
		IdleCameraFile: {Data: []byte("fadeDuration: -2\n")},
	}
	_, err := LoadTuning(fsys)
	assert.ErrorIs(t, err, ErrInvalidTuning)
}
