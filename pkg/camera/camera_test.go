package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_Project(t *testing.T) {
	cam := New(60, 16.0/9)
	cam.Position = mgl64.Vec3{0, 0, -10}
	cam.Target = mgl64.Vec3{0, 0, 0}
	cam.UpdateProjection()

	x, y, depth, ok := cam.Project(mgl64.Vec3{0, 0, 0}, 1600, 900)
	require.True(t, ok)
	assert.InDelta(t, 800, x, 1e-6)
	assert.InDelta(t, 450, y, 1e-6)
	assert.Greater(t, depth, -1.0)
	assert.Less(t, depth, 1.0)

	_, y, _, ok = cam.Project(mgl64.Vec3{0, 2, 0}, 1600, 900)
	require.True(t, ok)
	assert.Less(t, y, 450.0, "up is towards the top of the screen")

	_, _, _, ok = cam.Project(mgl64.Vec3{0, 0, -20}, 1600, 900)
	assert.False(t, ok, "points behind the camera are rejected")
}

func TestChaseControls(t *testing.T) {
	cam := New(60, 1)
	cc := NewChaseControls()

	cc.Snap(cam, mgl64.Vec3{5, 0, 5}, 0)
	assert.InDelta(t, 5-cc.Distance, cam.Position.Z(), 1e-9)
	assert.InDelta(t, cc.Height, cam.Position.Y(), 1e-9)

	before := cam.Position
	cc.Update(cam, mgl64.Vec3{5, 0, 10}, 0, 1.0/60)
	assert.Greater(t, cam.Position.Z(), before.Z())
	assert.Less(t, cam.Position.Z(), 10-cc.Distance)

	cc.Enabled = false
	frozen := cam.Position
	cc.Update(cam, mgl64.Vec3{50, 0, 50}, 0, 1)
	assert.Equal(t, frozen, cam.Position)
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
	assert.Less(t, EaseInOutCubic(0.25), 0.25)
	assert.Greater(t, EaseInOutCubic(0.75), 0.75)
	assert.Equal(t, 1.0, EaseInOutCubic(3))
	assert.Equal(t, 0.0, EaseInOutCubic(-1))
}

func TestFlickerRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := flicker(float64(i) * 0.037)
		assert.GreaterOrEqual(t, v, 0.5)
		assert.LessOrEqual(t, v, 1.0)
	}
}
