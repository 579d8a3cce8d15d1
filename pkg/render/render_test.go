package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/reroute/pkg/camera"
	"github.com/golangdaddy/reroute/pkg/collision"
	"github.com/golangdaddy/reroute/pkg/lighting"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
	"github.com/golangdaddy/reroute/pkg/world"
)

const testMap = `
B.L.B
.S##F
..C..
`

func testScene(t *testing.T) Scene {
	t.Helper()
	m, err := terrain.ParseMap("test", strings.NewReader(testMap))
	require.NoError(t, err)
	car, _ := vehicle.Inventory.ByID("hatchback")
	w, err := world.New(m, car, 0.1)
	require.NoError(t, err)
	return Scene{World: w, Lights: lighting.NoonLevels, Night: true}
}

func overhead() *camera.Camera {
	cam := camera.New(60, 16.0/9)
	cam.Position = mgl64.Vec3{20, 40, -20}
	cam.Target = mgl64.Vec3{20, 0, 10}
	cam.UpdateProjection()
	return cam
}

func TestLookupPreset(t *testing.T) {
	for _, name := range []string{"low", "medium", "high"} {
		p, ok := LookupPreset(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, p.Name)
	}
	_, ok := LookupPreset("ultra")
	assert.False(t, ok)
	assert.Equal(t, []string{"high", "low", "medium"}, PresetNames())
}

func TestRenderer_SetPreset(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("high", zerolog.New(&buf))
	assert.Equal(t, "high", r.Preset().Name)

	assert.False(t, r.SetPreset("potato"))
	assert.Equal(t, "high", r.Preset().Name, "unknown preset keeps the current one")
	assert.Contains(t, buf.String(), "unknown graphics preset")

	r = NewRenderer("", zerolog.Nop())
	assert.Equal(t, DefaultPreset, r.Preset().Name)
}

func TestRenderer_BuildSortsFarToNear(t *testing.T) {
	r := NewRenderer("high", zerolog.Nop())
	r.build(overhead(), 1024, 600, testScene(t))

	require.NotEmpty(t, r.faces)
	for i := 1; i < len(r.faces); i++ {
		assert.GreaterOrEqual(t, r.faces[i-1].depth, r.faces[i].depth)
	}
	assert.NotEmpty(t, r.glows, "streetlights glow at night")
}

func TestRenderer_PresetControlsProps(t *testing.T) {
	sc := testScene(t)

	high := NewRenderer("high", zerolog.Nop())
	high.build(overhead(), 1024, 600, sc)
	low := NewRenderer("low", zerolog.Nop())
	low.build(overhead(), 1024, 600, sc)

	assert.Greater(t, len(high.faces), len(low.faces))
	assert.Empty(t, low.glows)
}

func TestRenderer_HiddenVehicleSkipped(t *testing.T) {
	sc := testScene(t)
	r := NewRenderer("low", zerolog.Nop())

	r.build(overhead(), 1024, 600, sc)
	visible := len(r.faces)

	sc.World.Player.SetVisible(false)
	r.build(overhead(), 1024, 600, sc)
	assert.Equal(t, visible-5, len(r.faces))
}

func TestBoxCorners(t *testing.T) {
	c := boxCorners(collision.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 3}})
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, c[0])
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, c[6])
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, c[i].Y())
		assert.Equal(t, 2.0, c[i+4].Y())
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{200, 100, 50, 255}
	dark := shade(base, lighting.NightLevels, 1)
	bright := shade(base, lighting.NoonLevels, 1)
	assert.Less(t, dark.R, bright.R)
	assert.LessOrEqual(t, shade(color.RGBA{250, 250, 250, 255}, lighting.Intensities{Ambient: 5}, 1).R, uint8(255))
}

func TestClockText(t *testing.T) {
	tests := map[float64]string{
		0:      "00:00",
		0.5:    "12:00",
		0.75:   "18:00",
		0.9999: "23:59",
	}
	for tod, want := range tests {
		assert.Equal(t, want, ClockText(tod))
	}
}

func TestGaugeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, gaugeColor(0))
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, gaugeColor(1))
}

func TestFadeOverlay(t *testing.T) {
	var f FadeOverlay
	f.SetOpacity(1.7)
	assert.Equal(t, 1.0, f.Opacity())
	f.SetOpacity(-1)
	assert.Equal(t, 0.0, f.Opacity())
}
