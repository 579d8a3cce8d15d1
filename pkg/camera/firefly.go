package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/config"
)

// Firefly is the small flickering light that circles the car while the idle
// camera runs.
type Firefly struct {
	Position  mgl64.Vec3
	Intensity float64
	Visible   bool

	cfg   config.Firefly
	angle float64
	clock float64
}

func newFirefly(cfg config.Firefly) *Firefly {
	return &Firefly{cfg: cfg}
}

// Update moves the light around centre and recomputes the flicker.
func (f *Firefly) Update(centre mgl64.Vec3, dt float64) {
	f.clock += dt
	f.angle = math.Mod(f.angle+f.cfg.OrbitSpeed*dt, 2*math.Pi)
	bob := 0.2 * math.Sin(f.clock*1.7)
	f.Position = centre.Add(mgl64.Vec3{
		math.Cos(f.angle) * f.cfg.OrbitRadius,
		f.cfg.Height + bob,
		math.Sin(f.angle) * f.cfg.OrbitRadius,
	})
	f.Intensity = f.cfg.Intensity * flicker(f.clock)
}

// flicker stays in [0.5, 1].
func flicker(t float64) float64 {
	v := 0.75 + 0.15*math.Sin(t*7.3) + 0.07*math.Sin(t*13.1+1.3) + 0.03*math.Sin(t*29.7+0.4)
	return math.Max(0.5, math.Min(1, v))
}
