package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ChaseControls trail the player car. When disabled they leave the camera
// alone so something else can drive it.
type ChaseControls struct {
	Enabled bool
	Target  mgl64.Vec3

	Distance  float64
	Height    float64
	Stiffness float64
}

// NewChaseControls returns enabled controls with the default trailing offset.
func NewChaseControls() *ChaseControls {
	return &ChaseControls{
		Enabled:   true,
		Distance:  9,
		Height:    4,
		Stiffness: 6,
	}
}

// Update eases cam toward a point behind a car at pos facing yaw.
func (cc *ChaseControls) Update(cam *Camera, pos mgl64.Vec3, yaw, dt float64) {
	if cc == nil || !cc.Enabled || cam == nil {
		return
	}
	cc.Target = pos.Add(mgl64.Vec3{0, 1, 0})
	desired := pos.Sub(forward(yaw).Mul(cc.Distance)).Add(mgl64.Vec3{0, cc.Height, 0})

	k := math.Min(1, cc.Stiffness*math.Max(dt, 0))
	cam.Position = cam.Position.Add(desired.Sub(cam.Position).Mul(k))
	cam.Target = cc.Target
	cam.UpdateProjection()
}

// Snap places cam at the trailing position immediately.
func (cc *ChaseControls) Snap(cam *Camera, pos mgl64.Vec3, yaw float64) {
	if cc == nil || cam == nil {
		return
	}
	cc.Target = pos.Add(mgl64.Vec3{0, 1, 0})
	cam.Position = pos.Sub(forward(yaw).Mul(cc.Distance)).Add(mgl64.Vec3{0, cc.Height, 0})
	cam.Target = cc.Target
	cam.UpdateProjection()
}
