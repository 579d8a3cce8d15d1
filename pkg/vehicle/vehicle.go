package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/collision"
)

// Vehicle is a car placed in the world. Position is the centre of the body
// footprint at ground height; the body box sits on top of it.
type Vehicle struct {
	Car *Car

	pos     mgl64.Vec3
	yaw     float64
	half    mgl64.Vec3
	visible bool
}

// New places a car at pos facing yaw.
func New(car *Car, pos mgl64.Vec3, yaw float64) *Vehicle {
	return &Vehicle{
		Car:     car,
		pos:     pos,
		yaw:     yaw,
		half:    mgl64.Vec3{car.Body.Width / 2, car.Body.Height / 2, car.Body.Length / 2},
		visible: true,
	}
}

func (v *Vehicle) Position() mgl64.Vec3       { return v.pos }
func (v *Vehicle) SetPosition(pos mgl64.Vec3) { v.pos = pos }
func (v *Vehicle) Yaw() float64               { return v.yaw }
func (v *Vehicle) Visible() bool              { return v.visible }
func (v *Vehicle) SetVisible(visible bool)    { v.visible = visible }
func (v *Vehicle) Collidable() bool           { return true }
func (v *Vehicle) HalfExtents() mgl64.Vec3    { return v.half }

// SetYaw stores the heading wrapped to [-pi, pi).
func (v *Vehicle) SetYaw(yaw float64) {
	v.yaw = math.Remainder(yaw, 2*math.Pi)
	if v.yaw >= math.Pi {
		v.yaw -= 2 * math.Pi
	}
}

// Forward is the unit heading in the XZ plane.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Forward is the unit heading of the vehicle.
func (v *Vehicle) Forward() mgl64.Vec3 {
	return Forward(v.yaw)
}

// Bounds returns the world AABB of the body.
func (v *Vehicle) Bounds() collision.AABB {
	centre := v.pos.Add(mgl64.Vec3{0, v.half.Y(), 0})
	return collision.OrientedBox(centre, v.half, v.yaw)
}

// Corners returns the eight body corners in world space, bottom face first.
func (v *Vehicle) Corners() [8]mgl64.Vec3 {
	rot := mgl64.Rotate3DY(v.yaw)
	var out [8]mgl64.Vec3
	i := 0
	for _, y := range []float64{0, 2 * v.half.Y()} {
		for _, c := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			local := mgl64.Vec3{c[0] * v.half.X(), y, c[1] * v.half.Z()}
			out[i] = v.pos.Add(rot.Mul3x1(local))
			i++
		}
	}
	return out
}
