// Package camera holds the perspective camera, the chase controls that follow
// the player and the idle showcase camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera. FOV is vertical, in degrees.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64

	viewProj mgl64.Mat4
}

// New returns a camera looking down +Z from behind the origin.
func New(fov, aspect float64) *Camera {
	c := &Camera{
		Position: mgl64.Vec3{0, 4, -10},
		FOV:      fov,
		Aspect:   aspect,
		Near:     0.1,
		Far:      400,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection rebuilds the cached view-projection matrix. Call it after
// moving the camera or changing the lens.
func (c *Camera) UpdateProjection() {
	up := mgl64.Vec3{0, 1, 0}
	if c.Target.Sub(c.Position).Normalize().Cross(up).Len() < 1e-6 {
		up = mgl64.Vec3{0, 0, 1}
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, c.Target, up)
	c.viewProj = proj.Mul4(view)
}

// ViewProjection is the cached matrix.
func (c *Camera) ViewProjection() mgl64.Mat4 { return c.viewProj }

// Project maps a world point to screen pixels for a w x h viewport. depth is
// the normalised device depth; ok is false for points behind the camera.
func (c *Camera) Project(p mgl64.Vec3, w, h float64) (x, y, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= c.Near*0.5 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * w
	y = (1 - ndc.Y()) * 0.5 * h
	return x, y, ndc.Z(), true
}

// Distance from the camera to p.
func (c *Camera) Distance(p mgl64.Vec3) float64 {
	return p.Sub(c.Position).Len()
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}
