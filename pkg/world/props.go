package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/collision"
	"github.com/golangdaddy/reroute/pkg/terrain"
)

// Prop is a static map obstacle: a building or a streetlight.
type Prop struct {
	Kind    terrain.Kind
	Col     int
	Row     int
	pos     mgl64.Vec3
	half    mgl64.Vec3
	visible bool
}

func newProp(kind terrain.Kind, col, row int, m *terrain.MapDefinition) *Prop {
	x, z := m.Centre(col, row)
	p := &Prop{Kind: kind, Col: col, Row: row, pos: mgl64.Vec3{x, 0, z}, visible: true}
	switch kind {
	case terrain.Building:
		// Heights vary per block but are stable for a given map.
		storeys := 2 + (col*7+row*13)%5
		p.half = mgl64.Vec3{m.TileSize * 0.45, float64(storeys) * 1.6, m.TileSize * 0.45}
	case terrain.Streetlight:
		p.half = mgl64.Vec3{0.15, 2.5, 0.15}
	}
	return p
}

func (p *Prop) Position() mgl64.Vec3 { return p.pos }
func (p *Prop) Visible() bool        { return p.visible }
func (p *Prop) Collidable() bool     { return p.Kind == terrain.Building || p.Kind == terrain.Streetlight }

// Height is the full height of the prop.
func (p *Prop) Height() float64 { return 2 * p.half.Y() }

// HalfExtents returns the footprint half sizes and half height.
func (p *Prop) HalfExtents() mgl64.Vec3 { return p.half }

// Bounds returns the prop's world box; props stand on the ground.
func (p *Prop) Bounds() collision.AABB {
	return collision.FromCentre(p.pos.Add(mgl64.Vec3{0, p.half.Y(), 0}), p.half)
}

// LampPosition is where a streetlight bulb hangs.
func (p *Prop) LampPosition() mgl64.Vec3 {
	return p.pos.Add(mgl64.Vec3{0, p.Height(), 0})
}
