// Package render draws the world with a small projected-polygon renderer and
// the driving HUD on top.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/reroute/pkg/camera"
	"github.com/golangdaddy/reroute/pkg/collision"
	"github.com/golangdaddy/reroute/pkg/lighting"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
	"github.com/golangdaddy/reroute/pkg/world"
)

var (
	grassColor    = color.RGBA{54, 130, 52, 255}
	roadColor     = color.RGBA{70, 72, 78, 255}
	kerbColor     = color.RGBA{120, 120, 126, 255}
	finishColor   = color.RGBA{230, 230, 230, 255}
	startColor    = color.RGBA{90, 150, 220, 255}
	buildingColor = color.RGBA{176, 160, 140, 255}
	poleColor     = color.RGBA{60, 60, 64, 255}
	lampColor     = color.RGBA{255, 214, 120, 255}
	fireflyColor  = color.RGBA{200, 255, 140, 255}
)

// Scene is what one frame shows.
type Scene struct {
	World   *world.World
	Lights  lighting.Intensities
	Night   bool
	Sky     color.RGBA
	Firefly *camera.Firefly
}

type face struct {
	pts   [4][2]float32
	n     int
	depth float64
	clr   color.RGBA
}

type glow struct {
	x, y   float32
	radius float32
	clr    color.RGBA
	depth  float64
}

// Renderer draws scenes. It keeps scratch buffers between frames.
type Renderer struct {
	logger zerolog.Logger
	preset Preset
	white  *ebiten.Image
	faces  []face
	glows  []glow
	verts  []ebiten.Vertex
	idx    []uint16
}

// NewRenderer builds a renderer with the named preset, falling back to the
// default preset when the name is unknown.
func NewRenderer(preset string, logger zerolog.Logger) *Renderer {
	r := &Renderer{logger: logger}
	r.preset, _ = LookupPreset(DefaultPreset)
	r.SetPreset(preset)
	return r
}

// SetPreset switches detail level. Unknown names are logged and ignored.
func (r *Renderer) SetPreset(name string) bool {
	p, ok := LookupPreset(name)
	if !ok {
		r.logger.Warn().Str("preset", name).Strs("known", PresetNames()).Msg("unknown graphics preset")
		return false
	}
	r.preset = p
	return true
}

// Preset is the active preset.
func (r *Renderer) Preset() Preset { return r.preset }

// Draw renders sc from cam.
func (r *Renderer) Draw(screen *ebiten.Image, cam *camera.Camera, sc Scene) {
	screen.Fill(sc.Sky)
	if cam == nil || sc.World == nil {
		return
	}
	b := screen.Bounds()
	r.build(cam, float64(b.Dx()), float64(b.Dy()), sc)

	if r.white == nil {
		r.white = ebiten.NewImage(3, 3)
		r.white.Fill(color.White)
	}
	r.verts, r.idx = r.verts[:0], r.idx[:0]
	for _, f := range r.faces {
		if len(r.verts)+4 > math.MaxUint16 {
			r.flush(screen)
		}
		base := uint16(len(r.verts))
		for i := 0; i < f.n; i++ {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX: f.pts[i][0], DstY: f.pts[i][1],
				SrcX: 1, SrcY: 1,
				ColorR: float32(f.clr.R) / 255, ColorG: float32(f.clr.G) / 255,
				ColorB: float32(f.clr.B) / 255, ColorA: 1,
			})
		}
		r.idx = append(r.idx, base, base+1, base+2)
		if f.n == 4 {
			r.idx = append(r.idx, base, base+2, base+3)
		}
	}
	r.flush(screen)

	for _, g := range r.glows {
		vector.DrawFilledCircle(screen, g.x, g.y, g.radius, g.clr, true)
	}
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.idx) == 0 {
		return
	}
	screen.DrawTriangles(r.verts, r.idx, r.white, nil)
	r.verts, r.idx = r.verts[:0], r.idx[:0]
}

// build projects the visible geometry into r.faces, sorted far to near.
func (r *Renderer) build(cam *camera.Camera, w, h float64, sc Scene) {
	r.faces, r.glows = r.faces[:0], r.glows[:0]
	m := sc.World.Map
	focus := cam.Target
	reach := r.preset.DrawDistance

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			x, z := m.Centre(col, row)
			if math.Hypot(x-focus.X(), z-focus.Z()) > reach {
				continue
			}
			tile := m.Tiles[row][col]
			h0 := 0.0
			if !tile.IsGrass() {
				h0 = 0.02
			}
			s := m.TileSize / 2
			quad := [4]mgl64.Vec3{
				{x - s, h0, z - s}, {x + s, h0, z - s}, {x + s, h0, z + s}, {x - s, h0, z + s},
			}
			r.addFace(cam, w, h, quad[:], shade(tileColor(tile, col, row), sc.Lights, 1))
		}
	}

	if r.preset.Props {
		for _, p := range sc.World.Props {
			c := p.Position()
			if math.Hypot(c.X()-focus.X(), c.Z()-focus.Z()) > reach {
				continue
			}
			clr := buildingColor
			if p.Kind == terrain.Streetlight {
				clr = poleColor
			}
			r.addBox(cam, w, h, boxCorners(p.Bounds()), clr, sc.Lights)
			if p.Kind == terrain.Streetlight && sc.Night && r.preset.Glow {
				r.addGlow(cam, w, h, p.LampPosition(), 18, lampColor, 120)
			}
		}
	}

	for _, o := range sc.World.Vehicles() {
		v, ok := o.(*vehicle.Vehicle)
		if !ok || !v.Visible() {
			continue
		}
		r.addBox(cam, w, h, v.Corners(), v.Car.Paint, sc.Lights)
	}

	if ff := sc.Firefly; ff != nil && ff.Visible {
		a := uint8(math.Min(255, 180*ff.Intensity))
		r.addGlow(cam, w, h, ff.Position, 10*ff.Intensity, color.RGBA{fireflyColor.R, fireflyColor.G, fireflyColor.B, a}, 0)
	}

	sort.SliceStable(r.faces, func(i, j int) bool { return r.faces[i].depth > r.faces[j].depth })
	sort.SliceStable(r.glows, func(i, j int) bool { return r.glows[i].depth > r.glows[j].depth })
}

func (r *Renderer) addFace(cam *camera.Camera, w, h float64, pts []mgl64.Vec3, clr color.RGBA) {
	f := face{n: len(pts), clr: clr}
	var centre mgl64.Vec3
	for i, p := range pts {
		x, y, _, ok := cam.Project(p, w, h)
		if !ok {
			return
		}
		f.pts[i] = [2]float32{float32(x), float32(y)}
		centre = centre.Add(p)
	}
	f.depth = cam.Distance(centre.Mul(1 / float64(len(pts))))
	r.faces = append(r.faces, f)
}

func (r *Renderer) addBox(cam *camera.Camera, w, h float64, c [8]mgl64.Vec3, clr color.RGBA, li lighting.Intensities) {
	r.addFace(cam, w, h, []mgl64.Vec3{c[4], c[5], c[6], c[7]}, shade(clr, li, 1))
	sides := [4][4]int{{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7}}
	for i, s := range sides {
		k := 0.62
		if i%2 == 1 {
			k = 0.8
		}
		r.addFace(cam, w, h, []mgl64.Vec3{c[s[0]], c[s[1]], c[s[2]], c[s[3]]}, shade(clr, li, k))
	}
}

func (r *Renderer) addGlow(cam *camera.Camera, w, h float64, p mgl64.Vec3, size float64, clr color.RGBA, alpha uint8) {
	x, y, _, ok := cam.Project(p, w, h)
	if !ok {
		return
	}
	d := math.Max(cam.Distance(p), 1)
	if alpha > 0 {
		clr.A = alpha
	}
	// Premultiply for the vector package.
	k := float64(clr.A) / 255
	clr.R, clr.G, clr.B = uint8(float64(clr.R)*k), uint8(float64(clr.G)*k), uint8(float64(clr.B)*k)
	r.glows = append(r.glows, glow{x: float32(x), y: float32(y), radius: float32(size * 10 / d), clr: clr, depth: d})
}

// boxCorners lists an AABB's corners bottom face first, matching
// vehicle.Corners.
func boxCorners(b collision.AABB) [8]mgl64.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), hi.Z()}, {lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()}, {hi.X(), hi.Y(), lo.Z()}, {hi.X(), hi.Y(), hi.Z()}, {lo.X(), hi.Y(), hi.Z()},
	}
}

func tileColor(t terrain.Tile, col, row int) color.RGBA {
	switch t.Kind {
	case terrain.Road, terrain.ParkedCar:
		return roadColor
	case terrain.Start:
		return startColor
	case terrain.Finish:
		if (col+row)%2 == 0 {
			return finishColor
		}
		return roadColor
	case terrain.Building:
		return kerbColor
	}
	return grassColor
}

// shade scales a base colour by the scene lights; k is the face's share of
// direct sunlight.
func shade(c color.RGBA, li lighting.Intensities, k float64) color.RGBA {
	l := math.Min(1.2, li.Ambient+li.Hemisphere*0.4+li.Sun*0.6*k)
	scale := func(v uint8) uint8 { return uint8(math.Min(255, float64(v)*l)) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), 255}
}
