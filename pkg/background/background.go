// Package background paints the menu backdrop: a dusk skyline over a lit
// road.
package background

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates backdrop textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateSkyline returns the backdrop as an ebiten image.
func (g *Generator) GenerateSkyline(seed int64) *ebiten.Image {
	return ebiten.NewImageFromImage(g.Paint(seed))
}

// Paint renders the backdrop for seed. The same seed always paints the same
// picture.
func (g *Generator) Paint(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))
	horizon := g.Height * 2 / 3

	// Sky fades from deep blue to orange at the horizon.
	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		c := color.RGBA{
			uint8(20 + t*200),
			uint8(24 + t*90),
			uint8(70 - t*20),
			255,
		}
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Stars in the upper sky.
	for i := 0; i < g.Width*g.Height/800; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(horizon / 2)
		img.SetRGBA(x, y, color.RGBA{230, 230, 255, 255})
	}

	// Buildings left to right with random widths and heights.
	for x := 0; x < g.Width; {
		w := 30 + rng.Intn(50)
		h := horizon/6 + rng.Intn(horizon/2)
		g.drawBuilding(img, x, horizon, w, h, rng)
		x += w + rng.Intn(8)
	}

	// Ground and road.
	g.fill(img, 0, horizon, g.Width, g.Height, color.RGBA{30, 60, 34, 255})
	roadTop := horizon + (g.Height-horizon)/3
	g.fill(img, 0, roadTop, g.Width, roadTop+(g.Height-horizon)/3, color.RGBA{50, 50, 56, 255})
	mid := roadTop + (g.Height-horizon)/6
	for x := 0; x < g.Width; x += 40 {
		g.fill(img, x, mid-1, x+20, mid+1, color.RGBA{230, 220, 120, 255})
	}

	// Streetlights along the near kerb.
	for x := 40; x < g.Width; x += 160 {
		g.drawStreetlight(img, x, roadTop)
	}

	return img
}

// drawBuilding draws a block with a scatter of lit windows
func (g *Generator) drawBuilding(img *image.RGBA, x, base, w, h int, rng *rand.Rand) {
	shade := uint8(25 + rng.Intn(25))
	g.fill(img, x, base-h, x+w, base, color.RGBA{shade, shade, shade + 10, 255})

	lit := color.RGBA{255, 210, 120, 255}
	for wy := base - h + 6; wy < base-6; wy += 10 {
		for wx := x + 4; wx < x+w-6; wx += 9 {
			if rng.Float64() < 0.35 {
				g.fill(img, wx, wy, wx+4, wy+5, lit)
			}
		}
	}
}

// drawStreetlight draws a pole with a glowing lamp
func (g *Generator) drawStreetlight(img *image.RGBA, x, base int) {
	g.fill(img, x, base-60, x+3, base, color.RGBA{70, 70, 75, 255})
	g.fill(img, x-6, base-64, x+9, base-60, color.RGBA{255, 220, 140, 255})

	// Soft glow pool on the road.
	for dy := -12; dy <= 12; dy++ {
		for dx := -30; dx <= 30; dx++ {
			if dx*dx/4+dy*dy > 144 {
				continue
			}
			px, py := x+dx, base+8+dy
			if px < 0 || px >= g.Width || py < 0 || py >= g.Height {
				continue
			}
			c := img.RGBAAt(px, py)
			c.R = uint8(min(255, int(c.R)+40))
			c.G = uint8(min(255, int(c.G)+32))
			c.B = uint8(min(255, int(c.B)+10))
			img.SetRGBA(px, py, c)
		}
	}
}

func (g *Generator) fill(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
