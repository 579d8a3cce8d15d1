package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FadeOverlay is a full-screen black layer drawn over the scene.
type FadeOverlay struct {
	opacity float64
}

// SetOpacity clamps to [0,1].
func (f *FadeOverlay) SetOpacity(o float64) {
	f.opacity = math.Max(0, math.Min(1, o))
}

// Opacity is the current level.
func (f *FadeOverlay) Opacity() float64 { return f.opacity }

// Draw covers screen; a transparent overlay draws nothing.
func (f *FadeOverlay) Draw(screen *ebiten.Image) {
	if f.opacity <= 0 {
		return
	}
	b := screen.Bounds()
	a := uint8(math.Round(f.opacity * 255))
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: a}, false)
}
