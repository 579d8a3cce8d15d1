package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// KMHPerMPS converts simulation speed to the speedometer unit.
const KMHPerMPS = 3.6

// HUDState is what the overlay shows this frame.
type HUDState struct {
	Speed       float64
	MaxSpeed    float64
	Steering    float64
	MaxSteering float64
	TimeOfDay   float64
	CarName     string
	MapName     string
	RewindFill  float64
	Rewinding   bool
	Paused      bool
	Finished    bool
}

// HUD draws the driving overlay.
type HUD struct {
	face *text.GoXFace
}

// NewHUD returns a HUD using the built-in bitmap font.
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face)}
}

// Draw renders the overlay.
func (h *HUD) Draw(screen *ebiten.Image, st HUDState) {
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	h.drawSpeedometer(screen, st)
	h.drawSteeringIndicator(screen, float64(w-80), float64(ht-80), st)
	h.drawClock(screen, float64(w)-170, 20, st.TimeOfDay)
	h.drawRewind(screen, 20, 150, st)

	h.label(screen, fmt.Sprintf("%s  |  %s", st.CarName, st.MapName), 20, float64(ht)-30, 1, color.RGBA{200, 200, 200, 255})

	switch {
	case st.Finished:
		h.banner(screen, "FINISH!", "Enter: back to menu", color.RGBA{255, 200, 50, 255})
	case st.Paused:
		h.banner(screen, "PAUSED", "Esc: resume | Q: quit to menu", color.RGBA{150, 200, 255, 255})
	}
}

// drawSpeedometer draws the speed in km/h with a gauge bar underneath.
func (h *HUD) drawSpeedometer(screen *ebiten.Image, st HUDState) {
	x, y := 20.0, 20.0
	width, height := 180.0, 120.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	kmh := math.Abs(st.Speed) * KMHPerMPS
	speedText := fmt.Sprintf("%.0f", kmh)
	if st.Speed < -0.05 {
		speedText = "R " + speedText
	}

	ratio := 0.0
	if st.MaxSpeed > 0 {
		ratio = math.Min(math.Abs(st.Speed)/st.MaxSpeed, 1)
	}
	h.centred(screen, speedText, x+width/2, y+50, 3, speedColor(ratio))
	h.centred(screen, "KM/H", x+width/2, y+85, 1.5, color.RGBA{200, 200, 200, 255})
	drawGauge(screen, x+10, y+height-25, width-20, 15, ratio)
}

func speedColor(ratio float64) color.RGBA {
	switch {
	case ratio < 0.5:
		return color.RGBA{100, 255, 100, 255}
	case ratio < 0.85:
		return color.RGBA{255, 255, 100, 255}
	}
	return color.RGBA{255, 100, 100, 255}
}

// gaugeColor runs green to yellow to red.
func gaugeColor(ratio float64) color.RGBA {
	if ratio < 0.5 {
		r := ratio / 0.5
		return color.RGBA{uint8(100 + r*155), 255, 100, 255}
	}
	r := (ratio - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - r*155), uint8(100 - r*100), 255}
}

func drawGauge(screen *ebiten.Image, x, y, width, height, ratio float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)
	if filled := width * ratio; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), gaugeColor(ratio), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// drawSteeringIndicator shows the wheel angle; the spoke turns red when the
// wheel is off centre.
func (h *HUD) drawSteeringIndicator(screen *ebiten.Image, cx, cy float64, st HUDState) {
	radius := float32(30)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 4, color.RGBA{100, 100, 100, 255}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 3, color.RGBA{200, 200, 200, 255}, true)

	norm := 0.0
	if st.MaxSteering > 0 {
		norm = st.Steering / st.MaxSteering
	}
	clr := color.RGBA{50, 255, 50, 255}
	if math.Abs(norm) > 0.1 {
		clr = color.RGBA{255, 50, 50, 255}
	}
	// Positive steering is a left turn.
	angle := -norm * math.Pi / 2
	length := float64(radius) - 5
	ex := cx + length*math.Sin(angle)
	ey := cy - length*math.Cos(angle)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 4, clr, true)
}

func (h *HUD) drawClock(screen *ebiten.Image, x, y, tod float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), 150, 36, color.RGBA{20, 20, 30, 200}, false)
	h.label(screen, ClockText(tod), x+12, y+10, 1, color.RGBA{220, 220, 240, 255})
}

// ClockText formats a [0,1) time of day as a 24 hour clock.
func ClockText(tod float64) string {
	mins := int(math.Floor(tod*24*60)) % (24 * 60)
	if mins < 0 {
		mins += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

func (h *HUD) drawRewind(screen *ebiten.Image, x, y float64, st HUDState) {
	clr := color.RGBA{120, 160, 255, 255}
	if st.Rewinding {
		clr = color.RGBA{255, 160, 255, 255}
		h.label(screen, "<< REWIND", x, y+16, 1, clr)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), 180, 8, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(180*math.Max(0, math.Min(1, st.RewindFill))), 8, clr, false)
}

func (h *HUD) banner(screen *ebiten.Image, title, hint string, clr color.RGBA) {
	w, ht := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, float32(ht/2-70), float32(w), 140, color.RGBA{0, 0, 0, 160}, false)
	h.centred(screen, title, w/2, ht/2-40, 4, clr)
	h.centred(screen, hint, w/2, ht/2+30, 1.5, color.RGBA{200, 200, 200, 255})
}

func (h *HUD) centred(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	width := text.Advance(s, h.face) * scale
	h.label(screen, s, cx-width/2, y, scale, clr)
}

func (h *HUD) label(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
