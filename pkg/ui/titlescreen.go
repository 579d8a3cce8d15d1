package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	backdrop       *ebiten.Image
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen over backdrop, which may be nil.
func NewTitleScreen(backdrop *ebiten.Image, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		backdrop:       backdrop,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawBackdrop(screen, ts.backdrop, color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerY := float64(height) / 3

	// Title pulses between 1.0 and 1.1 of its base size.
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1, 1.0+0.2*math.Sin(elapsed*1.5))
	drawTitle(screen, "ROUTE REROUTE", centerY-8, 6.0*pulse, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})

	drawText(screen, "Take the long way home", float64(width)/2, centerY+90, 32, color.RGBA{180, 180, 200, 255})

	// Blink every half second.
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", float64(width)/2, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// drawBackdrop stretches backdrop over the screen, or fills with fallback.
func drawBackdrop(screen, backdrop *ebiten.Image, fallback color.Color) {
	if backdrop == nil {
		screen.Fill(fallback)
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := backdrop.Bounds().Dx(), backdrop.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	op.ColorScale.Scale(0.6, 0.6, 0.6, 1)
	screen.DrawImage(backdrop, op)
}

// drawDecorativeElements draws the thin rules above and below the title block
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height)/6, float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height)*5/6, float32(width), 2, lineColor, false)
}
