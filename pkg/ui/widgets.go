package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	buttonColor         = color.RGBA{40, 40, 60, 255}
	buttonTextColor     = color.RGBA{255, 255, 255, 255}
	highlightColor      = color.RGBA{60, 100, 140, 255}
	highlightTextColor  = color.RGBA{200, 240, 255, 255}
	buttonBorderColor   = color.RGBA{80, 80, 100, 255}
	instructionColor    = color.RGBA{150, 150, 150, 255}
	titleColor          = color.RGBA{255, 200, 50, 255}
	lockedColor         = color.RGBA{120, 120, 130, 255}
	unlockedAccentColor = color.RGBA{120, 220, 120, 255}
)

// buttonColors picks the normal or highlighted palette.
func buttonColors(selected bool) (bg, fg color.RGBA) {
	if selected {
		return highlightColor, highlightTextColor
	}
	return buttonColor, buttonTextColor
}

// drawButton draws a button with background and text
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, buttonBorderColor, false)

	// The bitmap font is 16px tall; its centre is about 8px below the origin.
	textWidth := text.Advance(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+width/2-textWidth/2, y+height/2-8)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, op)
}

// drawText draws text centred on (centerX, centerY) at the given pixel size.
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	width := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws left-aligned text with its top-left corner at (x, y).
func drawTextAt(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTitle draws a large centred heading.
func drawTitle(screen *ebiten.Image, title string, y, scale float64, clr color.Color) {
	width := float64(screen.Bounds().Dx())
	textWidth := text.Advance(title, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(width/2-textWidth/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, title, face, op)
}

// cursor is a wrapping selection index over n entries.
type cursor struct {
	index int
	n     int
}

func (c *cursor) next() {
	if c.n > 0 {
		c.index = (c.index + 1) % c.n
	}
}

func (c *cursor) prev() {
	if c.n > 0 {
		c.index = (c.index - 1 + c.n) % c.n
	}
}
