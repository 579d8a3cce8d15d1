package ui

import (
	"image/color"

	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastDuration is how long each unlock banner stays on screen, in seconds.
const ToastDuration = 3.0

const toastFade = 0.4

// Toasts shows queued achievement unlocks one at a time.
type Toasts struct {
	queue   *achievements.Queue
	current *achievements.Definition
	elapsed float64
}

// NewToasts drains unlocks from queue.
func NewToasts(queue *achievements.Queue) *Toasts {
	return &Toasts{queue: queue}
}

// Update advances the banner clock by dt seconds.
func (t *Toasts) Update(dt float64) {
	if t.current != nil {
		t.elapsed += dt
		if t.elapsed < ToastDuration {
			return
		}
		t.current = nil
	}
	if t.queue == nil {
		return
	}
	if d, ok := t.queue.Pop(); ok {
		t.current = &d
		t.elapsed = 0
	}
}

// Current is the banner on screen, if any.
func (t *Toasts) Current() (achievements.Definition, bool) {
	if t.current == nil {
		return achievements.Definition{}, false
	}
	return *t.current, true
}

// Alpha fades the banner in and out at the ends of its life.
func (t *Toasts) Alpha() float64 {
	if t.current == nil {
		return 0
	}
	switch {
	case t.elapsed < toastFade:
		return t.elapsed / toastFade
	case t.elapsed > ToastDuration-toastFade:
		return max(0, (ToastDuration-t.elapsed)/toastFade)
	}
	return 1
}

// Draw renders the current banner at the top of the screen.
func (t *Toasts) Draw(screen *ebiten.Image) {
	d, ok := t.Current()
	if !ok {
		return
	}
	a := t.Alpha()
	width := float64(screen.Bounds().Dx())
	w, h := 420.0, 64.0
	x, y := width/2-w/2, 20.0

	bg := color.RGBA{20, 30, 20, uint8(220 * a)}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, scaleAlpha(unlockedAccentColor, a), false)
	drawText(screen, "Achievement unlocked: "+d.Title, width/2, y+22, 18, scaleAlpha(unlockedAccentColor, a))
	drawText(screen, d.Description, width/2, y+46, 14, scaleAlpha(buttonTextColor, a))
}

// scaleAlpha premultiplies c by a.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), uint8(float64(c.A) * a)}
}
