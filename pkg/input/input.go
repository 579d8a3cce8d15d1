// Package input samples the keyboard and mouse once per tick.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/reroute/pkg/physics"
)

// Frame is everything the game reads from the player in one tick.
type Frame struct {
	Drive  physics.Input
	Rewind bool
	// Horn, Pause and Quit are edge-triggered.
	Horn  bool
	Pause bool
	Quit  bool
	// Any is set when any key, button or mouse movement happened.
	Any bool
}

// KeyState reports whether a key is held.
type KeyState func(ebiten.Key) bool

// Drive maps held keys onto the driving controls. Arrows and WASD both work.
func Drive(held KeyState) physics.Input {
	either := func(a, b ebiten.Key) bool { return held(a) || held(b) }
	return physics.Input{
		Accelerate: either(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:      either(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:       either(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:      either(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}

// Sampler polls ebiten and remembers when the player last did anything.
type Sampler struct {
	lastInput float64
	cursorX   int
	cursorY   int
	keys      []ebiten.Key
}

// NewSampler starts the input clock at now.
func NewSampler(now float64) *Sampler {
	x, y := ebiten.CursorPosition()
	return &Sampler{lastInput: now, cursorX: x, cursorY: y}
}

// Poll reads this tick's input.
func (s *Sampler) Poll(now float64) Frame {
	f := Frame{
		Drive:  Drive(ebiten.IsKeyPressed),
		Rewind: ebiten.IsKeyPressed(ebiten.KeyR),
		Horn:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		Pause:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	x, y := ebiten.CursorPosition()
	moved := x != s.cursorX || y != s.cursorY
	s.cursorX, s.cursorY = x, y

	f.Any = len(s.keys) > 0 || moved ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if f.Any {
		s.lastInput = now
	}
	return f
}

// Touch marks input at now without polling.
func (s *Sampler) Touch(now float64) { s.lastInput = now }

// LastInput is the clock time of the most recent input.
func (s *Sampler) LastInput() float64 { return s.lastInput }
