package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuAction is a main menu entry.
type MenuAction int

const (
	ActionDrive MenuAction = iota
	ActionAchievements
	ActionReset
)

var menuLabels = []string{"Drive", "Achievements", "Reset Achievements"}

// MenuCallbacks are invoked when an entry is chosen.
type MenuCallbacks struct {
	OnDrive        func()
	OnAchievements func()
	OnReset        func()
}

// MenuScreen is the main menu. Reset needs a second confirmation.
type MenuScreen struct {
	cursor     cursor
	confirming bool
	status     string
	unlocked   int
	total      int
	backdrop   *ebiten.Image
	callbacks  MenuCallbacks
}

// NewMenuScreen creates the main menu. unlocked and total feed the progress
// line under the title.
func NewMenuScreen(backdrop *ebiten.Image, unlocked, total int, callbacks MenuCallbacks) *MenuScreen {
	return &MenuScreen{
		cursor:    cursor{n: len(menuLabels)},
		unlocked:  unlocked,
		total:     total,
		backdrop:  backdrop,
		callbacks: callbacks,
	}
}

// Selected is the highlighted entry.
func (ms *MenuScreen) Selected() MenuAction { return MenuAction(ms.cursor.index) }

// Update handles input for the menu
func (ms *MenuScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ms.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ms.move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ms.activate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ms.confirming = false
	}
	return nil
}

func (ms *MenuScreen) move(step int) {
	ms.confirming = false
	if step < 0 {
		ms.cursor.prev()
	} else {
		ms.cursor.next()
	}
}

func (ms *MenuScreen) activate() {
	switch ms.Selected() {
	case ActionDrive:
		if ms.callbacks.OnDrive != nil {
			ms.callbacks.OnDrive()
		}
	case ActionAchievements:
		if ms.callbacks.OnAchievements != nil {
			ms.callbacks.OnAchievements()
		}
	case ActionReset:
		if !ms.confirming {
			ms.confirming = true
			return
		}
		ms.confirming = false
		if ms.callbacks.OnReset != nil {
			ms.callbacks.OnReset()
		}
		ms.unlocked = 0
		ms.status = "Achievements reset"
	}
}

// Draw renders the main menu
func (ms *MenuScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawBackdrop(screen, ms.backdrop, color.RGBA{20, 20, 30, 255})

	drawTitle(screen, "ROUTE REROUTE", float64(height)/4-8, 5, titleColor)
	drawText(screen, fmt.Sprintf("%d / %d achievements", ms.unlocked, ms.total), float64(width)/2, float64(height)/4+70, 18, color.RGBA{200, 200, 220, 255})

	buttonWidth, buttonHeight := 320.0, 50.0
	optionY := float64(height) / 2
	optionSpacing := 70.0
	buttonX := float64(width)/2 - buttonWidth/2

	for i, label := range menuLabels {
		if MenuAction(i) == ActionReset && ms.confirming {
			label = "Press Enter to confirm"
		}
		bg, fg := buttonColors(i == ms.cursor.index)
		drawButton(screen, label, buttonX, optionY+float64(i)*optionSpacing, buttonWidth, buttonHeight, bg, fg)
	}

	if ms.status != "" {
		drawText(screen, ms.status, float64(width)/2, float64(height)-90, 18, unlockedAccentColor)
	}
	drawText(screen, "Arrow Keys: Navigate | Enter: Select", float64(width)/2, float64(height)-50, 20, instructionColor)
}
