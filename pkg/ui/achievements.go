package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const achievementsPerPage = 9

// Progress reports how far along an achievement is.
type Progress interface {
	IsUnlocked(id string) bool
	Progress(id string) (have, want int)
}

// AchievementsScreen lists the catalogue with unlock state and counters.
type AchievementsScreen struct {
	entries  []achievements.Definition
	progress Progress
	page     int
	onBack   func()
}

// NewAchievementsScreen creates the list screen.
func NewAchievementsScreen(progress Progress, onBack func()) *AchievementsScreen {
	return &AchievementsScreen{
		entries:  achievements.Catalog(),
		progress: progress,
		onBack:   onBack,
	}
}

func (as *AchievementsScreen) pages() int {
	return (len(as.entries) + achievementsPerPage - 1) / achievementsPerPage
}

// Update handles paging and leaving the screen
func (as *AchievementsScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if as.onBack != nil {
			as.onBack()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && as.page < as.pages()-1 {
		as.page++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && as.page > 0 {
		as.page--
	}
	return nil
}

// Draw renders the current page
func (as *AchievementsScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})
	drawTitle(screen, "ACHIEVEMENTS", 40, 4, titleColor)

	start := as.page * achievementsPerPage
	end := min(start+achievementsPerPage, len(as.entries))
	rowX := float64(width)/2 - 340
	page := as.entries[start:end]
	for i, d := range page {
		y := 130 + float64(i)*56
		if heading := categoryHeading(page, i); heading != "" {
			drawTextAt(screen, heading, 24, y, 1.25, titleColor)
		}
		unlocked := as.progress != nil && as.progress.IsUnlocked(d.ID)
		clr := lockedColor
		if unlocked {
			clr = unlockedAccentColor
			vector.DrawFilledCircle(screen, float32(rowX)-16, float32(y)+10, 6, unlockedAccentColor, true)
		} else {
			vector.StrokeCircle(screen, float32(rowX)-16, float32(y)+10, 6, 1.5, lockedColor, true)
		}
		drawTextAt(screen, d.Title, rowX, y, 1.5, clr)
		drawTextAt(screen, d.Description, rowX, y+26, 1, instructionColor)
		if line := progressLine(as.progress, d); line != "" {
			drawTextAt(screen, line, rowX+560, y, 1.5, clr)
		}
	}

	footer := fmt.Sprintf("Page %d/%d | Left/Right: Page | Esc: Back", as.page+1, max(as.pages(), 1))
	drawText(screen, footer, float64(width)/2, float64(height)-40, 18, instructionColor)
}

// categoryHeading is the category title for the first row of each group on
// a page, and empty for the rows that follow it.
func categoryHeading(page []achievements.Definition, i int) string {
	if i < 0 || i >= len(page) {
		return ""
	}
	if i > 0 && page[i-1].Category == page[i].Category {
		return ""
	}
	return page[i].Category.Title()
}

// progressLine renders counter progress such as "12/25". One-shot
// achievements have no line.
func progressLine(p Progress, d achievements.Definition) string {
	if !d.IsCounter() {
		return ""
	}
	if p == nil {
		return fmt.Sprintf("0/%d", d.Target)
	}
	have, want := p.Progress(d.ID)
	return fmt.Sprintf("%d/%d", have, want)
}
