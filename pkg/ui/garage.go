package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/reroute/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GarageScreen represents the car and route selection screen
type GarageScreen struct {
	cars          []*vehicle.Car
	maps          []string
	carCursor     cursor
	mapCursor     cursor
	onCarSelected func(car *vehicle.Car, mapName string)
	onBack        func()
}

// NewGarageScreen creates a new garage selection screen. maps lists the
// route names the player can cycle through with left and right.
func NewGarageScreen(maps []string, startMap string, onCarSelected func(*vehicle.Car, string), onBack func()) *GarageScreen {
	cars := vehicle.Inventory.GetAllCars()
	gs := &GarageScreen{
		cars:          cars,
		maps:          maps,
		carCursor:     cursor{n: len(cars)},
		mapCursor:     cursor{n: len(maps)},
		onCarSelected: onCarSelected,
		onBack:        onBack,
	}
	for i, name := range maps {
		if name == startMap {
			gs.mapCursor.index = i
		}
	}
	return gs
}

// SelectedCar is the highlighted car, or nil when the inventory is empty.
func (gs *GarageScreen) SelectedCar() *vehicle.Car {
	if len(gs.cars) == 0 {
		return nil
	}
	return gs.cars[gs.carCursor.index]
}

// SelectedMap is the highlighted route name.
func (gs *GarageScreen) SelectedMap() string {
	if len(gs.maps) == 0 {
		return ""
	}
	return gs.maps[gs.mapCursor.index]
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && gs.onBack != nil {
		gs.onBack()
		return nil
	}
	if len(gs.cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		gs.carCursor.prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		gs.carCursor.next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		gs.mapCursor.prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		gs.mapCursor.next()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onCarSelected != nil {
			gs.onCarSelected(gs.SelectedCar(), gs.SelectedMap())
		}
	}
	return nil
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	drawTitle(screen, "SELECT CAR", 50, 4, titleColor)
	centerX := float64(width) / 2

	if len(gs.cars) == 0 {
		drawText(screen, "No cars available", centerX, float64(height)/2, 24, buttonTextColor)
		return
	}

	startY := 150.0
	carSpacing := 80.0
	buttonWidth := 640.0
	buttonHeight := 60.0
	buttonX := centerX - buttonWidth/2

	for i, c := range gs.cars {
		bg, fg := buttonColors(i == gs.carCursor.index)
		drawButton(screen, formatCarInfo(c), buttonX, startY+float64(i)*carSpacing, buttonWidth, buttonHeight, bg, fg)
	}

	if name := gs.SelectedMap(); name != "" {
		routeY := startY + float64(len(gs.cars))*carSpacing + 30
		drawText(screen, "< Route: "+name+" >", centerX, routeY, 24, highlightTextColor)
	}

	drawText(screen, "Up/Down: Car | Left/Right: Route | Enter: Drive | Esc: Back", centerX, float64(height)-50, 18, instructionColor)
}

// formatCarInfo formats car information for display
func formatCarInfo(c *vehicle.Car) string {
	return fmt.Sprintf("%s (%d) - Weight: %.0f kg | Top: %.0f%% | Brake Eff: %.1f%% | %s",
		c.Name(), c.Year, c.Weight, c.TopSpeed*100, c.Brakes.Efficiency()*100, c.Brakes.Type)
}
