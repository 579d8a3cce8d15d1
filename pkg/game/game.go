// Package game holds the screen flow and the per-tick gameplay loop.
package game

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/golangdaddy/reroute/pkg/background"
	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/logging"
	"github.com/golangdaddy/reroute/pkg/music"
	"github.com/golangdaddy/reroute/pkg/render"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/ui"
	"github.com/golangdaddy/reroute/pkg/vehicle"
)

// backdropSeed picks the skyline shown behind the menus.
const backdropSeed = 42

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Deps are the long-lived services the game is built from.
type Deps struct {
	Settings *config.Settings
	Tuning   config.Tuning
	Maps     map[string]*terrain.MapDefinition
	Store    achievements.Store
	Music    *music.System
	Logger   zerolog.Logger
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	deps          Deps
	mapNames      []string
	tracker       *achievements.Tracker
	unlocks       *achievements.Queue
	renderer      *render.Renderer
	backdrop      *ebiten.Image
	currentScreen Screen
	logger        zerolog.Logger
}

// NewGame creates a new game instance starting on the title screen
func NewGame(deps Deps) *Game {
	g := &Game{
		deps:     deps,
		unlocks:  &achievements.Queue{},
		renderer: render.NewRenderer(deps.Settings.Graphics, logging.Component(deps.Logger, "render")),
		logger:   logging.Component(deps.Logger, "game"),
	}
	g.tracker = achievements.NewTracker(deps.Store, g.unlocks, logging.Component(deps.Logger, "achievements"))

	for name := range deps.Maps {
		g.mapNames = append(g.mapNames, name)
	}
	sort.Strings(g.mapNames)

	w, h := deps.Settings.Window.Width, deps.Settings.Window.Height
	g.backdrop = background.NewGenerator(w, h).GenerateSkyline(backdropSeed)

	g.showTitle()
	return g
}

// Tracker exposes the achievement tracker.
func (g *Game) Tracker() *achievements.Tracker { return g.tracker }

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.backdrop, g.showMenu)
}

func (g *Game) showMenu() {
	total := len(achievements.Catalog())
	g.currentScreen = ui.NewMenuScreen(g.backdrop, g.tracker.UnlockedCount(), total, ui.MenuCallbacks{
		OnDrive:        g.showGarage,
		OnAchievements: g.showAchievements,
		OnReset:        g.tracker.Reset,
	})
}

func (g *Game) showAchievements() {
	g.currentScreen = ui.NewAchievementsScreen(g.tracker, g.showMenu)
}

func (g *Game) showGarage() {
	g.currentScreen = ui.NewGarageScreen(g.mapNames, g.deps.Settings.StartMap, g.startGameplay, g.showMenu)
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay(selectedCar *vehicle.Car, mapName string) {
	m, ok := g.deps.Maps[mapName]
	if !ok || selectedCar == nil {
		g.logger.Error().Str("map", mapName).Msg("cannot start level")
		g.showMenu()
		return
	}

	w, h := g.deps.Settings.Window.Width, g.deps.Settings.Window.Height
	cfg := SessionConfig{
		Map:       m,
		Car:       selectedCar,
		Tuning:    g.deps.Tuning,
		DayLength: g.deps.Settings.DayLength,
		Aspect:    float64(w) / float64(h),
		Tracker:   g.tracker,
		Logger:    logging.Component(g.deps.Logger, "session"),
	}
	if g.deps.Music != nil {
		cfg.Audio = g.deps.Music
	}

	session, err := NewSession(cfg)
	if err != nil {
		g.logger.Error().Err(err).Str("map", mapName).Msg("failed to start level")
		g.showMenu()
		return
	}
	g.currentScreen = NewGameplayScreen(session, g.renderer, ui.NewToasts(g.unlocks), g.showMenu)
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.deps.Settings.Window.Width, g.deps.Settings.Window.Height
}
