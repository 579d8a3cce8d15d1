package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/reroute/pkg/input"
	"github.com/golangdaddy/reroute/pkg/render"
	"github.com/golangdaddy/reroute/pkg/ui"
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	session   *Session
	sampler   *input.Sampler
	renderer  *render.Renderer
	hud       *render.HUD
	toasts    *ui.Toasts
	onGameEnd func() // Callback when the player leaves the level
}

// NewGameplayScreen wraps a running session with polling and drawing.
func NewGameplayScreen(session *Session, renderer *render.Renderer, toasts *ui.Toasts, onGameEnd func()) *GameplayScreen {
	return &GameplayScreen{
		session:   session,
		sampler:   input.NewSampler(session.Clock()),
		renderer:  renderer,
		hud:       render.NewHUD(),
		toasts:    toasts,
		onGameEnd: onGameEnd,
	}
}

// Update polls input and advances the level by one tick
func (gs *GameplayScreen) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	f := gs.sampler.Poll(gs.session.Clock())

	leave := (gs.session.Paused() && f.Quit) ||
		(gs.session.Finished() && inpututil.IsKeyJustPressed(ebiten.KeyEnter))
	if leave {
		gs.session.Idle().Deactivate()
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}

	gs.session.Tick(f, dt)
	gs.toasts.Update(dt)
	return nil
}

// Draw renders the world, the fade and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.session.Camera(), gs.session.Scene())
	gs.session.Fade().Draw(screen)

	// The showcase runs without the overlay.
	if !gs.session.Idle().Active() {
		gs.hud.Draw(screen, gs.session.HUD())
	}
	gs.toasts.Draw(screen)
}
