package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/reroute/assets"
	"github.com/golangdaddy/reroute/pkg/achievements"
	"github.com/golangdaddy/reroute/pkg/config"
	"github.com/golangdaddy/reroute/pkg/game"
	"github.com/golangdaddy/reroute/pkg/logging"
	"github.com/golangdaddy/reroute/pkg/music"
	"github.com/golangdaddy/reroute/pkg/terrain"
)

func main() {
	settings, err := config.Load(".")
	if err != nil {
		// No logger yet; use a bare one so the failure is still structured.
		bare := logging.Setup("info", true)
		bare.Fatal().Err(err).Msg("failed to load settings")
	}
	logger := logging.Setup(settings.LogLevel, settings.ConsoleLog)

	tuning, err := loadTuning(settings.TuningDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load tuning")
	}

	maps, err := terrain.LoadMaps(assets.FS(), assets.MapDir, logging.Component(logger, "terrain"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load maps")
	}
	if _, ok := maps[settings.StartMap]; !ok {
		logger.Warn().Str("map", settings.StartMap).Msg("start map not found, using the first one")
	}

	store := achievements.OpenStore(settings.AppName, logging.Component(logger, "storage"))

	jukebox := music.NewSystem(settings.Music.Enabled, settings.Music.Volume, logging.Component(logger, "music"))
	jukebox.Start()
	defer jukebox.Stop()

	g := game.NewGame(game.Deps{
		Settings: settings,
		Tuning:   tuning,
		Maps:     maps,
		Store:    store,
		Music:    jukebox,
		Logger:   logger,
	})

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game loop stopped")
	}
}

// loadTuning uses the embedded tuning unless dir names an override directory.
func loadTuning(dir string, logger zerolog.Logger) (config.Tuning, error) {
	if dir == "" {
		return config.LoadTuning(assets.Tuning())
	}
	logger.Info().Str("dir", dir).Msg("loading tuning overrides")
	return config.LoadTuning(os.DirFS(dir))
}
