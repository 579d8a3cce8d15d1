// Package music plays the ambient soundtrack and the horn.
package music

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// IdleVolumeScale is applied to the music volume while the idle camera runs.
const IdleVolumeScale = 0.4

// Player is the part of an ebiten audio player the system uses.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(float64)
}

// System owns the soundtrack. When audio cannot start the system stays
// usable and silent.
type System struct {
	logger  zerolog.Logger
	ctx     *audio.Context
	synth   *Synth
	player  Player
	horn    []byte
	volume  float64
	enabled bool
	idle    bool
}

// NewSystem opens the audio context and prepares the soundtrack.
func NewSystem(enabled bool, volume float64, logger zerolog.Logger) *System {
	s := &System{
		logger:  logger,
		synth:   NewSynth(),
		horn:    HornPCM(),
		volume:  volume,
		enabled: enabled,
	}
	if !enabled {
		logger.Info().Msg("music disabled in settings")
		return s
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	s.ctx = ctx

	p, err := ctx.NewPlayer(s.synth)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create music player, continuing without music")
		s.enabled = false
		return s
	}
	s.player = p
	s.applyVolume()
	return s
}

func newSystemWithPlayer(p Player, synth *Synth, volume float64, logger zerolog.Logger) *System {
	return &System{logger: logger, synth: synth, player: p, volume: volume, enabled: true}
}

// Start begins playback.
func (s *System) Start() {
	if !s.enabled || s.player == nil || s.player.IsPlaying() {
		return
	}
	s.player.Play()
	s.logger.Debug().Msg("music started")
}

// Stop pauses playback.
func (s *System) Stop() {
	if s.player == nil {
		return
	}
	s.player.Pause()
}

// SetIdleMode muffles the soundtrack while the showcase camera runs.
func (s *System) SetIdleMode(on bool) {
	if s.idle == on {
		return
	}
	s.idle = on
	s.synth.SetMuffled(on)
	s.applyVolume()
	s.logger.Debug().Bool("idle", on).Msg("music idle mode")
}

// IdleMode reports whether the soundtrack is muffled.
func (s *System) IdleMode() bool { return s.idle }

// Enabled reports whether music is playing or can play.
func (s *System) Enabled() bool { return s.enabled }

// SetVolume changes the base volume in [0,1].
func (s *System) SetVolume(v float64) {
	s.volume = v
	s.applyVolume()
}

// Volume is the volume the player is currently set to.
func (s *System) Volume() float64 {
	if s.idle {
		return s.volume * IdleVolumeScale
	}
	return s.volume
}

// Honk plays the horn once.
func (s *System) Honk() {
	if s.ctx == nil {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.horn)
	p.SetVolume(s.volume)
	p.Play()
}

func (s *System) applyVolume() {
	if s.player == nil {
		return
	}
	s.player.SetVolume(s.Volume())
}

var _ io.Reader = (*Synth)(nil)
