package music

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// SampleRate is the audio context rate.
const SampleRate = 48000

const (
	chordLength = 8.0
	swellPeriod = 12.0
	glide       = 0.0004
	openAlpha   = 1.0
	muffleAlpha = 0.06
	gain        = 0.1
)

// progression is Am F C G, four voices each, in Hz.
var progression = [][4]float64{
	{220.00, 261.63, 329.63, 440.00},
	{174.61, 220.00, 261.63, 349.23},
	{196.00, 261.63, 329.63, 392.00},
	{196.00, 246.94, 293.66, 392.00},
}

var voicePan = [4]float64{0.3, 0.6, 0.4, 0.7}

// Synth renders an endless ambient pad as 16-bit little-endian stereo PCM.
// Read is called from the audio goroutine; SetMuffled may be called from the
// game loop.
type Synth struct {
	muffled atomic.Bool

	pos      int64
	phases   [4]float64
	freqs    [4]float64
	lowLeft  float64
	lowRight float64
}

// NewSynth returns a synth starting on the first chord.
func NewSynth() *Synth {
	s := &Synth{}
	s.freqs = progression[0]
	return s
}

// SetMuffled switches the low-pass filter used for idle mode.
func (s *Synth) SetMuffled(on bool) { s.muffled.Store(on) }

// Muffled reports whether the low-pass is engaged.
func (s *Synth) Muffled() bool { return s.muffled.Load() }

// Read fills p with whole stereo frames.
func (s *Synth) Read(p []byte) (int, error) {
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		l, r := s.next()
		binary.LittleEndian.PutUint16(p[i:], uint16(toPCM(l)))
		binary.LittleEndian.PutUint16(p[i+2:], uint16(toPCM(r)))
	}
	return n, nil
}

func (s *Synth) next() (float64, float64) {
	t := float64(s.pos) / SampleRate
	chord := progression[int(t/chordLength)%len(progression)]

	var l, r float64
	for v := range s.freqs {
		s.freqs[v] += (chord[v] - s.freqs[v]) * glide
		s.phases[v] = math.Mod(s.phases[v]+2*math.Pi*s.freqs[v]/SampleRate, 2*math.Pi)
		sample := math.Sin(s.phases[v]) + 0.3*math.Sin(3*s.phases[v])
		l += sample * (1 - voicePan[v])
		r += sample * voicePan[v]
	}
	swell := 0.6 + 0.4*math.Sin(2*math.Pi*t/swellPeriod)
	l *= gain * swell
	r *= gain * swell

	alpha := openAlpha
	if s.muffled.Load() {
		alpha = muffleAlpha
	}
	s.lowLeft += alpha * (l - s.lowLeft)
	s.lowRight += alpha * (r - s.lowRight)
	s.pos++
	return s.lowLeft, s.lowRight
}

func toPCM(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// HornPCM renders a short two-tone horn blast.
func HornPCM() []byte {
	const seconds = 0.35
	frames := int(seconds * SampleRate)
	out := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		env := math.Min(1, t*40) * math.Min(1, (seconds-t)*20)
		v := 0.25 * env * (square(392*t) + square(494*t))
		pcm := uint16(toPCM(v))
		binary.LittleEndian.PutUint16(out[i*4:], pcm)
		binary.LittleEndian.PutUint16(out[i*4+2:], pcm)
	}
	return out
}

func square(cycles float64) float64 {
	if math.Mod(cycles, 1) < 0.5 {
		return 1
	}
	return -1
}
