// Package lighting runs the day/night cycle and the scene light levels.
package lighting

import (
	"image/color"
	"math"
)

// Intensities are the three scene light levels.
type Intensities struct {
	Ambient    float64
	Sun        float64
	Hemisphere float64
}

// Scale multiplies every level by s.
func (i Intensities) Scale(s float64) Intensities {
	return Intensities{Ambient: i.Ambient * s, Sun: i.Sun * s, Hemisphere: i.Hemisphere * s}
}

func mix(a, b Intensities, t float64) Intensities {
	return Intensities{
		Ambient:    a.Ambient + (b.Ambient-a.Ambient)*t,
		Sun:        a.Sun + (b.Sun-a.Sun)*t,
		Hemisphere: a.Hemisphere + (b.Hemisphere-a.Hemisphere)*t,
	}
}

var (
	// NightLevels are the intensities at midnight.
	NightLevels = Intensities{Ambient: 0.15, Sun: 0.05, Hemisphere: 0.1}
	// NoonLevels are the intensities at midday.
	NoonLevels = Intensities{Ambient: 0.6, Sun: 1.0, Hemisphere: 0.5}
)

// Rig owns the time of day. Zero is midnight, 0.5 is noon.
type Rig struct {
	dayLength float64
	timeOfDay float64
	current   Intensities
	dimmed    bool
}

// NewRig starts the cycle at start. A dayLength of zero or less freezes time.
func NewRig(dayLength, start float64) *Rig {
	r := &Rig{dayLength: dayLength, timeOfDay: wrap(start)}
	r.current = r.levelsAt(r.timeOfDay)
	return r
}

// Update advances the cycle by dt seconds. While dimmed the clock keeps
// running but the emitted levels stay where Dim put them.
func (r *Rig) Update(dt float64) {
	if r.dayLength > 0 && dt > 0 {
		r.timeOfDay = wrap(r.timeOfDay + dt/r.dayLength)
	}
	if !r.dimmed {
		r.current = r.levelsAt(r.timeOfDay)
	}
}

// TimeOfDay is in [0,1).
func (r *Rig) TimeOfDay() float64 { return r.timeOfDay }

// SetTimeOfDay jumps the clock.
func (r *Rig) SetTimeOfDay(t float64) {
	r.timeOfDay = wrap(t)
	if !r.dimmed {
		r.current = r.levelsAt(r.timeOfDay)
	}
}

// Intensities are the levels to light the scene with this frame.
func (r *Rig) Intensities() Intensities { return r.current }

// Snapshot returns the current levels for a later Restore.
func (r *Rig) Snapshot() Intensities { return r.current }

// Dim scales the current levels and holds them until Restore.
func (r *Rig) Dim(scale float64) {
	if r.dimmed {
		return
	}
	r.dimmed = true
	r.current = r.current.Scale(scale)
}

// Restore puts the levels back to i and resumes the cycle.
func (r *Rig) Restore(i Intensities) {
	r.dimmed = false
	r.current = i
}

// Dimmed reports whether Dim is in effect.
func (r *Rig) Dimmed() bool { return r.dimmed }

// Daylight is 0 at midnight and 1 at noon.
func (r *Rig) Daylight() float64 {
	return daylight(r.timeOfDay)
}

// Night reports whether the streetlights should be on.
func (r *Rig) Night() bool {
	return r.Daylight() < 0.3
}

// SkyColor blends the night and day sky for the current levels.
func (r *Rig) SkyColor() color.RGBA {
	d := r.Daylight()
	if r.dimmed {
		d *= r.current.Ambient / math.Max(r.levelsAt(r.timeOfDay).Ambient, 1e-6)
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*d) }
	return color.RGBA{R: lerp(12, 120), G: lerp(16, 170), B: lerp(40, 230), A: 255}
}

func (r *Rig) levelsAt(t float64) Intensities {
	return mix(NightLevels, NoonLevels, daylight(t))
}

func daylight(t float64) float64 {
	return 0.5 - 0.5*math.Cos(2*math.Pi*t)
}

func wrap(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	return t
}
