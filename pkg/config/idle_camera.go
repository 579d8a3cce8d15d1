package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Range is an initial -> final pair interpolated over a segment.
type Range struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Segment is one leg of the idle camera orbit. Angles are in degrees.
type Segment struct {
	Name      string  `yaml:"name"`
	Duration  float64 `yaml:"duration"`
	Orbit     Range   `yaml:"orbit"`
	Elevation Range   `yaml:"elevation"`
	Distance  Range   `yaml:"distance"`
	FOV       Range   `yaml:"fov"`
	Pitch     *Range  `yaml:"pitch,omitempty"`
}

// Firefly tunes the decorative light that circles the car.
type Firefly struct {
	OrbitRadius float64 `yaml:"orbitRadius"`
	OrbitSpeed  float64 `yaml:"orbitSpeed"`
	Height      float64 `yaml:"height"`
	Intensity   float64 `yaml:"intensity"`
}

// IdleCamera holds the showcase camera timeline.
type IdleCamera struct {
	TriggerAfter      float64   `yaml:"triggerAfter"`
	FadeDuration      float64   `yaml:"fadeDuration"`
	BlackHoldDuration float64   `yaml:"blackHoldDuration"`
	DimScale          float64   `yaml:"dimScale"`
	DefaultFOV        float64   `yaml:"defaultFov"`
	SlowTimeScale     float64   `yaml:"slowTimeScale"`
	LookAhead         float64   `yaml:"lookAhead"`
	LookHeight        float64   `yaml:"lookHeight"`
	Firefly           Firefly   `yaml:"firefly"`
	Segments          []Segment `yaml:"segments"`
}

// DefaultIdleCamera returns the shipped timeline.
func DefaultIdleCamera() IdleCamera {
	return IdleCamera{
		TriggerAfter:      30,
		FadeDuration:      1.5,
		BlackHoldDuration: 1,
		DimScale:          0.3,
		DefaultFOV:        60,
		SlowTimeScale:     0.01,
		LookAhead:         1.5,
		LookHeight:        0.6,
		Firefly: Firefly{
			OrbitRadius: 2.5,
			OrbitSpeed:  0.6,
			Height:      1.4,
			Intensity:   1.2,
		},
		Segments: []Segment{
			{Name: "low sweep", Duration: 9, Orbit: Range{-40, 40}, Elevation: Range{8, 12}, Distance: Range{6, 5}, FOV: Range{55, 45}},
			{Name: "crane up", Duration: 8, Orbit: Range{40, 120}, Elevation: Range{12, 45}, Distance: Range{5, 9}, FOV: Range{45, 60}, Pitch: &Range{0, -8}},
			{Name: "rear drift", Duration: 10, Orbit: Range{120, 200}, Elevation: Range{45, 15}, Distance: Range{9, 7}, FOV: Range{60, 50}},
			{Name: "wheel close-up", Duration: 7, Orbit: Range{200, 260}, Elevation: Range{5, 4}, Distance: Range{3.5, 3}, FOV: Range{40, 35}, Pitch: &Range{-6, 0}},
			{Name: "pull out", Duration: 11, Orbit: Range{260, 320}, Elevation: Range{4, 25}, Distance: Range{3, 8}, FOV: Range{35, 55}},
		},
	}
}

// ParseIdleCamera decodes a yaml document over the defaults. A document that
// lists segments replaces the whole default list.
func ParseIdleCamera(data []byte) (IdleCamera, error) {
	c := DefaultIdleCamera()
	c.Segments = nil
	if err := yaml.Unmarshal(data, &c); err != nil {
		return IdleCamera{}, fmt.Errorf("failed to parse idle camera tuning: %w", err)
	}
	if len(c.Segments) == 0 {
		c.Segments = DefaultIdleCamera().Segments
	}
	if err := c.Validate(); err != nil {
		return IdleCamera{}, err
	}
	return c, nil
}

// Validate checks the timeline.
func (c IdleCamera) Validate() error {
	if c.TriggerAfter <= 0 {
		return fmt.Errorf("%w: triggerAfter must be positive", ErrInvalidTuning)
	}
	if c.FadeDuration <= 0 || c.BlackHoldDuration < 0 {
		return fmt.Errorf("%w: fade durations must be positive", ErrInvalidTuning)
	}
	if c.DimScale < 0 || c.DimScale > 1 {
		return fmt.Errorf("%w: dimScale %.2f not in [0,1]", ErrInvalidTuning, c.DimScale)
	}
	if c.DefaultFOV <= 0 || c.DefaultFOV >= 180 {
		return fmt.Errorf("%w: defaultFov must be in (0,180)", ErrInvalidTuning)
	}
	for i, s := range c.Segments {
		if s.Duration <= 0 {
			return fmt.Errorf("%w: segment %d (%s) has no duration", ErrInvalidTuning, i, s.Name)
		}
		if s.Distance.From <= 0 || s.Distance.To <= 0 {
			return fmt.Errorf("%w: segment %d (%s) distance must be positive", ErrInvalidTuning, i, s.Name)
		}
	}
	return nil
}

// TotalFade is the length of the fade-in, black hold and fade-out together.
func (c IdleCamera) TotalFade() float64 {
	return 2*c.FadeDuration + c.BlackHoldDuration
}
