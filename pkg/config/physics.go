package config

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Physics holds the vehicle integrator constants.
//
// Rates are per second; speeds are in metres per second.
type Physics struct {
	AccelerationRate      float64 `yaml:"accelerationRate"`
	BrakeRate             float64 `yaml:"brakeRate"`
	Friction              float64 `yaml:"friction"`
	MaxSpeed              float64 `yaml:"maxSpeed"`
	GrassSpeedScale       float64 `yaml:"grassSpeedScale"`
	SteeringRate          float64 `yaml:"steeringRate"`
	SteeringFriction      float64 `yaml:"steeringFriction"`
	MaxSteering           float64 `yaml:"maxSteering"`
	CollisionBounceFactor float64 `yaml:"collisionBounceFactor"`
	HitboxScale           float64 `yaml:"hitboxScale"`
	RoadHeight            float64 `yaml:"roadHeight"`
	GrassHeight           float64 `yaml:"grassHeight"`
	HardStopSpeed         float64 `yaml:"hardStopSpeed"`
	RotationThreshold     float64 `yaml:"rotationThreshold"`
}

// DefaultPhysics returns the shipped tuning.
func DefaultPhysics() Physics {
	return Physics{
		AccelerationRate:      5,
		BrakeRate:             10,
		Friction:              3,
		MaxSpeed:              20,
		GrassSpeedScale:       0.5,
		SteeringRate:          1.5,
		SteeringFriction:      3,
		MaxSteering:           math.Pi / 4,
		CollisionBounceFactor: 0.5,
		HitboxScale:           0.85,
		RoadHeight:            0.1,
		GrassHeight:           0,
		HardStopSpeed:         0.1,
		RotationThreshold:     0.01,
	}
}

// ErrInvalidTuning is wrapped by every tuning validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// ParsePhysics decodes a yaml document over the defaults, so a file only needs
// the keys it changes.
func ParsePhysics(data []byte) (Physics, error) {
	p := DefaultPhysics()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Physics{}, fmt.Errorf("failed to parse physics tuning: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Physics{}, err
	}
	return p, nil
}

// Validate checks the constants the integrator relies on.
func (p Physics) Validate() error {
	switch {
	case p.AccelerationRate <= 0:
		return fmt.Errorf("%w: accelerationRate must be positive", ErrInvalidTuning)
	case p.BrakeRate <= 0:
		return fmt.Errorf("%w: brakeRate must be positive", ErrInvalidTuning)
	case p.Friction < 0:
		return fmt.Errorf("%w: friction must not be negative", ErrInvalidTuning)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed must be positive", ErrInvalidTuning)
	case p.GrassSpeedScale <= 0 || p.GrassSpeedScale > 1:
		return fmt.Errorf("%w: grassSpeedScale %.2f not in (0,1]", ErrInvalidTuning, p.GrassSpeedScale)
	case p.MaxSteering <= 0 || p.MaxSteering > math.Pi/4:
		return fmt.Errorf("%w: maxSteering must be in (0, pi/4]", ErrInvalidTuning)
	case p.HitboxScale <= 0 || p.HitboxScale > 1:
		return fmt.Errorf("%w: hitboxScale %.2f not in (0,1]", ErrInvalidTuning, p.HitboxScale)
	case p.CollisionBounceFactor < 0 || p.CollisionBounceFactor > 1:
		return fmt.Errorf("%w: collisionBounceFactor %.2f not in [0,1]", ErrInvalidTuning, p.CollisionBounceFactor)
	}
	return nil
}
