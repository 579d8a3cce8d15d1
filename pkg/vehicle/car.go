package vehicle

import (
	"image/color"

	"github.com/golangdaddy/reroute/pkg/config"
)

// Brakes represents the braking system of a car
type Brakes struct {
	Type          string  `json:"type"`
	Condition     float64 `json:"condition"`      // 0.0 to 1.0
	Performance   float64 `json:"performance"`    // 0.0 to 1.0
	StoppingPower float64 `json:"stopping_power"` // 0.0 to 1.0
}

// Efficiency combines the brake ratings into a single 0..1 factor.
func (b Brakes) Efficiency() float64 {
	return b.Condition * b.Performance * b.StoppingPower
}

// Dimensions are the body size in metres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// Car is a selectable model in the garage.
type Car struct {
	ID       string     `json:"id"`
	Make     string     `json:"make"`
	Model    string     `json:"model"`
	Year     int        `json:"year"`
	Weight   float64    `json:"weight"` // in kg
	Body     Dimensions `json:"body"`
	Paint    color.RGBA `json:"-"`
	TopSpeed float64    `json:"top_speed"` // multiplier on the base max speed
	Pickup   float64    `json:"pickup"`    // multiplier on the base acceleration
	Brakes   Brakes     `json:"brakes"`
}

// NewCar creates a new car with default values
func NewCar(id, make, model string, year int, weight float64, paint color.RGBA) *Car {
	return &Car{
		ID:       id,
		Make:     make,
		Model:    model,
		Year:     year,
		Weight:   weight,
		Body:     Dimensions{Width: 1.8, Height: 1.4, Length: 4.2},
		Paint:    paint,
		TopSpeed: 1,
		Pickup:   1,
		Brakes: Brakes{
			Type:          "Standard",
			Condition:     0.9,
			Performance:   0.9,
			StoppingPower: 0.9,
		},
	}
}

// Tune adapts the base physics to this car. Top speed and pickup scale the
// base values; better brakes stop harder.
func (c *Car) Tune(base config.Physics) config.Physics {
	p := base
	if c.TopSpeed > 0 {
		p.MaxSpeed = base.MaxSpeed * c.TopSpeed
	}
	if c.Pickup > 0 {
		p.AccelerationRate = base.AccelerationRate * c.Pickup
	}
	if eff := c.Brakes.Efficiency(); eff > 0 {
		p.BrakeRate = base.BrakeRate * (0.5 + eff)
	}
	return p
}

// Name is the display name used in menus.
func (c *Car) Name() string {
	return c.Make + " " + c.Model
}
