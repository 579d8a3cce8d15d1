package vehicle

import "image/color"

// Inventory manages the collection of available cars
var Inventory = &inventory{
	cars: []*Car{
		hatchback(),
		roadster(),
		pickup(),
		van(),
	},
}

type inventory struct {
	cars []*Car
}

// GetAllCars returns all available cars
func (ci *inventory) GetAllCars() []*Car {
	return ci.cars
}

// ByID looks a car up by its catalogue id.
func (ci *inventory) ByID(id string) (*Car, bool) {
	for _, c := range ci.cars {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

func hatchback() *Car {
	return NewCar("hatchback", "Honda", "Civic", 2021, 1350, color.RGBA{220, 40, 40, 255})
}

func roadster() *Car {
	c := NewCar("roadster", "Mazda", "MX-5", 2019, 1060, color.RGBA{250, 200, 40, 255})
	c.Body = Dimensions{Width: 1.7, Height: 1.2, Length: 3.9}
	c.TopSpeed = 1.2
	c.Pickup = 1.25
	c.Brakes.Type = "Sport"
	c.Brakes.StoppingPower = 1
	return c
}

func pickup() *Car {
	c := NewCar("pickup", "Ford", "F-150", 2020, 2100, color.RGBA{60, 110, 200, 255})
	c.Body = Dimensions{Width: 2.0, Height: 1.9, Length: 5.3}
	c.TopSpeed = 0.9
	c.Pickup = 0.8
	return c
}

func van() *Car {
	c := NewCar("van", "Volkswagen", "Transporter", 2018, 1900, color.RGBA{235, 235, 225, 255})
	c.Body = Dimensions{Width: 1.9, Height: 2.0, Length: 4.9}
	c.TopSpeed = 0.8
	c.Pickup = 0.75
	c.Brakes.Condition = 0.7
	return c
}
