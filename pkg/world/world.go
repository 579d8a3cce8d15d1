package world

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/collision"
	"github.com/golangdaddy/reroute/pkg/terrain"
	"github.com/golangdaddy/reroute/pkg/vehicle"
)

// ErrNoStart is returned for a map without a start tile.
var ErrNoStart = errors.New("world: map has no start tile")

// World is the scene graph for one level: the player's car, parked cars and
// static props laid out from a map.
type World struct {
	Map    *terrain.MapDefinition
	Player *vehicle.Vehicle
	Parked []*vehicle.Vehicle
	Props  []*Prop

	startPos mgl64.Vec3
	startYaw float64

	vehicles   []collision.Obstacle
	collidable []collision.Obstacle
}

// New lays out a world from m with the player driving car.
func New(m *terrain.MapDefinition, car *vehicle.Car, roadHeight float64) (*World, error) {
	starts := m.Find(terrain.Start)
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	w := &World{Map: m}
	col, row := starts[0][0], starts[0][1]
	x, z := m.Centre(col, row)
	w.startPos = mgl64.Vec3{x, roadHeight, z}
	w.startYaw = roadHeading(m, col, row)
	w.Player = vehicle.New(car, w.startPos, w.startYaw)
	w.vehicles = append(w.vehicles, w.Player)

	fleet := vehicle.Inventory.GetAllCars()
	for i, cell := range m.Find(terrain.ParkedCar) {
		px, pz := m.Centre(cell[0], cell[1])
		// Parked cars sit on the kerb side of the tile.
		heading := roadHeading(m, cell[0], cell[1])
		side := vehicle.Forward(heading + math.Pi/2).Mul(m.TileSize * 0.25)
		pos := mgl64.Vec3{px, roadHeight, pz}.Add(side)
		parked := vehicle.New(fleet[i%len(fleet)], pos, heading)
		w.Parked = append(w.Parked, parked)
		w.vehicles = append(w.vehicles, parked)
	}

	for _, kind := range []terrain.Kind{terrain.Building, terrain.Streetlight} {
		for _, cell := range m.Find(kind) {
			p := newProp(kind, cell[0], cell[1], m)
			w.Props = append(w.Props, p)
			w.collidable = append(w.collidable, p)
		}
	}
	return w, nil
}

// roadHeading picks the direction of the first drivable neighbour, so the
// player starts facing along the road.
func roadHeading(m *terrain.MapDefinition, col, row int) float64 {
	neighbours := []struct {
		dc, dr int
		yaw    float64
	}{
		{0, 1, 0},
		{1, 0, math.Pi / 2},
		{0, -1, math.Pi},
		{-1, 0, -math.Pi / 2},
	}
	for _, n := range neighbours {
		c, r := col+n.dc, row+n.dr
		if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
			continue
		}
		switch m.Tiles[r][c].Kind {
		case terrain.Road, terrain.Finish, terrain.ParkedCar:
			return n.yaw
		}
	}
	return 0
}

// Vehicles returns every car in the scene, the player included.
func (w *World) Vehicles() []collision.Obstacle { return w.vehicles }

// Collidables returns the static obstacles.
func (w *World) Collidables() []collision.Obstacle { return w.collidable }

// OutOfBounds reports whether v has left the map grid.
func (w *World) OutOfBounds(v *vehicle.Vehicle) bool {
	p := v.Position()
	return !w.Map.InBounds(p.X(), p.Z())
}

// AtFinish reports whether v stands on a finish tile.
func (w *World) AtFinish(v *vehicle.Vehicle) bool {
	p := v.Position()
	t, ok := w.Map.TileAt(p.X(), p.Z())
	return ok && t.Kind == terrain.Finish
}

// Respawn puts v back on the start tile.
func (w *World) Respawn(v *vehicle.Vehicle) {
	v.SetPosition(w.startPos)
	v.SetYaw(w.startYaw)
	v.SetVisible(true)
}

// Streetlights returns the streetlight props.
func (w *World) Streetlights() []*Prop {
	var out []*Prop
	for _, p := range w.Props {
		if p.Kind == terrain.Streetlight {
			out = append(out, p)
		}
	}
	return out
}
