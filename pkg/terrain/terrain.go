package terrain

import "math"

// Kind classifies a map tile.
type Kind int

const (
	Grass Kind = iota
	Road
	Building
	Streetlight
	Start
	Finish
	ParkedCar
)

var kindNames = map[Kind]string{
	Grass:       "grass",
	Road:        "road",
	Building:    "building",
	Streetlight: "streetlight",
	Start:       "start",
	Finish:      "finish",
	ParkedCar:   "parked-car",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tile is one cell of a map grid.
type Tile struct {
	Kind Kind
}

// IsGrass reports whether the tile slows cars down. Streetlights stand on
// the verge.
func (t Tile) IsGrass() bool {
	return t.Kind == Grass || t.Kind == Streetlight
}

// Collidable reports whether the tile carries a static obstacle.
func (t Tile) Collidable() bool {
	return t.Kind == Building || t.Kind == Streetlight
}

// MapDefinition is a grid of tiles centred on multiples of TileSize in the
// XZ plane. Row r covers z around r*TileSize, column c covers x around c*TileSize.
type MapDefinition struct {
	Name     string
	TileSize float64
	Cols     int
	Rows     int
	Tiles    [][]Tile // [row][col]
}

// Cell quantises a world position to grid coordinates. The result may be
// outside the grid.
func (m *MapDefinition) Cell(x, z float64) (col, row int) {
	return int(math.Round(x / m.TileSize)), int(math.Round(z / m.TileSize))
}

// TileAt returns the tile under a world position.
func (m *MapDefinition) TileAt(x, z float64) (Tile, bool) {
	if m == nil || m.TileSize <= 0 {
		return Tile{}, false
	}
	col, row := m.Cell(x, z)
	if row < 0 || row >= len(m.Tiles) || col < 0 || col >= len(m.Tiles[row]) {
		return Tile{}, false
	}
	return m.Tiles[row][col], true
}

// InBounds reports whether a world position lies on the grid.
func (m *MapDefinition) InBounds(x, z float64) bool {
	_, ok := m.TileAt(x, z)
	return ok
}

// Centre returns the world position of a tile centre at ground level.
func (m *MapDefinition) Centre(col, row int) (x, z float64) {
	return float64(col) * m.TileSize, float64(row) * m.TileSize
}

// Find returns the grid coordinates of every tile of the given kind, row by row.
func (m *MapDefinition) Find(kind Kind) [][2]int {
	var cells [][2]int
	for r, row := range m.Tiles {
		for c, t := range row {
			if t.Kind == kind {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}

// IsOnGrass reports whether the world point (x, z) is on a grass tile.
// Points off the grid, and a nil map, are not grass.
func IsOnGrass(x, z float64, m *MapDefinition) bool {
	t, ok := m.TileAt(x, z)
	return ok && t.IsGrass()
}
