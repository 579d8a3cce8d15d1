package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultTileSize is used when a map has no "tile" header.
const DefaultTileSize = 10.0

var (
	ErrEmptyMap    = errors.New("map has no rows")
	ErrRaggedRows  = errors.New("map rows differ in length")
	ErrNoStart     = errors.New("map has no start tile")
	ErrMultiStart  = errors.New("map has more than one start tile")
	ErrUnknownTile = errors.New("unknown tile character")
	ErrBadTileSize = errors.New("bad tile size")
)

var tileChars = map[rune]Kind{
	'.': Grass,
	'#': Road,
	'B': Building,
	'L': Streetlight,
	'S': Start,
	'F': Finish,
	'C': ParkedCar,
}

// ParseMap reads a map grid. Lines starting with ';' are comments, an optional
// "tile <size>" line sets the tile size, every other non-blank line is a row.
func ParseMap(name string, r io.Reader) (*MapDefinition, error) {
	m := &MapDefinition{
		Name:     name,
		TileSize: DefaultTileSize,
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "tile "); ok {
			size, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("%s:%d: %w %q", name, lineNo, ErrBadTileSize, rest)
			}
			m.TileSize = size
			continue
		}

		row := make([]Tile, 0, len(line))
		for col, ch := range line {
			kind, ok := tileChars[ch]
			if !ok {
				return nil, fmt.Errorf("%s:%d:%d: %w %q", name, lineNo, col+1, ErrUnknownTile, ch)
			}
			row = append(row, Tile{Kind: kind})
		}
		if len(m.Tiles) > 0 && len(row) != len(m.Tiles[0]) {
			return nil, fmt.Errorf("%s:%d: %w (%d != %d)", name, lineNo, ErrRaggedRows, len(row), len(m.Tiles[0]))
		}
		m.Tiles = append(m.Tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	if len(m.Tiles) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMap)
	}
	m.Rows = len(m.Tiles)
	m.Cols = len(m.Tiles[0])

	switch starts := len(m.Find(Start)); {
	case starts == 0:
		return nil, fmt.Errorf("%s: %w", name, ErrNoStart)
	case starts > 1:
		return nil, fmt.Errorf("%s: %w", name, ErrMultiStart)
	}

	return m, nil
}

// LoadMaps parses every *.map file in dir. Broken maps are logged and
// skipped so one bad file does not take the others down.
func LoadMaps(fsys fs.FS, dir string, logger zerolog.Logger) (map[string]*MapDefinition, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.map"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	maps := make(map[string]*MapDefinition, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".map")
		m, err := loadMap(fsys, file, name)
		if err != nil {
			logger.Error().Err(err).Str("map", file).Msg("failed to load map")
			continue
		}
		maps[name] = m
		logger.Debug().Str("map", name).Int("cols", m.Cols).Int("rows", m.Rows).Msg("map loaded")
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("no usable maps in %s", dir)
	}
	return maps, nil
}

func loadMap(fsys fs.FS, file, name string) (*MapDefinition, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMap(name, f)
}
