package render

import "sort"

// Preset trades detail for speed.
type Preset struct {
	Name string
	// DrawDistance culls tiles and props further than this from the camera
	// target, in metres.
	DrawDistance float64
	Props        bool
	Glow         bool
}

var presets = map[string]Preset{
	"low":    {Name: "low", DrawDistance: 60, Props: false, Glow: false},
	"medium": {Name: "medium", DrawDistance: 110, Props: true, Glow: true},
	"high":   {Name: "high", DrawDistance: 180, Props: true, Glow: true},
}

// DefaultPreset is used when settings name nothing valid.
const DefaultPreset = "medium"

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the known presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
