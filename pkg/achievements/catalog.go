package achievements

// Achievement ids.
const (
	FirstCrash      = "first_crash"
	DemolitionDerby = "demolition_derby"
	OffRoad         = "off_road"
	LawnMower       = "lawn_mower"
	SpeedDemon      = "speed_demon"
	ReverseGear     = "reverse_gear"
	SecondChance    = "second_chance"
	TimeLord        = "time_lord"
	OutOfBounds     = "out_of_bounds"
	HonkHonk        = "honk_honk"
	RoadTrip        = "road_trip"
	CleanDriver     = "clean_driver"
	TarmacOnly      = "tarmac_only"
	InsideTheLines  = "inside_the_lines"
	PerfectRun      = "perfect_run"
	Screensaver     = "screensaver"
	FullCircle      = "full_circle"
	NightShift      = "night_shift"
)

// ReverseDistance is how far the player must back up in one level for
// ReverseGear.
const ReverseDistance = 50.0

// Category groups achievements on the list screen.
type Category string

const (
	CategoryCrashes Category = "crashes"
	CategoryDriving Category = "driving"
	CategoryRewind  Category = "rewind"
	CategorySocial  Category = "social"
	CategoryLevel   Category = "level"
	CategoryIdle    Category = "idle"
	CategoryTime    Category = "time"
)

var categoryTitles = map[Category]string{
	CategoryCrashes: "Crashes",
	CategoryDriving: "Driving",
	CategoryRewind:  "Rewind",
	CategorySocial:  "Social",
	CategoryLevel:   "Levels",
	CategoryIdle:    "Idle",
	CategoryTime:    "Day & Night",
}

// Title is the heading shown above the category's achievements.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Definition describes one achievement. Target is zero for one-shot
// achievements and the required count for counters.
type Definition struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Target      int
}

// IsCounter reports whether the achievement unlocks after Target events.
func (d Definition) IsCounter() bool { return d.Target > 0 }

var catalog = []Definition{
	{ID: FirstCrash, Title: "Fender Bender", Description: "Crash into something.", Category: CategoryCrashes},
	{ID: DemolitionDerby, Title: "Demolition Derby", Description: "Crash 25 times.", Category: CategoryCrashes, Target: 25},
	{ID: OffRoad, Title: "Off Road", Description: "Drive onto the grass.", Category: CategoryDriving},
	{ID: LawnMower, Title: "Lawn Mower", Description: "Leave the road 20 times.", Category: CategoryDriving, Target: 20},
	{ID: SpeedDemon, Title: "Speed Demon", Description: "Hit top speed.", Category: CategoryDriving},
	{ID: ReverseGear, Title: "Reverse Gear", Description: "Back up 50 metres in one run.", Category: CategoryDriving},
	{ID: OutOfBounds, Title: "Out of Bounds", Description: "Drive off the edge of the map.", Category: CategoryDriving},
	{ID: SecondChance, Title: "Second Chance", Description: "Rewind time.", Category: CategoryRewind},
	{ID: TimeLord, Title: "Time Lord", Description: "Rewind 10 times.", Category: CategoryRewind, Target: 10},
	{ID: HonkHonk, Title: "Honk Honk", Description: "Honk at 15 cars.", Category: CategorySocial, Target: 15},
	{ID: RoadTrip, Title: "Road Trip", Description: "Reach the finish.", Category: CategoryLevel},
	{ID: CleanDriver, Title: "Clean Driver", Description: "Finish without crashing.", Category: CategoryLevel},
	{ID: TarmacOnly, Title: "Tarmac Only", Description: "Finish without touching grass.", Category: CategoryLevel},
	{ID: InsideTheLines, Title: "Inside the Lines", Description: "Finish without leaving the map.", Category: CategoryLevel},
	{ID: PerfectRun, Title: "Perfect Run", Description: "Finish clean, on tarmac and inside the lines.", Category: CategoryLevel},
	{ID: Screensaver, Title: "Screensaver", Description: "Leave the car alone long enough for the showcase.", Category: CategoryIdle},
	{ID: FullCircle, Title: "Full Circle", Description: "Drive through a whole day.", Category: CategoryTime},
	{ID: NightShift, Title: "Night Shift", Description: "See 5 days go by.", Category: CategoryTime, Target: 5},
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(catalog))
	for _, d := range catalog {
		m[d.ID] = d
	}
	return m
}()

// Catalog returns every definition in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a definition by id.
func Lookup(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}
