// Package achievements tracks unlocks and counters across sessions and turns
// gameplay events into unlock calls.
package achievements

import (
	"github.com/rs/zerolog"
)

// DefaultCycleTolerance is how close to its starting point the time of day
// must come back for a full day to count.
const DefaultCycleTolerance = 0.02

// Session holds the per-level flags the finish achievements look at.
type Session struct {
	Crashed         bool
	WentOnGrass     bool
	WentOutOfBounds bool
	ReverseDistance float64
	onGrass         bool
}

// Tracker owns the unlocked set and the counters. Every change is written to
// the store straight away.
type Tracker struct {
	store    Store
	notifier Notifier
	logger   zerolog.Logger

	unlocked map[string]bool
	counters map[string]int
	session  Session
	cycle    cycleDetector
}

// NewTracker loads saved progress from store. Unusable data is logged and
// replaced by an empty state. store and notifier may be nil.
func NewTracker(store Store, notifier Notifier, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		store:    store,
		notifier: notifier,
		logger:   logger,
		unlocked: map[string]bool{},
		counters: map[string]int{},
		cycle:    cycleDetector{tolerance: DefaultCycleTolerance},
	}
	t.load()
	return t
}

// SetCycleTolerance changes the day/night detection tolerance.
func (t *Tracker) SetCycleTolerance(tol float64) {
	if tol > 0 && tol < 0.5 {
		t.cycle.tolerance = tol
	}
}

func (t *Tracker) load() {
	if t.store == nil {
		return
	}
	data, err := t.store.Load()
	if err != nil {
		t.logger.Warn().Err(err).Msg("could not read achievements, starting fresh")
		return
	}
	if data == nil {
		return
	}
	st, err := decodeState(data)
	if err != nil {
		t.logger.Warn().Err(err).Msg("discarding saved achievements")
		return
	}
	for _, id := range st.Unlocked {
		if _, ok := Lookup(id); !ok {
			t.logger.Debug().Str("id", id).Msg("dropping unknown saved achievement")
			continue
		}
		t.unlocked[id] = true
	}
	for id, n := range st.Counters {
		if d, ok := Lookup(id); ok && d.IsCounter() && n > 0 {
			t.counters[id] = n
		}
	}
	t.logger.Info().Int("unlocked", len(t.unlocked)).Msg("achievements loaded")
}

func (t *Tracker) flush() {
	if t.store == nil {
		return
	}
	data, err := encodeState(t.unlocked, t.counters)
	if err != nil {
		t.logger.Warn().Err(err).Msg("could not encode achievements")
		return
	}
	if err := t.store.Save(data); err != nil {
		t.logger.Warn().Err(err).Msg("could not save achievements")
	}
}

// Unlock records one occurrence of id. One-shot achievements unlock on the
// first call; counters unlock when the count reaches the target. It returns
// true only on the call that unlocks. Unknown ids are logged and ignored.
func (t *Tracker) Unlock(id string) bool {
	d, ok := Lookup(id)
	if !ok {
		t.logger.Warn().Str("id", id).Msg("unknown achievement")
		return false
	}
	if t.unlocked[id] {
		return false
	}
	if d.IsCounter() {
		t.counters[id]++
		if t.counters[id] < d.Target {
			t.flush()
			return false
		}
	}
	t.unlocked[id] = true
	t.flush()
	t.logger.Info().Str("id", id).Str("title", d.Title).Msg("achievement unlocked")
	if t.notifier != nil {
		t.notifier.Notify(d)
	}
	return true
}

// IsUnlocked reports whether id has been earned.
func (t *Tracker) IsUnlocked(id string) bool { return t.unlocked[id] }

// Count is the current counter value for id.
func (t *Tracker) Count(id string) int { return t.counters[id] }

// Progress is the counter value and target for id, or the unlock state as
// 0/1 for one-shot achievements.
func (t *Tracker) Progress(id string) (have, want int) {
	d, ok := Lookup(id)
	if !ok {
		return 0, 0
	}
	if !d.IsCounter() {
		if t.unlocked[id] {
			return 1, 1
		}
		return 0, 1
	}
	if t.unlocked[id] {
		return d.Target, d.Target
	}
	return t.counters[id], d.Target
}

// UnlockedCount is how many achievements have been earned.
func (t *Tracker) UnlockedCount() int { return len(t.unlocked) }

// Session returns the current level's flags.
func (t *Tracker) Session() Session { return t.session }

// Reset wipes all progress and saves the empty state.
func (t *Tracker) Reset() {
	t.unlocked = map[string]bool{}
	t.counters = map[string]int{}
	t.session = Session{}
	t.cycle.reset()
	t.flush()
	t.logger.Info().Msg("achievements reset")
}

// OnCollision is called once per crash.
func (t *Tracker) OnCollision() {
	t.session.Crashed = true
	t.Unlock(FirstCrash)
	t.Unlock(DemolitionDerby)
}

// OnTerrain is called every tick with the car's surface. Leaving the road
// counts once per excursion.
func (t *Tracker) OnTerrain(onGrass bool) {
	entered := onGrass && !t.session.onGrass
	t.session.onGrass = onGrass
	if !entered {
		return
	}
	t.session.WentOnGrass = true
	t.Unlock(OffRoad)
	t.Unlock(LawnMower)
}

// OnSpeed checks speed against the cap for the current surface.
func (t *Tracker) OnSpeed(speed, max float64) {
	if max > 0 && speed >= max-1e-9 {
		t.Unlock(SpeedDemon)
	}
}

// OnReverse adds distance driven backwards this level.
func (t *Tracker) OnReverse(distance float64) {
	if distance <= 0 {
		return
	}
	t.session.ReverseDistance += distance
	if t.session.ReverseDistance >= ReverseDistance {
		t.Unlock(ReverseGear)
	}
}

// OnRewind is called once per rewind press.
func (t *Tracker) OnRewind() {
	t.Unlock(SecondChance)
	t.Unlock(TimeLord)
}

// OnSocialReaction is called when another car reacts to the horn.
func (t *Tracker) OnSocialReaction() {
	t.Unlock(HonkHonk)
}

// OnOutOfBounds is called when the car leaves the map.
func (t *Tracker) OnOutOfBounds() {
	t.session.WentOutOfBounds = true
	t.Unlock(OutOfBounds)
}

// OnLevelStart clears the session flags. Each level restarts its clock, so
// day/night detection starts over from the level's first time of day.
func (t *Tracker) OnLevelStart() {
	t.session = Session{}
	t.cycle.reset()
}

// OnLevelComplete awards the finish achievements for the session.
func (t *Tracker) OnLevelComplete() {
	s := t.session
	t.Unlock(RoadTrip)
	if !s.Crashed {
		t.Unlock(CleanDriver)
	}
	if !s.WentOnGrass {
		t.Unlock(TarmacOnly)
	}
	if !s.WentOutOfBounds {
		t.Unlock(InsideTheLines)
	}
	if !s.Crashed && !s.WentOnGrass && !s.WentOutOfBounds {
		t.Unlock(PerfectRun)
	}
}

// OnIdleCamera is called when the showcase camera starts.
func (t *Tracker) OnIdleCamera() {
	t.Unlock(Screensaver)
}

// OnTimeOfDay feeds the day/night clock, in [0,1).
func (t *Tracker) OnTimeOfDay(tod float64) {
	if !t.cycle.observe(tod) {
		return
	}
	t.logger.Debug().Float64("time", tod).Msg("day/night cycle completed")
	t.Unlock(FullCircle)
	t.Unlock(NightShift)
}

// cycleDetector counts returns to the first observed time of day. The clock
// has to move further than tolerance away before a return counts.
type cycleDetector struct {
	tolerance float64
	origin    float64
	started   bool
	away      bool
	cycles    int
}

func (c *cycleDetector) observe(tod float64) bool {
	if !c.started {
		c.origin, c.started = tod, true
		return false
	}
	d := clockDistance(tod, c.origin)
	if !c.away {
		c.away = d > c.tolerance
		return false
	}
	if d <= c.tolerance {
		c.away = false
		c.cycles++
		return true
	}
	return false
}

func (c *cycleDetector) reset() {
	tol := c.tolerance
	*c = cycleDetector{tolerance: tol}
}

// clockDistance is the shorter way round the [0,1) clock.
func clockDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	for d >= 1 {
		d--
	}
	if d > 0.5 {
		d = 1 - d
	}
	return d
}
