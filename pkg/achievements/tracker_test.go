package achievements

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *MemoryStore, *Queue) {
	t.Helper()
	store := NewMemoryStore()
	q := &Queue{}
	return NewTracker(store, q, zerolog.Nop()), store, q
}

func TestCatalog(t *testing.T) {
	seen := map[string]bool{}
	finished := map[Category]bool{}
	var last Category
	for _, d := range Catalog() {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Title)
		assert.True(t, d.Category.Valid(), "%s has no category", d.ID)

		// Entries of one category are listed together.
		if d.Category != last {
			assert.False(t, finished[d.Category], "%s splits category %s", d.ID, d.Category)
			if last != "" {
				finished[last] = true
			}
			last = d.Category
		}
	}
	finished[last] = true
	assert.Len(t, seen, 18)
	assert.Len(t, finished, 7, "every category is used")

	d, ok := Lookup(DemolitionDerby)
	require.True(t, ok)
	assert.Equal(t, 25, d.Target)
	assert.Equal(t, CategoryCrashes, d.Category)
	assert.Equal(t, "Crashes", d.Category.Title())
	assert.Equal(t, "Day & Night", CategoryTime.Title())
	assert.False(t, Category("weather").Valid())
}

func TestUnlock_OneShot(t *testing.T) {
	tr, store, q := newTestTracker(t)

	assert.True(t, tr.Unlock(OffRoad))
	assert.False(t, tr.Unlock(OffRoad))
	assert.True(t, tr.IsUnlocked(OffRoad))
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 1, store.Saves)
}

func TestUnlock_Counter(t *testing.T) {
	tests := []struct {
		id     string
		target int
	}{
		{DemolitionDerby, 25},
		{LawnMower, 20},
		{TimeLord, 10},
		{HonkHonk, 15},
		{NightShift, 5},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tr, _, q := newTestTracker(t)
			for i := 1; i < tt.target; i++ {
				require.False(t, tr.Unlock(tt.id), "call %d", i)
			}
			assert.Equal(t, tt.target-1, tr.Count(tt.id))
			assert.False(t, tr.IsUnlocked(tt.id))

			assert.True(t, tr.Unlock(tt.id))
			assert.True(t, tr.IsUnlocked(tt.id))

			for i := 0; i < 7; i++ {
				assert.False(t, tr.Unlock(tt.id))
			}
			assert.Equal(t, 1, q.Len(), "notified exactly once")
		})
	}
}

func TestUnlock_FlushesEveryIncrement(t *testing.T) {
	tr, store, _ := newTestTracker(t)
	tr.Unlock(TimeLord)
	tr.Unlock(TimeLord)
	assert.Equal(t, 2, store.Saves)

	reloaded := NewTracker(store, nil, zerolog.Nop())
	assert.Equal(t, 2, reloaded.Count(TimeLord))
}

func TestUnlock_UnknownID(t *testing.T) {
	tr, store, q := newTestTracker(t)
	assert.False(t, tr.Unlock("moon_landing"))
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, store.Saves)
}

func TestPersistence_RoundTrip(t *testing.T) {
	tr, store, _ := newTestTracker(t)
	tr.Unlock(FirstCrash)
	tr.Unlock(HonkHonk)

	var saved map[string]any
	require.NoError(t, json.Unmarshal(store.data, &saved))
	assert.Equal(t, float64(1), saved["version"])
	assert.Equal(t, []any{FirstCrash}, saved["unlocked"])
	assert.Equal(t, map[string]any{HonkHonk: float64(1)}, saved["counters"])

	reloaded := NewTracker(store, nil, zerolog.Nop())
	assert.True(t, reloaded.IsUnlocked(FirstCrash))
	assert.Equal(t, 1, reloaded.Count(HonkHonk))
}

func TestPersistence_BadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "wrong shape", data: `{"unlocked": "first_crash", "version": 1}`},
		{name: "wrong version", data: `{"unlocked": ["first_crash"], "counters": {}, "version": 2}`},
		{name: "no version", data: `{"unlocked": ["first_crash"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.Put([]byte(tt.data))
			tr := NewTracker(store, nil, zerolog.Nop())
			assert.Equal(t, 0, tr.UnlockedCount())
		})
	}
}

func TestPersistence_UnknownSavedIDsDropped(t *testing.T) {
	store := NewMemoryStore()
	store.Put([]byte(`{"unlocked": ["first_crash", "retired"], "counters": {"honk_honk": 3, "retired": 9, "off_road": 4}, "version": 1}`))

	tr := NewTracker(store, nil, zerolog.Nop())
	assert.Equal(t, 1, tr.UnlockedCount())
	assert.Equal(t, 3, tr.Count(HonkHonk))
	assert.Equal(t, 0, tr.Count(OffRoad))
}

func TestPersistence_StoreFailures(t *testing.T) {
	store := NewMemoryStore()
	store.Err = errors.New("disk on fire")

	tr := NewTracker(store, nil, zerolog.Nop())
	assert.Equal(t, 0, tr.UnlockedCount())
	assert.True(t, tr.Unlock(FirstCrash), "unlocks still work when saving fails")
	assert.True(t, tr.IsUnlocked(FirstCrash))
}

func TestNilStore(t *testing.T) {
	tr := NewTracker(nil, nil, zerolog.Nop())
	assert.True(t, tr.Unlock(Screensaver))
	tr.Reset()
	assert.False(t, tr.IsUnlocked(Screensaver))
}

func TestReset(t *testing.T) {
	tr, store, _ := newTestTracker(t)
	tr.Unlock(FirstCrash)
	tr.Unlock(TimeLord)
	tr.OnCollision()

	tr.Reset()
	assert.Equal(t, 0, tr.UnlockedCount())
	assert.Equal(t, 0, tr.Count(TimeLord))
	assert.False(t, tr.Session().Crashed)

	reloaded := NewTracker(store, nil, zerolog.Nop())
	assert.Equal(t, 0, reloaded.UnlockedCount())
}

func TestHooks_Terrain(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	for i := 0; i < 10; i++ {
		tr.OnTerrain(true)
	}
	assert.True(t, tr.IsUnlocked(OffRoad))
	assert.Equal(t, 1, tr.Count(LawnMower), "staying on the grass is one excursion")

	tr.OnTerrain(false)
	tr.OnTerrain(true)
	assert.Equal(t, 2, tr.Count(LawnMower))
	assert.True(t, tr.Session().WentOnGrass)
}

func TestHooks_SpeedAndReverse(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	tr.OnSpeed(19.5, 20)
	assert.False(t, tr.IsUnlocked(SpeedDemon))
	tr.OnSpeed(20, 20)
	assert.True(t, tr.IsUnlocked(SpeedDemon))

	tr.OnReverse(30)
	assert.False(t, tr.IsUnlocked(ReverseGear))
	tr.OnReverse(-5)
	tr.OnReverse(20)
	assert.True(t, tr.IsUnlocked(ReverseGear))
}

func TestHooks_ReverseResetsPerLevel(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	tr.OnReverse(40)
	tr.OnLevelStart()
	tr.OnReverse(40)
	assert.False(t, tr.IsUnlocked(ReverseGear))
}

func TestHooks_Rewind(t *testing.T) {
	tr, _, q := newTestTracker(t)
	tr.OnRewind()
	assert.True(t, tr.IsUnlocked(SecondChance))
	assert.Equal(t, 1, tr.Count(TimeLord))

	d, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, SecondChance, d.ID)
}

func TestHooks_LevelComplete(t *testing.T) {
	tests := []struct {
		name   string
		events func(*Tracker)
		want   []string
		absent []string
	}{
		{
			name:   "perfect",
			events: func(*Tracker) {},
			want:   []string{RoadTrip, CleanDriver, TarmacOnly, InsideTheLines, PerfectRun},
		},
		{
			name:   "crashed",
			events: func(tr *Tracker) { tr.OnCollision() },
			want:   []string{RoadTrip, TarmacOnly, InsideTheLines, FirstCrash},
			absent: []string{CleanDriver, PerfectRun},
		},
		{
			name:   "grass",
			events: func(tr *Tracker) { tr.OnTerrain(true) },
			want:   []string{RoadTrip, CleanDriver, InsideTheLines},
			absent: []string{TarmacOnly, PerfectRun},
		},
		{
			name:   "left the map",
			events: func(tr *Tracker) { tr.OnOutOfBounds() },
			want:   []string{RoadTrip, CleanDriver, TarmacOnly, OutOfBounds},
			absent: []string{InsideTheLines, PerfectRun},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _, _ := newTestTracker(t)
			tr.OnLevelStart()
			tt.events(tr)
			tr.OnLevelComplete()
			for _, id := range tt.want {
				assert.True(t, tr.IsUnlocked(id), id)
			}
			for _, id := range tt.absent {
				assert.False(t, tr.IsUnlocked(id), id)
			}
		})
	}
}

func TestHooks_LevelStartClearsSession(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	tr.OnCollision()
	tr.OnLevelStart()
	tr.OnLevelComplete()
	assert.True(t, tr.IsUnlocked(CleanDriver))
}

func TestHooks_IdleCamera(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	tr.OnIdleCamera()
	assert.True(t, tr.IsUnlocked(Screensaver))
}

func TestHooks_TimeOfDayCycle(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	// A full day in small steps, starting mid-morning.
	tod := 0.3
	for i := 0; i < 1000; i++ {
		tr.OnTimeOfDay(tod)
		tod += 0.001
		if tod >= 1 {
			tod--
		}
	}
	tr.OnTimeOfDay(0.3)
	assert.True(t, tr.IsUnlocked(FullCircle))
	assert.Equal(t, 1, tr.Count(NightShift))
}

func TestHooks_TimeOfDayRestartedLevel(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	// Part of a day, then the next level puts the clock back to its start.
	for tod := 0.35; tod < 0.52; tod += 1.0 / 240 {
		tr.OnTimeOfDay(tod)
	}
	tr.OnLevelStart()
	tr.OnTimeOfDay(0.35)
	assert.False(t, tr.IsUnlocked(FullCircle))
	assert.Equal(t, 0, tr.Count(NightShift))

	// A whole day inside the new level still counts.
	tod := 0.35
	for i := 0; i < 1000; i++ {
		tod += 0.001
		if tod >= 1 {
			tod--
		}
		tr.OnTimeOfDay(tod)
	}
	tr.OnTimeOfDay(0.35)
	assert.True(t, tr.IsUnlocked(FullCircle))
	assert.Equal(t, 1, tr.Count(NightShift))
}

func TestCycleDetector(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		want  int
	}{
		{name: "never leaves", times: []float64{0.5, 0.51, 0.49, 0.515, 0.5}, want: 0},
		{name: "out and back", times: []float64{0.5, 0.6, 0.5}, want: 1},
		{name: "two round trips", times: []float64{0.5, 0.7, 0.505, 0.3, 0.49}, want: 2},
		{name: "wraps midnight", times: []float64{0.99, 0.5, 0.005}, want: 1},
		{name: "lingering at origin counts once", times: []float64{0.2, 0.8, 0.2, 0.2, 0.21}, want: 1},
		{name: "just beyond tolerance", times: []float64{0.5, 0.521, 0.5}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cycleDetector{tolerance: DefaultCycleTolerance}
			for _, tod := range tt.times {
				c.observe(tod)
			}
			assert.Equal(t, tt.want, c.cycles)
		})
	}
}

func TestQueue(t *testing.T) {
	var q Queue
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Notify(Definition{ID: "a"})
	q.Notify(Definition{ID: "b"})
	d, _ := q.Pop()
	assert.Equal(t, "a", d.ID)
	assert.Equal(t, 1, q.Len())
}

func TestNotifierFunc(t *testing.T) {
	var got []string
	tr := NewTracker(nil, NotifierFunc(func(d Definition) { got = append(got, d.ID) }), zerolog.Nop())
	tr.OnIdleCamera()
	assert.Equal(t, []string{Screensaver}, got)
}
