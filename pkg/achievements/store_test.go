package achievements

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("route_reroute_test_%s_%d", name, time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("platform storage unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestGdataStore_RoundTrip(t *testing.T) {
	store := NewGdataStore(openTestManager(t, "roundtrip"))

	data, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "nothing saved yet")

	tr := NewTracker(store, nil, zerolog.Nop())
	tr.Unlock(RoadTrip)
	tr.Unlock(LawnMower)

	reloaded := NewTracker(store, nil, zerolog.Nop())
	assert.True(t, reloaded.IsUnlocked(RoadTrip))
	assert.Equal(t, 1, reloaded.Count(LawnMower))
}

func TestGdataStore_Malformed(t *testing.T) {
	m := openTestManager(t, "malformed")
	require.NoError(t, m.SaveObjectProp(storageObject, storageProperty, []byte("not json")))

	tr := NewTracker(NewGdataStore(m), nil, zerolog.Nop())
	assert.Equal(t, 0, tr.UnlockedCount())
}

func TestGdataStore_NilManager(t *testing.T) {
	store := NewGdataStore(nil)
	data, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, store.Save([]byte("{}")))
}

func TestDecodeState(t *testing.T) {
	st, err := decodeState([]byte(`{"unlocked":["off_road"],"counters":{"lawn_mower":2},"version":1}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"off_road"}, st.Unlocked)
	assert.Equal(t, 2, st.Counters["lawn_mower"])

	_, err = decodeState([]byte(`{"version":7}`))
	assert.ErrorIs(t, err, ErrBadState)
}

func TestEncodeState_Sorted(t *testing.T) {
	data, err := encodeState(map[string]bool{TimeLord: true, FirstCrash: true}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unlocked":["first_crash","time_lord"],"counters":{},"version":1}`, string(data))
}
