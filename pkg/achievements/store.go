package achievements

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
)

const (
	storageObject   = "route_reroute_achievements"
	storageProperty = "state"
	stateVersion    = 1
)

// ErrBadState is wrapped when saved data cannot be used.
var ErrBadState = errors.New("unusable achievement state")

// Store persists the encoded achievement state. Load returns nil data and no
// error when nothing has been saved yet.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// GdataStore keeps the state in the platform's app data directory.
type GdataStore struct {
	manager *gdata.Manager
}

// NewGdataStore wraps an open gdata manager.
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m}
}

// OpenStore opens gdata storage for appName. When the platform storage is
// unavailable it logs a warning and falls back to memory, so unlocks work
// for the session but are not kept.
func OpenStore(appName string, logger zerolog.Logger) Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn().Err(err).Str("app", appName).Msg("achievement storage unavailable, progress will not be saved")
		return NewMemoryStore()
	}
	return NewGdataStore(m)
}

func (s *GdataStore) Load() ([]byte, error) {
	if s.manager == nil {
		return nil, nil
	}
	if !s.manager.ObjectPropExists(storageObject, storageProperty) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(storageObject, storageProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}
	return data, nil
}

func (s *GdataStore) Save(data []byte) error {
	if s.manager == nil {
		return nil
	}
	if err := s.manager.SaveObjectProp(storageObject, storageProperty, data); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}
	return nil
}

// MemoryStore keeps the state for the life of the process.
type MemoryStore struct {
	data  []byte
	Saves int
	// Err, when set, fails every call.
	Err error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.data, nil
}

func (s *MemoryStore) Save(data []byte) error {
	if s.Err != nil {
		return s.Err
	}
	s.data = append([]byte(nil), data...)
	s.Saves++
	return nil
}

// Put replaces the stored bytes directly.
func (s *MemoryStore) Put(data []byte) {
	s.data = append([]byte(nil), data...)
}

type savedState struct {
	Unlocked []string       `json:"unlocked"`
	Counters map[string]int `json:"counters"`
	Version  int            `json:"version"`
}

func encodeState(unlocked map[string]bool, counters map[string]int) ([]byte, error) {
	st := savedState{Unlocked: make([]string, 0, len(unlocked)), Counters: counters, Version: stateVersion}
	for id := range unlocked {
		st.Unlocked = append(st.Unlocked, id)
	}
	sort.Strings(st.Unlocked)
	if st.Counters == nil {
		st.Counters = map[string]int{}
	}
	return json.Marshal(st)
}

func decodeState(data []byte) (savedState, error) {
	var st savedState
	if err := json.Unmarshal(data, &st); err != nil {
		return savedState{}, fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if st.Version != stateVersion {
		return savedState{}, fmt.Errorf("%w: version %d", ErrBadState, st.Version)
	}
	return st, nil
}
