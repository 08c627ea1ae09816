package store

import (
	"sync"

	"drumgrid/instrument"
)

// Track is one instrument row in the composition.
type Track struct {
	Name   string
	Engine string // sound-engine tag
	Params instrument.ParamSet
}

// Store is the single source of truth for track state. The controller
// feeds it one (track, parameter, value) notification at a time; the
// display layer re-renders on UpdateChan signals. A consumer reading
// mid-burst can observe a partially applied randomize - notifications are
// per-parameter, not batched.
type Store struct {
	mu     sync.RWMutex
	tracks []*Track

	// Notify the TUI of updates
	UpdateChan chan struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{
		UpdateChan: make(chan struct{}, 1),
	}
}

// AddTrack appends a track running the given engine, seeded with the
// engine's factory preset when one exists, and returns its index.
func (s *Store) AddTrack(name, engine string) int {
	s.mu.Lock()
	t := &Track{Name: name, Engine: engine}
	if preset, ok := instrument.DefaultFor(engine); ok {
		t.Params = preset
	}
	s.tracks = append(s.tracks, t)
	idx := len(s.tracks) - 1
	s.mu.Unlock()
	s.signal()
	return idx
}

// RemoveTrack deletes the track at idx. Out-of-range indexes are ignored.
func (s *Store) RemoveTrack(idx int) {
	s.mu.Lock()
	if idx >= 0 && idx < len(s.tracks) {
		s.tracks = append(s.tracks[:idx], s.tracks[idx+1:]...)
	}
	s.mu.Unlock()
	s.signal()
}

// Len returns the number of tracks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tracks)
}

// Track returns a snapshot of the track at idx.
func (s *Store) Track(idx int) (Track, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.tracks) {
		return Track{}, false
	}
	return *s.tracks[idx], true
}

// TrackInfo is the controller-facing identity lookup.
func (s *Store) TrackInfo(idx int) (instrument.TrackInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.tracks) {
		return instrument.TrackInfo{}, false
	}
	t := s.tracks[idx]
	return instrument.TrackInfo{Name: t.Name, Index: idx, Engine: t.Engine}, true
}

// Apply records a single parameter change and signals the display layer.
// Notifications for unknown tracks are dropped.
func (s *Store) Apply(trackIndex int, name instrument.ParamName, value float64) {
	s.mu.Lock()
	if trackIndex >= 0 && trackIndex < len(s.tracks) {
		s.tracks[trackIndex].Params.Set(name, value)
	}
	s.mu.Unlock()
	s.signal()
}

// signal wakes the display layer without blocking the caller.
func (s *Store) signal() {
	select {
	case s.UpdateChan <- struct{}{}:
	default:
	}
}
