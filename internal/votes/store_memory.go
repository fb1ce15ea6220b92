package votes

import (
	"sync"

	"github.com/Osisis/discord-feedback-helper/internal/domain"
)

type record struct {
	up   map[string]struct{}
	down map[string]struct{}
}

// MemoryStore is the in-process Store implementation. Interaction handlers
// run on separate goroutines, so mutations are serialized by a mutex.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*record)}
}

func (s *MemoryStore) CastVote(suggestionID, userID string, dir domain.Direction) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(suggestionID)
	mine, other := rec.up, rec.down
	if dir == domain.DirectionDown {
		mine, other = rec.down, rec.up
	}

	if _, ok := mine[userID]; ok {
		delete(mine, userID)
	} else {
		mine[userID] = struct{}{}
		delete(other, userID)
	}

	return len(rec.up), len(rec.down)
}

func (s *MemoryStore) Record(suggestionID string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[suggestionID]
	if !ok {
		return Record{}
	}
	return Record{Up: snapshot(rec.up), Down: snapshot(rec.down)}
}

// record returns the entry for a suggestion, creating an empty one on first
// reference. Caller must hold the lock.
func (s *MemoryStore) record(suggestionID string) *record {
	rec, ok := s.records[suggestionID]
	if !ok {
		rec = &record{up: make(map[string]struct{}), down: make(map[string]struct{})}
		s.records[suggestionID] = rec
	}
	return rec
}
