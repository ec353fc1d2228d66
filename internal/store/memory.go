package store

import (
	"context"
	"sync"
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

// MemoryStore keeps all records in process memory behind one mutex.
// The counter increment and record insertion happen under the same
// lock, so concurrent creates never receive the same id.
type MemoryStore struct {
	mu      sync.RWMutex
	seq     uint64
	records map[string]*model.Requirement
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*model.Requirement)}
}

func (s *MemoryStore) Create(_ context.Context, req *model.Requirement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	req.ID = FormatID(s.seq)
	s.records[req.ID] = req.Clone()
	s.order = append(s.order, req.ID)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context) ([]model.Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Requirement, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, mutate func(*model.Requirement) error) (*model.Requirement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := rec.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}
	updated.ID = rec.ID
	updated.CreatedAt = rec.CreatedAt
	updated.UpdatedAt = bump(rec.UpdatedAt)

	s.records[id] = updated
	return updated.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// bump advances UpdatedAt strictly past its previous value even when
// the clock has not ticked between two writes.
func bump(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

var _ Store = (*MemoryStore)(nil)
