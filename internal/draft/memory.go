package draft

import (
	"context"
	"sync"
	"time"

	"github.com/quangdm/cloudscore/internal/models"
)

// MemoryStore keeps the draft in process memory. It is the fallback backend
// when no DSN is configured, and what tests run against.
type MemoryStore struct {
	mu   sync.Mutex
	slot *models.Draft
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, d *models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *d
	snapshot.Record = d.Record.Clone()
	s.slot = &snapshot
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil {
		return nil, nil
	}
	if s.slot.Age(s.now()) > MaxAge {
		s.slot = nil
		return nil, nil
	}
	return s.slot, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
