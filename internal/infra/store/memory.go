package store

import (
	"context"
	"sync"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

// MemorySessionStore is the default store: a mutex-guarded map with TTL
// expiry. Sessions are process-local and vanish on restart.
type MemorySessionStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memoryEntry
}

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
	}

	go s.sweep()
	return s
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sess.ID] = memoryEntry{
		session:   *sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.data[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, httperr.ErrBusiness("session_not_found")
	}

	sess := entry.session
	return &sess, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, id)
	return nil
}

func (s *MemorySessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		s.mu.Lock()
		for id, entry := range s.data {
			if now.After(entry.expiresAt) {
				delete(s.data, id)
			}
		}
		s.mu.Unlock()
	}
}
