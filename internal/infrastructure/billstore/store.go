// Package billstore provides the in-memory session bill store.
package billstore

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	domainRepo "github.com/davidkuria/brewpos-api/internal/domain/repository"
)

type storedBill struct {
	data     []byte
	storedAt time.Time
}

// Store is an in-memory BillStore keyed by session ID. Bills are held
// serialized and validated on the way out, so a corrupt entry behaves
// the same as a missing one. Expired entries are swept periodically.
type Store struct {
	mu    sync.Mutex
	bills map[string]storedBill
	ttl   time.Duration
}

// NewStore creates a bill store with the given TTL and starts the
// background sweep. A zero or negative TTL disables expiry.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		bills: make(map[string]storedBill),
		ttl:   ttl,
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

var _ domainRepo.BillStore = (*Store)(nil)

func (s *Store) Put(sessionID string, bill *entity.Bill) error {
	data, err := json.Marshal(bill)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[sessionID] = storedBill{data: data, storedAt: time.Now()}
	return nil
}

func (s *Store) Get(sessionID string) (*entity.Bill, error) {
	s.mu.Lock()
	stored, ok := s.bills[sessionID]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}
	if s.ttl > 0 && time.Since(stored.storedAt) > s.ttl {
		s.Clear(sessionID)
		return nil, nil
	}

	var bill entity.Bill
	if err := json.Unmarshal(stored.data, &bill); err != nil {
		// Unreadable entries are treated as absent, not as errors.
		s.Clear(sessionID)
		return nil, nil
	}
	if !bill.Valid() {
		s.Clear(sessionID)
		return nil, nil
	}
	return &bill, nil
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bills, sessionID)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, stored := range s.bills {
			if stored.storedAt.Before(cutoff) {
				delete(s.bills, id)
			}
		}
		s.mu.Unlock()
	}
}
