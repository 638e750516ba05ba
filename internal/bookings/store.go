package bookings

import (
	"sync"
	"time"
)

// Store holds completed bookings for reference lookups. In-memory on
// purpose: tickets are reachable for the retention window and nothing
// longer, there is no durable order book behind this product.
type Store interface {
	Save(record *BookingRecord)
	GetByReference(reference string) (*BookingRecord, bool)
	PurgeOlderThan(cutoff time.Time) int
	Len() int
}

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]*BookingRecord
}

// NewStore creates an in-memory booking store
func NewStore() Store {
	return &memoryStore{
		records: make(map[string]*BookingRecord),
	}
}

func (s *memoryStore) Save(record *BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Reference] = record
}

func (s *memoryStore) GetByReference(reference string) (*BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[reference]
	return record, ok
}

// PurgeOlderThan drops bookings booked before cutoff and returns how
// many were removed. Driven by the retention cron.
func (s *memoryStore) PurgeOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for ref, record := range s.records {
		if record.BookedAt.Before(cutoff) {
			delete(s.records, ref)
			purged++
		}
	}
	return purged
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
