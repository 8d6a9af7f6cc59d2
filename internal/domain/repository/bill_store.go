package repository

import "github.com/davidkuria/brewpos-api/internal/domain/entity"

// BillStore holds the most recent bill per order-taking session, the
// server-side equivalent of a session-scoped key/value slot. Bills are
// stored serialized, read back once by the bill view, and cleared when
// a new order starts. Implementations evict entries after a TTL.
type BillStore interface {
	// Put stores the bill for the session, replacing any previous one.
	Put(sessionID string, bill *entity.Bill) error
	// Get returns the stored bill, or nil if absent, expired, or the
	// stored data fails validation.
	Get(sessionID string) (*entity.Bill, error)
	// Clear removes the bill for the session.
	Clear(sessionID string)
}
