package gate

import (
	"time"

	"github.com/quicksell-labs/martbot/internal/store"
)

// Breaker is the global daily send cutoff. It derives its count from
// the outbound message log rather than a separate counter, so it cannot
// drift from what was actually sent.
type Breaker struct {
	db  *store.DB
	loc *time.Location
}

// NewBreaker creates a breaker using the given location for the local
// midnight boundary.
func NewBreaker(db *store.DB, loc *time.Location) *Breaker {
	return &Breaker{db: db, loc: loc}
}

// Allow reports whether another automated send is permitted. False
// means the breaker has tripped for the rest of the local day.
func (b *Breaker) Allow(now time.Time) (bool, error) {
	count, err := b.db.CountOutboundSince(Midnight(now, b.loc))
	if err != nil {
		return false, err
	}
	return count < GlobalDailyLimit, nil
}

// SentToday returns the outbound count since local midnight.
func (b *Breaker) SentToday(now time.Time) (int64, error) {
	return b.db.CountOutboundSince(Midnight(now, b.loc))
}
