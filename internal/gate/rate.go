package gate

import (
	"fmt"
	"time"

	"github.com/quicksell-labs/martbot/internal/store"
)

// Decision is the outcome of a rate-window check.
type Decision struct {
	Allowed   bool
	Remaining int
	// Notice is the user-facing refusal text, set only when disallowed.
	Notice string
}

// RateWindow answers whether a user may receive another automated
// message today. The daily counter resets lazily by date comparison;
// there is no scheduled clear.
type RateWindow struct {
	db  *store.DB
	loc *time.Location
}

// NewRateWindow creates a rate window using the given location for
// day-bucket comparisons.
func NewRateWindow(db *store.DB, loc *time.Location) *RateWindow {
	return &RateWindow{db: db, loc: loc}
}

// Check evaluates the window for a user at the given instant. The
// stored count only applies when the stored date is today; otherwise it
// is treated as zero.
func (r *RateWindow) Check(u *store.User, now time.Time) Decision {
	count := u.DailyCount
	if u.LastMessageDate != DateKey(now, r.loc) {
		count = 0
	}
	if count >= MaxMessagesPerDay {
		return Decision{
			Allowed: false,
			Notice: fmt.Sprintf(
				"You've reached today's limit of %d messages. I'll be happy to chat again tomorrow!",
				MaxMessagesPerDay),
		}
	}
	return Decision{Allowed: true, Remaining: MaxMessagesPerDay - count}
}

// Advance records a successful send: sets the stored date to today and
// bumps the counter, resetting to 1 when the date rolled over. The
// update is a single atomic statement.
func (r *RateWindow) Advance(userID string, now time.Time) error {
	return r.db.AdvanceDailyCount(userID, DateKey(now, r.loc))
}
