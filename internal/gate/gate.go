// Package gate holds the per-user and global send gates the response
// pipeline consults before answering: the daily rate window, the global
// circuit breaker, quiet hours, and the engagement score.
package gate

import "time"

// Fixed policy constants. Deliberately not runtime-configurable: the
// ceilings protect the WhatsApp account, and a misconfigured ceiling is
// worse than none.
const (
	// MaxMessagesPerDay caps automated sends per user per local day.
	MaxMessagesPerDay = 20

	// GlobalDailyLimit caps automated sends across all users per local
	// day. Tripping it protects the account from suspension.
	GlobalDailyLimit = 500

	// QuietStartHour and QuietEndHour bound the nightly no-send window
	// [start, end) in local hours.
	QuietStartHour = 2
	QuietEndHour   = 6

	// EngagementThreshold is the minimum score still worth messaging.
	EngagementThreshold = 30

	// ResponseReward is added when a user exchange completes.
	ResponseReward = 5

	// NonResponsePenalty is subtracted for a proactive send the user
	// never asked for.
	NonResponsePenalty = 15
)

// DateKey formats an instant as the YYYY-MM-DD day bucket in the given
// location. All daily counters compare against this key, never against
// raw timestamps, so the lazy reset is timezone-explicit.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// Midnight returns the start of t's day in the given location.
func Midnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
