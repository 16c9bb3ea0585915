package gate

import "time"

// QuietHours is a pure time-of-day predicate. Messages arriving inside
// the window are dropped from automated response, never queued.
type QuietHours struct {
	Start int // inclusive local hour
	End   int // exclusive local hour
	Loc   *time.Location
}

// NewQuietHours returns the standard nightly window in the given location.
func NewQuietHours(loc *time.Location) QuietHours {
	return QuietHours{Start: QuietStartHour, End: QuietEndHour, Loc: loc}
}

// IsQuiet reports whether t falls inside [Start, End) local hours.
func (q QuietHours) IsQuiet(t time.Time) bool {
	h := t.In(q.Loc).Hour()
	if q.Start <= q.End {
		return h >= q.Start && h < q.End
	}
	// Window wrapping past midnight, e.g. 22–6.
	return h >= q.Start || h < q.End
}
