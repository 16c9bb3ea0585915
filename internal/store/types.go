package store

// User is the per-contact messaging state row. One exists for every
// address that ever messaged the bot; created with a full engagement
// score on first contact.
type User struct {
	ID               string
	JID              string
	DisplayName      string
	DailyCount       int
	LastMessageDate  string // YYYY-MM-DD in the daemon's configured zone
	EngagementScore  int
	OptedOut         bool
	ReminderCount    int
	LastReminderAt   int64 // unix ms, 0 = never
	LastInteraction  int64 // unix ms
	CreatedAt        int64
	UpdatedAt        int64
}

// Direction values for message_log rows.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// LogEntry is one append-only message_log row.
type LogEntry struct {
	ID              int64
	UserID          string // empty when the sender was never registered
	JID             string
	Direction       string
	Body            string
	MediaType       string
	ResponseDelayMs int64 // 0 for inbound rows
	WasThrottled    bool
	CreatedAt       int64
}

// Product is one catalog row backing the generator toolset.
type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	PriceCents  int64
	ImageURL    string
	InStock     bool
	IsHotDeal   bool
	CreatedAt   int64
}

// DayTotals aggregates message_log activity for a date range.
type DayTotals struct {
	Inbound   int64
	Outbound  int64
	Throttled int64
}
