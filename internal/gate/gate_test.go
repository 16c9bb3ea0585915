package gate

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/quicksell-labs/martbot/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRateWindowFreshUser(t *testing.T) {
	db := testDB(t)
	rw := NewRateWindow(db, time.UTC)
	u, err := db.CreateUser("a@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	d := rw.Check(u, time.Now())
	if !d.Allowed || d.Remaining != MaxMessagesPerDay {
		t.Errorf("fresh check = %+v, want allowed with %d remaining", d, MaxMessagesPerDay)
	}
}

func TestRateWindowResetsOnDateRollover(t *testing.T) {
	db := testDB(t)
	rw := NewRateWindow(db, time.UTC)

	yesterday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// User exhausted yesterday's budget.
	u := &store.User{
		ID:              "u1",
		DailyCount:      MaxMessagesPerDay,
		LastMessageDate: DateKey(yesterday, time.UTC),
	}

	d := rw.Check(u, today)
	if !d.Allowed || d.Remaining != MaxMessagesPerDay {
		t.Errorf("post-rollover check = %+v, want allowed with full budget", d)
	}
}

func TestRateWindowBoundary(t *testing.T) {
	db := testDB(t)
	rw := NewRateWindow(db, time.UTC)
	now := time.Now()
	u, err := db.CreateUser("b@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < MaxMessagesPerDay-1; i++ {
		if err := rw.Advance(u.ID, now); err != nil {
			t.Fatal(err)
		}
	}
	u, _ = db.GetUser(u.ID)
	d := rw.Check(u, now)
	if !d.Allowed || d.Remaining != 1 {
		t.Fatalf("at %d sends: %+v, want allowed remaining 1", MaxMessagesPerDay-1, d)
	}

	if err := rw.Advance(u.ID, now); err != nil {
		t.Fatal(err)
	}
	u, _ = db.GetUser(u.ID)
	d = rw.Check(u, now)
	if d.Allowed {
		t.Errorf("at cap: %+v, want refused", d)
	}
	if d.Notice == "" {
		t.Error("refusal must carry a user-facing notice")
	}
}

func TestRateWindowAdvanceResetsAfterRollover(t *testing.T) {
	db := testDB(t)
	rw := NewRateWindow(db, time.UTC)
	u, err := db.CreateUser("c@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	day1 := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)

	if err := rw.Advance(u.ID, day1); err != nil {
		t.Fatal(err)
	}
	if err := rw.Advance(u.ID, day2); err != nil {
		t.Fatal(err)
	}
	u, _ = db.GetUser(u.ID)
	if u.DailyCount != 1 {
		t.Errorf("count after rollover advance = %d, want 1", u.DailyCount)
	}
}

func TestQuietHoursBoundaries(t *testing.T) {
	q := NewQuietHours(time.UTC)
	tests := []struct {
		hour int
		want bool
	}{
		{1, false},
		{2, true},
		{5, true},
		{6, false},
		{12, false},
		{23, false},
		{0, false},
	}
	for _, tt := range tests {
		at := time.Date(2026, 8, 31, tt.hour, 30, 0, 0, time.UTC)
		if got := q.IsQuiet(at); got != tt.want {
			t.Errorf("IsQuiet(hour=%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestQuietHoursHonorsLocation(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos") // UTC+1
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	q := NewQuietHours(lagos)

	// 02:30 UTC is 03:30 in Lagos: quiet there.
	at := time.Date(2026, 8, 31, 2, 30, 0, 0, time.UTC)
	if !q.IsQuiet(at) {
		t.Error("02:30 UTC should be quiet in UTC+1")
	}
	// 05:30 UTC is 06:30 in Lagos: window over.
	at = time.Date(2026, 8, 31, 5, 30, 0, 0, time.UTC)
	if q.IsQuiet(at) {
		t.Error("05:30 UTC should not be quiet in UTC+1")
	}
}

func TestQuietHoursWrappingWindow(t *testing.T) {
	q := QuietHours{Start: 22, End: 6, Loc: time.UTC}
	if !q.IsQuiet(time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)) {
		t.Error("23:00 should be quiet in a 22-6 window")
	}
	if !q.IsQuiet(time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)) {
		t.Error("03:00 should be quiet in a 22-6 window")
	}
	if q.IsQuiet(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)) {
		t.Error("12:00 should not be quiet in a 22-6 window")
	}
}

func TestBreakerTripsAtLimit(t *testing.T) {
	db := testDB(t)
	b := NewBreaker(db, time.UTC)
	now := time.Now().UTC()
	u, err := db.CreateUser("d@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	ms := Midnight(now, time.UTC).Add(time.Hour).UnixMilli()
	for i := 0; i < GlobalDailyLimit-1; i++ {
		if err := db.AppendLog(&store.LogEntry{UserID: u.ID, JID: u.JID, Direction: store.DirectionOut, CreatedAt: ms}); err != nil {
			t.Fatal(err)
		}
	}

	ok, err := b.Allow(now)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("at %d sends breaker should still allow", GlobalDailyLimit-1)
	}

	if err := db.AppendLog(&store.LogEntry{UserID: u.ID, JID: u.JID, Direction: store.DirectionOut, CreatedAt: ms}); err != nil {
		t.Fatal(err)
	}
	ok, err = b.Allow(now)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("at %d sends breaker should trip", GlobalDailyLimit)
	}
}

func TestBreakerIgnoresYesterday(t *testing.T) {
	db := testDB(t)
	b := NewBreaker(db, time.UTC)
	now := time.Now().UTC()
	u, err := db.CreateUser("e@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	yesterday := Midnight(now, time.UTC).Add(-time.Hour).UnixMilli()
	for i := 0; i < GlobalDailyLimit; i++ {
		if err := db.AppendLog(&store.LogEntry{UserID: u.ID, JID: u.JID, Direction: store.DirectionOut, CreatedAt: yesterday}); err != nil {
			t.Fatal(err)
		}
	}

	ok, err := b.Allow(now)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("yesterday's sends must not trip today's breaker")
	}
}

// Property: the score never leaves [0,100] under any adjustment sequence.
func TestEngagementClampProperty(t *testing.T) {
	db := testDB(t)
	e := NewEngagement(db)
	u, err := db.CreateUser("f@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		if err := e.Adjust(u.ID, rng.Intn(2) == 0); err != nil {
			t.Fatal(err)
		}
		got, err := db.GetUser(u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.EngagementScore < 0 || got.EngagementScore > 100 {
			t.Fatalf("step %d: score %d escaped [0,100]", i, got.EngagementScore)
		}
	}
}

func TestEngagementDeltas(t *testing.T) {
	db := testDB(t)
	e := NewEngagement(db)
	u, err := db.CreateUser("g@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	// Two penalties from 100: 100 - 15 - 15 = 70.
	_ = e.Adjust(u.ID, false)
	_ = e.Adjust(u.ID, false)
	got, _ := db.GetUser(u.ID)
	if got.EngagementScore != 70 {
		t.Errorf("score after two penalties = %d, want 70", got.EngagementScore)
	}

	// One reward: 75.
	_ = e.Adjust(u.ID, true)
	got, _ = db.GetUser(u.ID)
	if got.EngagementScore != 75 {
		t.Errorf("score after reward = %d, want 75", got.EngagementScore)
	}
}

func TestEngagedThreshold(t *testing.T) {
	if !Engaged(&store.User{EngagementScore: EngagementThreshold}) {
		t.Error("score at threshold should count as engaged")
	}
	if Engaged(&store.User{EngagementScore: EngagementThreshold - 1}) {
		t.Error("score below threshold should not count as engaged")
	}
}

func TestDateKey(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 UTC on the 30th is already the 31st in UTC+1.
	at := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)
	if got := DateKey(at, lagos); got != "2026-08-31" {
		t.Errorf("DateKey = %s, want 2026-08-31", got)
	}
	if got := DateKey(at, time.UTC); got != "2026-08-30" {
		t.Errorf("DateKey = %s, want 2026-08-30", got)
	}
}
