package store

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateAppliesOnFreshDB(t *testing.T) {
	db := testDB(t)

	// testDB already ran Migrate, so run it again to check idempotency.
	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (init + products)", result.Version)
	}
}

func TestCreateAndGetUser(t *testing.T) {
	db := testDB(t)

	u, err := db.CreateUser("234801234@s.whatsapp.net", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	if u.EngagementScore != InitialEngagementScore {
		t.Errorf("engagement = %d, want %d", u.EngagementScore, InitialEngagementScore)
	}

	got, err := db.GetUserByJID("234801234@s.whatsapp.net")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("GetUserByJID = %v, want id %s", got, u.ID)
	}
	if got.DailyCount != 0 || got.OptedOut {
		t.Errorf("fresh user state = count %d optedOut %v, want 0/false", got.DailyCount, got.OptedOut)
	}

	missing, err := db.GetUserByJID("nobody@s.whatsapp.net")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for unknown jid")
	}
}

func TestEnsureUserRegistersOnce(t *testing.T) {
	db := testDB(t)

	first, err := db.EnsureUser("1@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := db.EnsureUser("1@s.whatsapp.net", "Named Later")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("EnsureUser created a duplicate: %s vs %s", first.ID, second.ID)
	}
	if second.DisplayName != "Named Later" {
		t.Errorf("display name = %q, want refreshed value", second.DisplayName)
	}
}

func TestAdvanceDailyCountRollover(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("2@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := db.AdvanceDailyCount(u.ID, "2026-08-30"); err != nil {
		t.Fatal(err)
	}
	if err := db.AdvanceDailyCount(u.ID, "2026-08-30"); err != nil {
		t.Fatal(err)
	}
	got, _ := db.GetUser(u.ID)
	if got.DailyCount != 2 || got.LastMessageDate != "2026-08-30" {
		t.Fatalf("after two advances: count %d date %s, want 2/2026-08-30", got.DailyCount, got.LastMessageDate)
	}

	// Date rollover resets to 1, not 3.
	if err := db.AdvanceDailyCount(u.ID, "2026-08-31"); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetUser(u.ID)
	if got.DailyCount != 1 || got.LastMessageDate != "2026-08-31" {
		t.Errorf("after rollover: count %d date %s, want 1/2026-08-31", got.DailyCount, got.LastMessageDate)
	}
}

func TestAdjustEngagementClampsInSQL(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("3@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	// Starts at 100; a reward cannot push past the ceiling.
	if err := db.AdjustEngagement(u.ID, 5); err != nil {
		t.Fatal(err)
	}
	got, _ := db.GetUser(u.ID)
	if got.EngagementScore != 100 {
		t.Errorf("score = %d, want clamped 100", got.EngagementScore)
	}

	// Large negative delta bottoms out at 0.
	if err := db.AdjustEngagement(u.ID, -500); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetUser(u.ID)
	if got.EngagementScore != 0 {
		t.Errorf("score = %d, want clamped 0", got.EngagementScore)
	}
}

func TestOptOutAndReminderBookkeeping(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("4@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := db.SetOptedOut(u.ID, true); err != nil {
		t.Fatal(err)
	}
	got, _ := db.GetUser(u.ID)
	if !got.OptedOut {
		t.Error("opted_out not set")
	}

	at := time.Now()
	if err := db.MarkReminderSent(u.ID, at); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetUser(u.ID)
	if got.ReminderCount != 1 || got.LastReminderAt != at.UnixMilli() {
		t.Errorf("reminder state = %d/%d, want 1/%d", got.ReminderCount, got.LastReminderAt, at.UnixMilli())
	}
}

func TestAppendAndRecentLog(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("5@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	base := time.Now().UnixMilli()
	for i := 0; i < 12; i++ {
		dir := DirectionIn
		if i%2 == 1 {
			dir = DirectionOut
		}
		entry := &LogEntry{UserID: u.ID, JID: u.JID, Direction: dir, Body: "m", CreatedAt: base + int64(i)}
		if err := db.AppendLog(entry); err != nil {
			t.Fatal(err)
		}
		if entry.ID == 0 {
			t.Fatal("AppendLog did not fill id")
		}
	}

	recent, err := db.RecentLog(u.ID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 10 {
		t.Fatalf("got %d entries, want 10", len(recent))
	}
	// Chronological: oldest of the window first.
	if recent[0].CreatedAt != base+2 || recent[9].CreatedAt != base+11 {
		t.Errorf("window = [%d, %d], want [%d, %d]",
			recent[0].CreatedAt, recent[9].CreatedAt, base+2, base+11)
	}
}

func TestLogWithoutUserID(t *testing.T) {
	db := testDB(t)
	// Inbound from an address that never became a user row.
	err := db.AppendLog(&LogEntry{JID: "stranger@s.whatsapp.net", Direction: DirectionIn, Body: "hi"})
	if err != nil {
		t.Fatalf("AppendLog with empty user_id: %v", err)
	}

	entries, err := db.ListLogByJID("stranger@s.whatsapp.net", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].UserID != "" {
		t.Errorf("entries = %v, want one row with empty user id", entries)
	}
}

func TestCountOutboundSince(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("6@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	midnight := time.Now().Truncate(24 * time.Hour)
	before := midnight.Add(-time.Hour).UnixMilli()
	after := midnight.Add(time.Hour).UnixMilli()

	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionOut, CreatedAt: before})
	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionOut, CreatedAt: after})
	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionIn, CreatedAt: after})

	count, err := db.CountOutboundSince(midnight)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (yesterday's send and inbound excluded)", count)
	}
}

func TestTotalsBetween(t *testing.T) {
	db := testDB(t)
	u, err := db.CreateUser("7@s.whatsapp.net", "")
	if err != nil {
		t.Fatal(err)
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	inWindow := time.Now().UnixMilli()

	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionIn, CreatedAt: inWindow})
	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionOut, CreatedAt: inWindow})
	_ = db.AppendLog(&LogEntry{UserID: u.ID, JID: u.JID, Direction: DirectionOut, WasThrottled: true, CreatedAt: inWindow})

	totals, err := db.TotalsBetween(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if totals.Inbound != 1 || totals.Outbound != 2 || totals.Throttled != 1 {
		t.Errorf("totals = %+v, want in 1 out 2 throttled 1", totals)
	}
}

func TestProductSearch(t *testing.T) {
	db := testDB(t)

	products := []*Product{
		{Title: "Leather Sandals", Description: "handmade brown sandals", Category: "shoes", PriceCents: 1500000, IsHotDeal: true, InStock: true},
		{Title: "Running Shoes", Description: "lightweight trainers", Category: "shoes", InStock: true},
		{Title: "Ankara Dress", Description: "printed fabric dress", Category: "clothing", InStock: false},
	}
	for _, p := range products {
		if err := db.UpsertProduct(p); err != nil {
			t.Fatal(err)
		}
	}

	results, err := db.SearchProducts("sandals", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Title != "Leather Sandals" {
		t.Fatalf("search results = %v, want Leather Sandals", results)
	}

	// Out-of-stock rows never match.
	results, err = db.SearchProducts("dress", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for out-of-stock product, want 0", len(results))
	}

	cats, err := db.ListCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[0] != "clothing" || cats[1] != "shoes" {
		t.Errorf("categories = %v, want [clothing shoes]", cats)
	}

	deals, err := db.HotDeals(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(deals) != 1 || deals[0].Title != "Leather Sandals" {
		t.Errorf("deals = %v, want just the sandals", deals)
	}
}

func TestListUsersOptedOutFilter(t *testing.T) {
	db := testDB(t)

	a, _ := db.CreateUser("a@s.whatsapp.net", "")
	if _, err := db.CreateUser("b@s.whatsapp.net", ""); err != nil {
		t.Fatal(err)
	}
	if err := db.SetOptedOut(a.ID, true); err != nil {
		t.Fatal(err)
	}

	all, err := db.ListUsers(false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("all users = %d, want 2", len(all))
	}

	opted, err := db.ListUsers(true, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(opted) != 1 || opted[0].ID != a.ID {
		t.Errorf("opted-out users = %v, want only %s", opted, a.ID)
	}
}
