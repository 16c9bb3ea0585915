package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InitialEngagementScore is assigned on auto-registration.
const InitialEngagementScore = 100

// GetUserByJID returns the user for a contact address, or nil if unknown.
func (db *DB) GetUserByJID(jid string) (*User, error) {
	return db.scanUser(db.QueryRow(userSelect+` WHERE jid = ?`, jid))
}

// GetUser returns a user by id, or nil if unknown.
func (db *DB) GetUser(id string) (*User, error) {
	return db.scanUser(db.QueryRow(userSelect+` WHERE id = ?`, id))
}

// CreateUser registers a new contact with a full engagement score.
func (db *DB) CreateUser(jid, displayName string) (*User, error) {
	now := time.Now().UnixMilli()
	u := &User{
		ID:              uuid.New().String(),
		JID:             jid,
		DisplayName:     displayName,
		EngagementScore: InitialEngagementScore,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err := db.Exec(`
		INSERT INTO users (id, jid, display_name, engagement_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.JID, u.DisplayName, u.EngagementScore, now, now)
	if err != nil {
		return nil, fmt.Errorf("create user %q: %w", jid, err)
	}
	return u, nil
}

// EnsureUser returns the user for a JID, registering it if unseen.
// A non-empty displayName refreshes the stored name on existing users.
func (db *DB) EnsureUser(jid, displayName string) (*User, error) {
	u, err := db.GetUserByJID(jid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return db.CreateUser(jid, displayName)
	}
	if displayName != "" && displayName != u.DisplayName {
		now := time.Now().UnixMilli()
		if _, err := db.Exec(`UPDATE users SET display_name = ?, updated_at = ? WHERE id = ?`,
			displayName, now, u.ID); err != nil {
			return nil, err
		}
		u.DisplayName = displayName
	}
	return u, nil
}

// TouchInteraction records the time of the latest inbound message.
func (db *DB) TouchInteraction(userID string, at time.Time) error {
	ms := at.UnixMilli()
	_, err := db.Exec(`UPDATE users SET last_interaction_at = ?, updated_at = ? WHERE id = ?`,
		ms, ms, userID)
	return err
}

// AdvanceDailyCount bumps the user's daily send counter for the given
// local date in a single statement: +1 when the stored date matches,
// reset to 1 on rollover. Atomic, so concurrent handlers cannot lose
// increments.
func (db *DB) AdvanceDailyCount(userID, today string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE users SET
			daily_count = CASE WHEN last_message_date = ? THEN daily_count + 1 ELSE 1 END,
			last_message_date = ?,
			updated_at = ?
		WHERE id = ?`,
		today, today, now, userID)
	return err
}

// AdjustEngagement applies a signed delta to the engagement score,
// clamped to [0,100] inside the statement.
func (db *DB) AdjustEngagement(userID string, delta int) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		UPDATE users SET
			engagement_score = MIN(100, MAX(0, engagement_score + ?)),
			updated_at = ?
		WHERE id = ?`,
		delta, now, userID)
	return err
}

// SetOptedOut flips the opt-out flag. The pipeline only ever sets it;
// clearing is reserved for the manual admin operation.
func (db *DB) SetOptedOut(userID string, optedOut bool) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE users SET opted_out = ?, updated_at = ? WHERE id = ?`,
		optedOut, now, userID)
	return err
}

// MarkReminderSent bumps the contact-reminder counter and timestamp.
func (db *DB) MarkReminderSent(userID string, at time.Time) error {
	ms := at.UnixMilli()
	_, err := db.Exec(`
		UPDATE users SET reminder_count = reminder_count + 1, last_reminder_at = ?, updated_at = ?
		WHERE id = ?`,
		ms, ms, userID)
	return err
}

// ListUsers returns users ordered by most recent interaction.
// When optedOutOnly is set, only opted-out users are returned.
func (db *DB) ListUsers(optedOutOnly bool, limit int) ([]User, error) {
	if limit <= 0 {
		limit = 100
	}
	q := userSelect
	if optedOutOnly {
		q += ` WHERE opted_out = 1`
	}
	q += ` ORDER BY last_interaction_at DESC LIMIT ?`

	rows, err := db.Query(q, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []User
	for rows.Next() {
		var u User
		if err := scanUserColumns(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserCount returns the total number of registered users.
func (db *DB) UserCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

const userSelect = `
	SELECT id, jid, display_name, daily_count, last_message_date, engagement_score,
	       opted_out, reminder_count, last_reminder_at, last_interaction_at,
	       created_at, updated_at
	FROM users`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserColumns(r rowScanner, u *User) error {
	return r.Scan(&u.ID, &u.JID, &u.DisplayName, &u.DailyCount, &u.LastMessageDate,
		&u.EngagementScore, &u.OptedOut, &u.ReminderCount, &u.LastReminderAt,
		&u.LastInteraction, &u.CreatedAt, &u.UpdatedAt)
}

func (db *DB) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := scanUserColumns(row, &u)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
