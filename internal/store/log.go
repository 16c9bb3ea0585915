package store

import "time"

// AppendLog writes one append-only message_log row and fills in its id.
func (db *DB) AppendLog(e *LogEntry) error {
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UnixMilli()
	}
	var userID any
	if e.UserID != "" {
		userID = e.UserID
	}
	var delay any
	if e.Direction == DirectionOut {
		delay = e.ResponseDelayMs
	}
	res, err := db.Exec(`
		INSERT INTO message_log (user_id, jid, direction, body, media_type, response_delay_ms, was_throttled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, e.JID, e.Direction, e.Body, e.MediaType, delay, e.WasThrottled, e.CreatedAt)
	if err != nil {
		return err
	}
	e.ID, _ = res.LastInsertId()
	return nil
}

// RecentLog returns the user's last n entries in chronological order.
func (db *DB) RecentLog(userID string, n int) ([]LogEntry, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := db.Query(`
		SELECT id, COALESCE(user_id, ''), jid, direction, body, media_type,
		       COALESCE(response_delay_ms, 0), was_throttled, created_at
		FROM message_log
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.JID, &e.Direction, &e.Body,
			&e.MediaType, &e.ResponseDelayMs, &e.WasThrottled, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Reverse into chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// ListLogByJID returns the newest entries for an address, newest first.
func (db *DB) ListLogByJID(jid string, limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT id, COALESCE(user_id, ''), jid, direction, body, media_type,
		       COALESCE(response_delay_ms, 0), was_throttled, created_at
		FROM message_log
		WHERE jid = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, jid, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.JID, &e.Direction, &e.Body,
			&e.MediaType, &e.ResponseDelayMs, &e.WasThrottled, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountOutboundSince counts all outbound rows created at or after the
// given instant. This is the global send counter the circuit breaker
// compares against its daily ceiling.
func (db *DB) CountOutboundSince(since time.Time) (int64, error) {
	var count int64
	err := db.QueryRow(`
		SELECT COUNT(*) FROM message_log
		WHERE direction = ? AND created_at >= ?`,
		DirectionOut, since.UnixMilli()).Scan(&count)
	return count, err
}

// TotalsBetween aggregates log activity in [from, to).
func (db *DB) TotalsBetween(from, to time.Time) (*DayTotals, error) {
	var t DayTotals
	err := db.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE direction = 'in'),
			COUNT(*) FILTER (WHERE direction = 'out'),
			COUNT(*) FILTER (WHERE was_throttled = 1)
		FROM message_log
		WHERE created_at >= ? AND created_at < ?`,
		from.UnixMilli(), to.UnixMilli()).Scan(&t.Inbound, &t.Outbound, &t.Throttled)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
