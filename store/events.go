package store

import "time"

type LoadEvent struct {
	ID         int64
	Path       string
	Outcome    string // "loaded", "empty", "missing", "error"
	RowCount   int
	DurationMS int64
	CreatedAt  time.Time
}

func (db *DB) AppendLoadEvent(path, outcome string, rowCount int, duration time.Duration) error {
	_, err := db.Exec(db.Q(`INSERT INTO load_events (path, outcome, row_count, duration_ms) VALUES (?, ?, ?, ?)`),
		path, outcome, rowCount, duration.Milliseconds())
	return err
}

func (db *DB) ListLoadEvents(limit int) ([]*LoadEvent, error) {
	rows, err := db.Query(db.Q(`SELECT id, path, outcome, row_count, duration_ms, created_at FROM load_events ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var events []*LoadEvent
	for rows.Next() {
		var e LoadEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Path, &e.Outcome, &e.RowCount, &e.DurationMS, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		events = append(events, &e)
	}
	return events, rows.Err()
}
