package store

import "time"

type AuditEntry struct {
	ID        int64
	Entity    string
	EntityRef string
	Action    string
	Detail    string
	Actor     string
	CreatedAt time.Time
}

func (db *DB) AppendAudit(entity, entityRef, action, detail, actor string) error {
	_, err := db.Exec(db.Q(`INSERT INTO audit_log (entity, entity_ref, action, detail, actor) VALUES (?, ?, ?, ?, ?)`),
		entity, entityRef, action, detail, actor)
	return err
}

func (db *DB) ListAuditLog(limit int) ([]*AuditEntry, error) {
	rows, err := db.Query(db.Q(`SELECT id, entity, entity_ref, action, detail, actor, created_at FROM audit_log ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []*AuditEntry
	for rows.Next() {
		var e AuditEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Entity, &e.EntityRef, &e.Action, &e.Detail, &e.Actor, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
