package store

import (
	"path/filepath"
	"testing"
	"time"

	"econdash/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEventsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if err := db.AppendLoadEvent("data/econ.parquet", "loaded", 1234, 56*time.Millisecond); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := db.AppendLoadEvent("data/econ.parquet", "missing", 0, time.Millisecond); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := db.ListLoadEvents(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first
	if events[0].Outcome != "missing" || events[1].Outcome != "loaded" {
		t.Errorf("order = %s, %s; want missing, loaded", events[0].Outcome, events[1].Outcome)
	}
	if events[1].RowCount != 1234 || events[1].DurationMS != 56 {
		t.Errorf("loaded event = %+v", events[1])
	}
}

func TestAuditLogRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if err := db.AppendAudit("cache", "data/econ.parquet", "bust", "", "admin"); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := db.ListAuditLog(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Entity != "cache" || e.Action != "bust" || e.Actor != "admin" {
		t.Errorf("entry = %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("created_at did not parse")
	}
}

func TestListAuditLogHonorsLimit(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		db.AppendAudit("dataset", "p", "refresh", "", "etl")
	}
	entries, err := db.ListAuditLog(3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("entries = %d, want 3", len(entries))
	}
}

func TestQRewritesPerDialect(t *testing.T) {
	q := "INSERT INTO t (a, created_at) VALUES (?, datetime('now','localtime'))"

	pg := &DB{dialect: postgresDialect{}}
	want := "INSERT INTO t (a, created_at) VALUES ($1, NOW())"
	if got := pg.Q(q); got != want {
		t.Errorf("postgres Q = %q, want %q", got, want)
	}

	sq := &DB{dialect: sqliteDialect{}}
	if got := sq.Q(q); got != q {
		t.Errorf("sqlite Q rewrote the query: %q", got)
	}
}

func TestRebind(t *testing.T) {
	got := Rebind("INSERT INTO t (a, b) VALUES (?, ?)")
	want := "INSERT INTO t (a, b) VALUES ($1, $2)"
	if got != want {
		t.Errorf("Rebind = %q, want %q", got, want)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	if err == nil {
		t.Error("expected error for unsupported driver")
	}
}
