package store

import (
	"strconv"
	"strings"
)

// Dialect carries the per-driver DDL and query rewriting.
type Dialect interface {
	Schema() string
	Query(q string) string
}

type sqliteDialect struct{}

func (sqliteDialect) Schema() string        { return schemaSQLite }
func (sqliteDialect) Query(q string) string { return q }

type postgresDialect struct{}

func (postgresDialect) Schema() string { return schemaPostgres }

// Query rewrites ? placeholders and sqlite datetime literals to their
// PostgreSQL equivalents.
func (postgresDialect) Query(q string) string {
	q = strings.ReplaceAll(q, "datetime('now','localtime')", "NOW()")
	return Rebind(q)
}

// Rebind converts ? placeholders to PostgreSQL's $1..$n form.
func Rebind(query string) string {
	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
