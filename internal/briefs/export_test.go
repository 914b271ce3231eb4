package briefs

import "database/sql"

// DB exposes the internal *sql.DB for test helpers in briefs_test.
// This file only compiles during `go test`.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
