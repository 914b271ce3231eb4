package briefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds SQLite store configuration.
type Config struct {
	DataDir          string
	MaxSearchResults int
}

// DefaultConfig stores briefs under ~/.briefcheck.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:          filepath.Join(home, ".briefcheck"),
		MaxSearchResults: 20,
	}
}

// DBFile is the database file name inside DataDir.
const DBFile = "briefs.db"

// ─── Store ───────────────────────────────────────────────────────────────────

// SQLiteStore is the durable Store backed by SQLite + FTS5.
type SQLiteStore struct {
	db  *sql.DB
	cfg Config
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates the data directory if needed, opens the database
// in WAL mode and runs migrations.
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = DefaultConfig().MaxSearchResults
	}
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("briefs: create data dir: %w", err)
	}

	db, err := openDB("sqlite", filepath.Join(cfg.DataDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("briefs: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("briefs: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("briefs: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS briefs (
			id         TEXT    PRIMARY KEY,
			title      TEXT    NOT NULL,
			content    TEXT    NOT NULL,
			analysis   TEXT    NOT NULL,
			created_at TEXT    NOT NULL,
			seq        INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_briefs_seq ON briefs(seq DESC);

		CREATE VIRTUAL TABLE IF NOT EXISTS briefs_fts USING fts5(
			title,
			content,
			content='briefs',
			content_rowid='rowid'
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='briefs_fts_insert'",
	).Scan(&name)
	if err == sql.ErrNoRows {
		triggers := `
			CREATE TRIGGER briefs_fts_insert AFTER INSERT ON briefs BEGIN
				INSERT INTO briefs_fts(rowid, title, content)
				VALUES (new.rowid, new.title, new.content);
			END;

			CREATE TRIGGER briefs_fts_delete AFTER DELETE ON briefs BEGIN
				INSERT INTO briefs_fts(briefs_fts, rowid, title, content)
				VALUES ('delete', old.rowid, old.title, old.content);
			END;
		`
		if _, err := s.db.Exec(triggers); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return nil
}

// ─── CRUD ────────────────────────────────────────────────────────────────────

// Save replaces any brief with the same id and moves it to the front of
// the list. Delete+insert (not INSERT OR REPLACE) keeps the FTS triggers
// in sync.
func (s *SQLiteStore) Save(b SavedBrief) error {
	if b.ID == "" {
		return errors.New("briefs: save: empty id")
	}
	analysis, err := json.Marshal(b.Analysis)
	if err != nil {
		return fmt.Errorf("briefs: encode analysis: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("briefs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM briefs WHERE id = ?`, b.ID); err != nil {
		return fmt.Errorf("briefs: replace %s: %w", b.ID, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO briefs (id, title, content, analysis, created_at, seq)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM briefs))`,
		b.ID, b.Title, b.Content, string(analysis), formatTime(b.CreatedAt),
	); err != nil {
		return fmt.Errorf("briefs: insert %s: %w", b.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("briefs: commit: %w", err)
	}
	return nil
}

// List returns every saved brief, most recently saved first.
func (s *SQLiteStore) List() ([]SavedBrief, error) {
	return s.queryBriefs(
		`SELECT id, title, content, analysis, created_at FROM briefs ORDER BY seq DESC`,
	)
}

// Get returns the brief with the given id or ErrNotFound.
func (s *SQLiteStore) Get(id string) (*SavedBrief, error) {
	row := s.db.QueryRow(
		`SELECT id, title, content, analysis, created_at FROM briefs WHERE id = ?`, id,
	)
	b, err := scanBrief(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("briefs: get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("briefs: get %s: %w", id, err)
	}
	return b, nil
}

// Delete removes a brief. Deleting an unknown id returns ErrNotFound.
func (s *SQLiteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM briefs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("briefs: delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("briefs: delete %s: %w", id, ErrNotFound)
	}
	return nil
}

// ─── Search (FTS5) ───────────────────────────────────────────────────────────

// Search runs a full-text query over titles and contents. An empty query
// returns the most recent briefs.
func (s *SQLiteStore) Search(query string, limit int) ([]SavedBrief, error) {
	if limit <= 0 || limit > s.cfg.MaxSearchResults {
		limit = s.cfg.MaxSearchResults
	}

	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		return s.queryBriefs(
			`SELECT id, title, content, analysis, created_at FROM briefs ORDER BY seq DESC LIMIT ?`,
			limit,
		)
	}

	results, err := s.queryBriefs(`
		SELECT b.id, b.title, b.content, b.analysis, b.created_at
		FROM briefs_fts fts
		JOIN briefs b ON b.rowid = fts.rowid
		WHERE briefs_fts MATCH ?
		ORDER BY fts.rank, b.seq DESC
		LIMIT ?`,
		ftsQuery, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("briefs: search: %w", err)
	}
	return results, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

type scanner interface {
	Scan(dest ...any) error
}

func scanBrief(row scanner) (*SavedBrief, error) {
	var (
		b         SavedBrief
		analysis  string
		createdAt string
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Content, &analysis, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(analysis), &b.Analysis); err != nil {
		return nil, fmt.Errorf("decode analysis of %s: %w", b.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", b.ID, err)
	}
	b.CreatedAt = t
	return &b, nil
}

func (s *SQLiteStore) queryBriefs(query string, args ...any) ([]SavedBrief, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	results := []SavedBrief{}
	for rows.Next() {
		b, err := scanBrief(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}
	return results, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// sanitizeFTS wraps each word in quotes for safe FTS5 queries.
// "logo urgente" → `"logo" "urgente"`
func sanitizeFTS(query string) string {
	var quoted []string
	for _, w := range strings.Fields(query) {
		w = strings.ReplaceAll(w, `"`, "")
		if w == "" {
			continue
		}
		quoted = append(quoted, `"`+w+`"`)
	}
	return strings.Join(quoted, " ")
}
