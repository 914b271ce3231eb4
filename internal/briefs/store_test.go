package briefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/rs/zerolog"
)

// newTestSQLiteStore creates a SQLiteStore backed by a temp directory for isolation.
func newTestSQLiteStore(t *testing.T) *briefs.SQLiteStore {
	t.Helper()
	s, err := briefs.NewSQLiteStore(briefs.Config{
		DataDir:          t.TempDir(),
		MaxSearchResults: 20,
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// storeFactories runs the shared contract tests against every implementation.
var storeFactories = map[string]func(t *testing.T) briefs.Store{
	"sqlite": func(t *testing.T) briefs.Store { return newTestSQLiteStore(t) },
	"memory": func(t *testing.T) briefs.Store { return briefs.NewMemoryStore() },
}

var baseTime = time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

func makeBrief(id, title, content string, offset time.Duration) briefs.SavedBrief {
	return briefs.SavedBrief{
		ID:        id,
		Title:     title,
		Content:   content,
		Analysis:  analyzer.Analyze(content, analyzer.QuickMode()),
		CreatedAt: baseTime.Add(offset),
	}
}

func ids(list []briefs.SavedBrief) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.ID
	}
	return out
}

// ─── Contract ────────────────────────────────────────────────────────────────

func TestStore_EmptyList(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			list, err := factory(t).List()
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			if len(list) != 0 {
				t.Errorf("len = %d, want 0", len(list))
			}
		})
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			for i, id := range []string{"a", "b", "c"} {
				if err := s.Save(makeBrief(id, "Brief "+id, "sito web "+id, time.Duration(i)*time.Minute)); err != nil {
					t.Fatalf("Save(%s): %v", id, err)
				}
			}

			list, err := s.List()
			if err != nil {
				t.Fatal(err)
			}
			if got, want := ids(list), []string{"c", "b", "a"}; !reflect.DeepEqual(got, want) {
				t.Errorf("order = %v, want %v", got, want)
			}
		})
	}
}

func TestStore_SaveReplacesAndMovesToFront(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			for _, id := range []string{"a", "b", "c"} {
				if err := s.Save(makeBrief(id, "v1", "logo", 0)); err != nil {
					t.Fatal(err)
				}
			}

			if err := s.Save(makeBrief("a", "v2", "logo nuovo", 0)); err != nil {
				t.Fatalf("replace: %v", err)
			}

			list, err := s.List()
			if err != nil {
				t.Fatal(err)
			}
			if got, want := ids(list), []string{"a", "c", "b"}; !reflect.DeepEqual(got, want) {
				t.Errorf("order = %v, want %v", got, want)
			}
			if list[0].Title != "v2" {
				t.Errorf("Title = %q, want v2", list[0].Title)
			}
		})
	}
}

func TestStore_GetRoundTrip(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			want := makeBrief("rt", "Round trip", "Voglio una app mobile urgente", 0)
			if err := s.Save(want); err != nil {
				t.Fatal(err)
			}

			got, err := s.Get("rt")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !got.CreatedAt.Equal(want.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
			}
			if !reflect.DeepEqual(got.Analysis, want.Analysis) {
				t.Errorf("Analysis differs:\n got %+v\nwant %+v", got.Analysis, want.Analysis)
			}
			if got.Title != want.Title || got.Content != want.Content {
				t.Errorf("got %q/%q, want %q/%q", got.Title, got.Content, want.Title, want.Content)
			}
		})
	}
}

func TestStore_GetNotFound(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			_, err := factory(t).Get("missing")
			if !errors.Is(err, briefs.ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			for _, id := range []string{"a", "b"} {
				if err := s.Save(makeBrief(id, id, "logo", 0)); err != nil {
					t.Fatal(err)
				}
			}

			if err := s.Delete("a"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			list, _ := s.List()
			if got := ids(list); !reflect.DeepEqual(got, []string{"b"}) {
				t.Errorf("after delete = %v, want [b]", got)
			}

			if err := s.Delete("a"); !errors.Is(err, briefs.ErrNotFound) {
				t.Errorf("second delete err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_SaveRejectsEmptyID(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			if err := factory(t).Save(briefs.SavedBrief{Title: "x"}); err == nil {
				t.Error("expected error for empty id")
			}
		})
	}
}

func TestStore_Search(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			_ = s.Save(makeBrief("1", "Pasticceria", "nuovo logo per la pasticceria", 0))
			_ = s.Save(makeBrief("2", "Gestionale", "un gestionale per il magazzino", time.Minute))
			_ = s.Save(makeBrief("3", "Sito", "sito web con logo animato", 2*time.Minute))

			got, err := s.Search("logo", 10)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("len = %d, want 2: %v", len(got), ids(got))
			}

			got, err = s.Search("magazzino", 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].ID != "2" {
				t.Errorf("got %v, want [2]", ids(got))
			}

			got, err = s.Search("   ", 2)
			if err != nil {
				t.Fatal(err)
			}
			if gotIDs := ids(got); !reflect.DeepEqual(gotIDs, []string{"3", "2"}) {
				t.Errorf("empty query = %v, want [3 2]", gotIDs)
			}
		})
	}
}

// ─── SQLite specifics ────────────────────────────────────────────────────────

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := briefs.Config{DataDir: dir, MaxSearchResults: 20}

	s1, err := briefs.NewSQLiteStore(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.Save(makeBrief("keep", "Keep", "logo", 0)); err != nil {
		t.Fatal(err)
	}
	_ = s1.Close()

	s2, err := briefs.NewSQLiteStore(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	if _, err := s2.Get("keep"); err != nil {
		t.Errorf("brief not found after reopen: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, briefs.DBFile)); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestSQLiteStore_SearchAfterReplaceUsesNewContent(t *testing.T) {
	s := newTestSQLiteStore(t)
	_ = s.Save(makeBrief("x", "Old", "vecchio testo", 0))
	_ = s.Save(makeBrief("x", "New", "nuovo testo", 0))

	got, err := s.Search("vecchio", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("stale FTS entry found: %v", ids(got))
	}
	got, _ = s.Search("nuovo", 10)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestSQLiteStore_SearchQuotesOperators(t *testing.T) {
	s := newTestSQLiteStore(t)
	_ = s.Save(makeBrief("x", "Logo", "logo OR NOT sito", 0))

	if _, err := s.Search(`logo" OR`, 10); err != nil {
		t.Errorf("Search with FTS syntax should be sanitized, got: %v", err)
	}
}

func TestSafeList_CorruptRowDegradesToEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.Save(makeBrief("ok", "ok", "logo", 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.DB().Exec(`UPDATE briefs SET analysis = '{not json' WHERE id = 'ok'`); err != nil {
		t.Fatal(err)
	}

	if _, err := s.List(); err == nil {
		t.Fatal("List should fail on corrupt analysis")
	}
	if got := briefs.SafeList(s, zerolog.Nop()); len(got) != 0 {
		t.Errorf("SafeList = %d briefs, want 0", len(got))
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func TestNewSavedBrief_DefaultTitle(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	b := briefs.NewSavedBrief("", "logo", analyzer.Analyze("logo", analyzer.QuickMode()), now)

	if b.Title != "Brief 18/10/2026" {
		t.Errorf("Title = %q, want %q", b.Title, "Brief 18/10/2026")
	}
	if b.ID == "" {
		t.Error("ID should be generated")
	}
	if !b.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", b.CreatedAt, now)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := briefs.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestDumpRestore(t *testing.T) {
	src := briefs.NewMemoryStore()
	for i, id := range []string{"a", "b", "c"} {
		_ = src.Save(makeBrief(id, id, "logo "+id, time.Duration(i)*time.Minute))
	}

	data, err := briefs.Dump(src, baseTime)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if data.Version != briefs.DumpVersion || len(data.Briefs) != 3 {
		t.Fatalf("unexpected dump: %+v", data)
	}

	dst := newTestSQLiteStore(t)
	n, err := briefs.Restore(dst, data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if n != 3 {
		t.Errorf("restored = %d, want 3", n)
	}
	list, _ := dst.List()
	if got := ids(list); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Errorf("restored order = %v, want [c b a]", got)
	}
}
