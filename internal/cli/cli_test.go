package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/config"
	"github.com/fatih/color"
)

const testBrief = "Voglio un sito web con e-commerce, budget economico, serve urgente"

// --- helpers ---

type harness struct {
	dataDir string
	out     bytes.Buffer
	errOut  bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	color.NoColor = true
	return &harness{dataDir: t.TempDir()}
}

// run executes the command tree with args and stdin, returning the error.
func (h *harness) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()

	env := Env{
		Version: "1.2.3",
		In:      strings.NewReader(stdin),
		Out:     &h.out,
		Err:     &h.errOut,
		Load: func() (*config.Config, error) {
			return &config.Config{
				DataDir:          h.dataDir,
				HTTPAddr:         ":0",
				LogLevel:         "error",
				DefaultMode:      analyzer.QuickMode(),
				MaxSearchResults: 20,
			}, nil
		},
	}
	cmd := NewRootCmd(env)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (h *harness) mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	if err := h.run(t, stdin, args...); err != nil {
		t.Fatalf("%v: unexpected error: %v\nstderr: %s", args, err, h.errOut.String())
	}
	return h.out.String()
}

func (h *harness) savedIDs(t *testing.T) []string {
	t.Helper()
	store, err := briefs.NewSQLiteStore(briefs.Config{DataDir: h.dataDir, MaxSearchResults: 20})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	list, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := make([]string, len(list))
	for i, b := range list {
		ids[i] = b.ID
	}
	return ids
}

func decodeAnalysis(t *testing.T, raw string) analyzer.ProjectAnalysis {
	t.Helper()
	var a analyzer.ProjectAnalysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, raw)
	}
	return a
}

// --- analyze ---

func TestAnalyze_TextJSON(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "json")

	got := decodeAnalysis(t, out)
	want := analyzer.Analyze(testBrief, analyzer.QuickMode())
	if got.RiskScore != want.RiskScore || got.ProjectType != want.ProjectType {
		t.Errorf("got score %d type %q, want %d %q", got.RiskScore, got.ProjectType, want.RiskScore, want.ProjectType)
	}
	if len(got.RedFlags) != len(want.RedFlags) {
		t.Errorf("red flags = %d, want %d", len(got.RedFlags), len(want.RedFlags))
	}
}

func TestAnalyze_ReadsStdin(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, testBrief, "analyze", "-o", "json")

	got := decodeAnalysis(t, out)
	if got.RiskScore != analyzer.Analyze(testBrief, analyzer.QuickMode()).RiskScore {
		t.Errorf("stdin brief analyzed differently")
	}
}

func TestAnalyze_ReadsFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "brief.txt")
	if err := os.WriteFile(path, []byte(testBrief), 0o644); err != nil {
		t.Fatal(err)
	}

	out := h.mustRun(t, "", "analyze", path)
	if !strings.Contains(out, "RISK SCORE") {
		t.Errorf("human report missing score header:\n%s", out)
	}
	if !strings.Contains(out, "REPLY EMAIL") {
		t.Errorf("human report missing email:\n%s", out)
	}
}

func TestAnalyze_BlankBrief(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, "   \n\t", "analyze")
	if err == nil {
		t.Fatal("expected error for blank brief")
	}
	if !strings.Contains(err.Error(), "brief is required") {
		t.Errorf("error = %v", err)
	}
}

func TestAnalyze_InvalidMode(t *testing.T) {
	h := newHarness(t)
	if err := h.run(t, "", "analyze", "--text", testBrief, "--mode", "turbo"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestAnalyze_InvalidOutput(t *testing.T) {
	h := newHarness(t)
	if err := h.run(t, "", "analyze", "--text", testBrief, "-o", "pdf"); err == nil {
		t.Fatal("expected error for unknown output")
	}
}

func TestAnalyze_OutNeedsFileFormat(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, "", "analyze", "--text", testBrief, "--out", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "--out") {
		t.Fatalf("expected --out error, got %v", err)
	}
}

func TestAnalyze_OutDirectory(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "markdown", "--out", dir, "--title", "Shop")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one report file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "brief-analysis-") || !strings.HasSuffix(name, ".md") {
		t.Errorf("unexpected file name %q", name)
	}
	body, _ := os.ReadFile(filepath.Join(dir, name))
	if !strings.HasPrefix(string(body), "# Shop") {
		t.Errorf("markdown report should start with the title:\n%s", body)
	}
}

func TestAnalyze_SaveThenList(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "json", "--save", "--title", "E-shop")
	if !strings.Contains(h.errOut.String(), `Saved as "E-shop"`) {
		t.Errorf("stderr missing save confirmation: %s", h.errOut.String())
	}

	out := h.mustRun(t, "", "saved", "list")
	if !strings.Contains(out, "E-shop") {
		t.Errorf("saved list missing brief:\n%s", out)
	}
}

// --- saved ---

func TestSaved_ListEmpty(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "", "saved", "list")
	if !strings.Contains(out, "No saved briefs.") {
		t.Errorf("got %q", out)
	}
}

func TestSaved_ShowDeleteSearch(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "json", "--save", "--title", "E-shop")
	ids := h.savedIDs(t)
	if len(ids) != 1 {
		t.Fatalf("expected 1 saved brief, got %d", len(ids))
	}
	id := ids[0]

	out := h.mustRun(t, "", "saved", "show", id)
	if !strings.Contains(out, "E-shop") || !strings.Contains(out, testBrief) {
		t.Errorf("show output missing title or content:\n%s", out)
	}

	out = h.mustRun(t, "", "saved", "show", id, "-o", "json")
	decodeAnalysis(t, out)

	out = h.mustRun(t, "", "saved", "search", "e-commerce")
	if !strings.Contains(out, "E-shop") {
		t.Errorf("search should find the brief:\n%s", out)
	}

	h.mustRun(t, "", "saved", "delete", id)
	if ids := h.savedIDs(t); len(ids) != 0 {
		t.Errorf("brief still present after delete: %v", ids)
	}

	if err := h.run(t, "", "saved", "show", id); err == nil {
		t.Error("show after delete should fail")
	}
}

func TestSaved_DumpRestore(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "json", "--save", "--title", "one")
	h.mustRun(t, "", "analyze", "--text", "Serve un logo", "-o", "json", "--save", "--title", "two")
	before := h.savedIDs(t)

	dumpFile := filepath.Join(t.TempDir(), "dump.json")
	h.mustRun(t, "", "saved", "dump", dumpFile)

	// Restore into a fresh data dir.
	h.dataDir = t.TempDir()
	out := h.mustRun(t, "", "saved", "restore", dumpFile)
	if !strings.Contains(out, "Restored 2 brief(s)") {
		t.Errorf("got %q", out)
	}

	after := h.savedIDs(t)
	if strings.Join(after, ",") != strings.Join(before, ",") {
		t.Errorf("order after restore = %v, want %v", after, before)
	}
}

func TestSaved_RestoreRejectsUnknownVersion(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, `{"version":"99","briefs":[]}`, "saved", "restore", "-")
	if err == nil || !strings.Contains(err.Error(), "unsupported dump version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

// --- export ---

func TestExport_WritesFileIntoDirectory(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "", "analyze", "--text", testBrief, "-o", "json", "--save")
	id := h.savedIDs(t)[0]

	dir := t.TempDir()
	h.mustRun(t, "", "export", id, "--format", "html", "--out", dir)

	matches, _ := filepath.Glob(filepath.Join(dir, "brief-analysis-*.html"))
	if len(matches) != 1 {
		t.Fatalf("expected one html file, got %v", matches)
	}
	body, _ := os.ReadFile(matches[0])
	if !strings.Contains(string(body), "<html") {
		t.Errorf("expected a complete HTML page")
	}
}

func TestExport_UnknownID(t *testing.T) {
	h := newHarness(t)
	if err := h.run(t, "", "export", "missing", "--out", t.TempDir()); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestExport_BadFormat(t *testing.T) {
	h := newHarness(t)
	if err := h.run(t, "", "export", "x", "--format", "pdf"); err == nil {
		t.Fatal("expected format error")
	}
}

// --- version ---

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "", "version")
	if strings.TrimSpace(out) != "briefcheck version 1.2.3" {
		t.Errorf("got %q", out)
	}
}
