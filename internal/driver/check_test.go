package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"quill/internal/diag"
)

func TestCheckSource(t *testing.T) {
	src := `// comment line
"fox"

r#"raw "quoted""#
b"bytes"
true
"\q"
"unterminated
`
	res := CheckSource("list.lit", src, 100)

	if res.Literals != 6 {
		t.Fatalf("Literals = %d, want 6", res.Literals)
	}
	if len(res.Records) != 4 {
		t.Fatalf("len(Records) = %d, want 4", len(res.Records))
	}

	want := []struct {
		line  int
		kind  string
		value string
	}{
		{2, "string", "fox"},
		{4, "string", `raw "quoted"`},
		{5, "bytestring", "bytes"},
		{6, "bool", "true"},
	}
	for i, w := range want {
		r := res.Records[i]
		if r.Line != w.line || r.Kind != w.kind || r.Value != w.value {
			t.Errorf("Records[%d] = %d/%s/%q, want %d/%s/%q",
				i, r.Line, r.Kind, r.Value, w.line, w.kind, w.value)
		}
		if r.Path != "list.lit" {
			t.Errorf("Records[%d].Path = %q, want list.lit", i, r.Path)
		}
	}

	if res.Bag.Len() != 2 {
		t.Fatalf("Bag.Len() = %d, want 2", res.Bag.Len())
	}
	items := res.Bag.Items()
	if items[0].Line != 7 || items[0].Code != diag.LitUnknownEscape {
		t.Errorf("items[0] = line %d code %v, want line 7 LitUnknownEscape", items[0].Line, items[0].Code)
	}
	if items[1].Line != 8 || items[1].Code != diag.LitUnterminatedString {
		t.Errorf("items[1] = line %d code %v, want line 8 LitUnterminatedString", items[1].Line, items[1].Code)
	}
	if items[1].HasSpan {
		t.Error("unterminated string should not carry a span")
	}
}

func TestCheckSourceDiagnosticLimit(t *testing.T) {
	src := "\"\\q\"\n\"\\q\"\n\"\\q\"\n"
	res := CheckSource("list.lit", src, 2)

	if res.Literals != 3 {
		t.Fatalf("Literals = %d, want 3", res.Literals)
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("Bag.Len() = %d, want 2 (limited)", res.Bag.Len())
	}
}

func TestCheckFileMissing(t *testing.T) {
	if _, err := CheckFile(filepath.Join(t.TempDir(), "nope.lit"), 10); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestListLitFiles(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "nested")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.lit", "a.lit", "notes.txt", "nested/c.lit"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("true\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := ListLitFiles(root)
	if err != nil {
		t.Fatalf("ListLitFiles: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.lit"),
		filepath.Join(root, "b.lit"),
		filepath.Join(root, "nested", "c.lit"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

type collectSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *collectSink) Send(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func TestCheckFiles(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.lit")
	bad := filepath.Join(root, "bad.lit")
	if err := os.WriteFile(good, []byte("\"ok\"\ntrue\n"), 0o600); err != nil {
		t.Fatalf("write good.lit: %v", err)
	}
	if err := os.WriteFile(bad, []byte("\"\\q\"\n"), 0o600); err != nil {
		t.Fatalf("write bad.lit: %v", err)
	}

	sink := &collectSink{}
	opts := Options{Jobs: 2, MaxDiagnostics: 10, Progress: sink}
	results, err := CheckFiles(context.Background(), []string{good, bad}, opts)
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}

	// Результаты возвращаются в порядке входных файлов
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Path != good || results[1].Path != bad {
		t.Fatalf("result order = %s, %s", results[0].Path, results[1].Path)
	}
	if results[0].Bag.Len() != 0 {
		t.Errorf("good file Bag.Len() = %d, want 0", results[0].Bag.Len())
	}
	if results[1].Bag.Len() != 1 {
		t.Errorf("bad file Bag.Len() = %d, want 1", results[1].Bag.Len())
	}

	if len(sink.events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(sink.events))
	}
	byPath := map[string]Event{}
	for _, e := range sink.events {
		byPath[e.Path] = e
	}
	if byPath[bad].Errors != 1 {
		t.Errorf("event for bad.lit Errors = %d, want 1", byPath[bad].Errors)
	}
}

func TestCheckFilesCanceled(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.lit")
	if err := os.WriteFile(file, []byte("true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CheckFiles(ctx, []string{file}, Options{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestCheckDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "one.lit"), []byte("\"a\"\n\"b\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	results, err := CheckDir(context.Background(), root, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Literals != 2 {
		t.Errorf("Literals = %d, want 2", results[0].Literals)
	}
}
