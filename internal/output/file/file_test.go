package file

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/tandem/internal/model"
)

func TestWriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.ndjson")
	out, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := model.Result{
		Format: "yyyy-MM-dd",
		Pairs:  []model.Pair{{EmployeeA: "218", EmployeeB: "432", ProjectID: "10", DaysWorked: 578}},
	}
	if err := out.WriteResult(context.Background(), result); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (meta + pair)", len(lines))
	}
	var p model.Pair
	if err := json.Unmarshal([]byte(lines[1]), &p); err != nil {
		t.Fatalf("pair line not JSON: %v", err)
	}
	if p.DaysWorked != 578 {
		t.Errorf("DaysWorked = %d, want 578", p.DaysWorked)
	}
}

func TestTruncatesOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.ndjson")
	if err := os.WriteFile(path, []byte("stale content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.WriteResult(context.Background(), model.Result{Format: "dd-MM-yyyy"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "" || string(data)[0] == 's' {
		t.Errorf("stale content survived: %q", data)
	}
}

func TestNewBadPath(t *testing.T) {
	if _, err := New("/does/not/exist/result.ndjson"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
