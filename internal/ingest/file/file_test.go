package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/tandem/internal/ingest"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.csv")
	content := "EmpID,ProjectID,DateFrom,DateTo\n143,12,2013-11-01,2014-01-05\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	src := &Source{}
	rows, stats, err := src.Read(context.Background(), ingest.SourceConfig{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RowsRead != 1 || len(rows) != 1 {
		t.Fatalf("got %d rows, stats %+v, want 1 row", len(rows), stats)
	}
	if rows[0].EmployeeID != "143" {
		t.Errorf("EmployeeID = %q, want 143", rows[0].EmployeeID)
	}
}

func TestReadMissingFile(t *testing.T) {
	src := &Source{}
	_, _, err := src.Read(context.Background(), ingest.SourceConfig{Path: "/does/not/exist.csv"})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := ingest.Get("file")
	if err != nil {
		t.Fatalf("file source not registered: %v", err)
	}
	if ctor() == nil {
		t.Fatal("constructor returned nil")
	}
}
