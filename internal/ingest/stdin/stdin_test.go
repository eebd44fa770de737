package stdin

import (
	"context"
	"strings"
	"testing"

	"github.com/crimson-sun/tandem/internal/ingest"
)

func TestReadInjectedStream(t *testing.T) {
	content := "EmpID,ProjectID,DateFrom,DateTo\n143,12,2013-11-01,2014-01-05\n218,10,2012-05-16,NULL\n"
	src := &Source{In: strings.NewReader(content)}

	rows, stats, err := src.Read(context.Background(), ingest.SourceConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RowsRead != 2 || len(rows) != 2 {
		t.Fatalf("got %d rows, stats %+v, want 2 rows", len(rows), stats)
	}
	if rows[1].DateTo != "NULL" {
		t.Errorf("DateTo = %q, want NULL", rows[1].DateTo)
	}
}

func TestReadUnsupportedEncoding(t *testing.T) {
	src := &Source{In: strings.NewReader("a,b,c,d\n")}
	_, _, err := src.Read(context.Background(), ingest.SourceConfig{Encoding: "ebcdic"})
	if err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := ingest.Get("stdin")
	if err != nil {
		t.Fatalf("stdin source not registered: %v", err)
	}
	if ctor() == nil {
		t.Fatal("constructor returned nil")
	}
}
