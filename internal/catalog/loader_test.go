package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestCSV(t, `show_id,type,country,release_year
s1,Movie,"United States",2018
s2,TV Show,,2019
s3,Movie,"France, Belgium",2020`)

	ds, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(ds.Headers) != 4 {
		t.Errorf("Expected 4 headers, got %d", len(ds.Headers))
	}
	if ds.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", ds.Len())
	}
	if got := ds.Column("country")[2]; got != "France, Belgium" {
		t.Errorf("Expected quoted country list to survive, got %q", got)
	}
	if got := ds.Column("country")[1]; got != "" {
		t.Errorf("Expected empty country to stay empty, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), nil)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected error to wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadCountsRows(t *testing.T) {
	path := writeTestCSV(t, "a,b\n1,2\n3,4\n")

	rows := 0
	ds, err := Load(path, func() { rows++ })
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rows != ds.Len() {
		t.Errorf("Expected onRow to fire %d times, got %d", ds.Len(), rows)
	}
}

func TestLoadSniffsSemicolon(t *testing.T) {
	path := writeTestCSV(t, "type;country;release_year\nMovie;Spain;2017\nTV Show;Spain;2017\n")

	ds, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(ds.Headers) != 3 {
		t.Errorf("Expected 3 headers after sniffing ';', got %d: %v", len(ds.Headers), ds.Headers)
	}
	if got := ds.Column("country")[0]; got != "Spain" {
		t.Errorf("Expected country Spain, got %q", got)
	}
}

func TestColumnUnknown(t *testing.T) {
	ds := &Dataset{Headers: []string{"a"}, Rows: [][]string{{"1"}}}
	if got := ds.Column("missing"); got != nil {
		t.Errorf("Expected nil for unknown column, got %v", got)
	}
	if idx := ds.ColumnIndex("missing"); idx != -1 {
		t.Errorf("Expected -1 for unknown column, got %d", idx)
	}
}

func TestColumnShortRow(t *testing.T) {
	ds := &Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}, {"3"}},
	}
	col := ds.Column("b")
	if col[0] != "2" || col[1] != "" {
		t.Errorf("Expected short row to yield empty value, got %v", col)
	}
}
