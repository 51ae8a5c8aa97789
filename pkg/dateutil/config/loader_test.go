package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmptyPath(t *testing.T) {
	o, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.OutputFormat != Default().OutputFormat {
		t.Error("expected defaults unchanged for an empty path")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".htmldate.toml")
	contents := `
extensive_search = false
original_date = true
output_format = "%d.%m.%Y"
url = "http://example.com"
min_date = "2000-01-01"
max_date = "2022-12-31"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.ExtensiveSearch {
		t.Error("expected ExtensiveSearch false from file")
	}
	if !o.OriginalDate {
		t.Error("expected OriginalDate true from file")
	}
	if o.OutputFormat != "%d.%m.%Y" {
		t.Errorf("got OutputFormat %q", o.OutputFormat)
	}
	if o.URL != "http://example.com" {
		t.Errorf("got URL %q", o.URL)
	}
	want := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !o.MinDate.Equal(want) {
		t.Errorf("got MinDate %v, want %v", o.MinDate, want)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".htmldate.toml")
	if err := os.WriteFile(path, []byte("min_date = \"not-a-date\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a malformed min_date")
	}
}
