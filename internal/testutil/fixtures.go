// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bcparks/scrape-cleanup/slugs"
)

// TestDataPath returns the absolute path of the repository testdata/
// directory, searching upwards from the working directory.
func TestDataPath(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		p := filepath.Join(wd, "testdata")
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatal("could not find testdata directory")
		}
		wd = parent
	}
}

// Fixture returns the path of a file under testdata/.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(TestDataPath(t), name)
}

// WriteFile writes body to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// SampleSlugs is the lookup table used by the documented examples:
// 123 -> /sample-park.
func SampleSlugs(t *testing.T) *slugs.Table {
	t.Helper()
	table, err := slugs.New([]slugs.Entry{{ORCS: 123, Slug: "/sample-park"}})
	if err != nil {
		t.Fatalf("sample slugs: %v", err)
	}
	return table
}
