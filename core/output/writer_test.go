package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFor_DerivesNameFromInputStem(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "processed"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	path, err := w.WriteFor("data/raw/actioneer-03-01-2025.html", []byte("a,b\n"), ".csv")
	if err != nil {
		t.Fatalf("WriteFor error: %v", err)
	}

	want := filepath.Join(dir, "processed", "actioneer-03-01-2025.csv")
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestWriteTo_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	target := filepath.Join(dir, "nested", "deep", "out.csv")
	path, err := w.WriteTo(target, []byte("x\n"))
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if path != target {
		t.Fatalf("path = %s, want %s", path, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := New(dir); err != nil {
		t.Fatalf("New error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("output dir not created: %v", err)
	}
}
