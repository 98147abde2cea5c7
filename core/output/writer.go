// Package output handles file naming and writing for extracted data.
// When no explicit output path is given, filenames are derived from the
// input snapshot's stem (e.g., actioneer-03-01-2025.html → actioneer-03-01-2025.csv)
// under the processed-data directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteFor writes output named after the input file's stem.
// Example: data/raw/actioneer-03-01-2025.html → <OutputDir>/actioneer-03-01-2025.csv
func (w *Writer) WriteFor(inputPath string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, stem(inputPath)+ext)
	return path, w.write(path, data)
}

// WriteTo writes output to an explicit path, creating parent
// directories as needed.
func (w *Writer) WriteTo(path string, data []byte) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return path, w.write(path, data)
}

func (w *Writer) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// stem returns the input filename without directory or extension.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
