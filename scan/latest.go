// Package scan finds snapshot files to process.
// It globs a directory for files matching the snapshot naming pattern
// and orders them by capture time, keeping input discovery separate
// from the extraction pipeline.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// candidate pairs a file path with its resolved capture time.
type candidate struct {
	path string
	at   time.Time
}

// Latest returns the most recent file in dir matching pattern.
// Recency comes from the filename stamp when parseable, otherwise the
// file's modification time. An empty match set is an error.
func Latest(dir, pattern string) (string, error) {
	files, err := matches(dir, pattern)
	if err != nil {
		return "", err
	}
	return files[len(files)-1], nil
}

// All returns every file in dir matching pattern, oldest first, so
// batch runs process snapshots in capture order.
func All(dir, pattern string) ([]string, error) {
	return matches(dir, pattern)
}

// matches globs dir for pattern and sorts the results by capture time
// ascending. Files that disappear between glob and stat are skipped.
func matches(dir, pattern string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory %s does not exist or is not a directory", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var found []candidate
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		found = append(found, candidate{path: path, at: fileTime(info)})
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("no files matching %s in %s", pattern, dir)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].at.Before(found[j].at)
	})

	sorted := make([]string, len(found))
	for i, c := range found {
		sorted[i] = c.path
	}
	return sorted, nil
}
