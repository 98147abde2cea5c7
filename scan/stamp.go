// Package scan — filename timestamp parsing.
// Snapshot files carry their capture time in the filename; two naming
// conventions exist, tried in order, with file modification time as the
// last resort.
package scan

import (
	"os"
	"regexp"
	"time"
)

// stampFormats are the accepted filename conventions, most specific
// first: prefix-YYYY-MM-DDTHHMMSS, then prefix-MM-DD-YYYY.
var stampFormats = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2}T\d{6})`), "2006-01-02T150405"},
	{regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`), "01-02-2006"},
}

// StampFromName extracts the capture time encoded in a filename.
// Returns false when the name matches neither convention.
func StampFromName(name string) (time.Time, bool) {
	for _, f := range stampFormats {
		m := f.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		t, err := time.Parse(f.layout, m[1])
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// fileTime returns the file's capture time: the filename stamp when one
// parses, otherwise the filesystem modification time.
func fileTime(info os.FileInfo) time.Time {
	if t, ok := StampFromName(info.Name()); ok {
		return t
	}
	return info.ModTime()
}
