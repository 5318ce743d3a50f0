// Package util collects small numeric, character-class, and path helpers
// shared across the parsers and the CLI, carried over from the teacher's
// own internal/util package.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Abs is a non-branching absolute-value function for int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// IsAlpha reports whether l is an ASCII letter.
func IsAlpha(l byte) bool {
	return (l >= 'a' && l <= 'z') || (l >= 'A' && l <= 'Z')
}

// IsLower reports whether l is a lower-case ASCII letter.
func IsLower(l byte) bool {
	return l >= 'a' && l <= 'z'
}

// IsDigit reports whether l is an ASCII decimal digit.
func IsDigit(l byte) bool {
	return l >= '0' && l <= '9'
}

// TimeTrack prints to stderr how long has elapsed since start under the
// given label.
// Usage: defer util.TimeTrack(time.Now(), "parse fen").
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	_, _ = out.Fprintf(os.Stderr, "%s took %d ns\n", name, elapsed.Nanoseconds())
}

// MemStat returns a human-readable snapshot of heap usage and GC counts,
// used by the CLI's -stats flag.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// ResolveFile resolves path to a cleaned absolute path. It does not
// require the file to exist; callers that need existence should stat it
// themselves (a missing config or variants file is a recoverable error,
// not something this helper should decide).
func ResolveFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// ResolveCreateFolder resolves dir to a cleaned absolute path and creates
// it (and any missing parents) if it does not already exist. Used for the
// magic-table cache directory.
func ResolveCreateFolder(dir string) (string, error) {
	abs, err := ResolveFile(dir)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(abs, 0o755); mkErr != nil {
			return "", mkErr
		}
	}
	return abs, nil
}

// TrimComment strips an INI/config-style trailing comment starting with
// ';' or '#', then trims surrounding whitespace.
func TrimComment(line string) string {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
