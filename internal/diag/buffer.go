package diag

import (
	"strings"
	"sync"
	"time"
)

const defaultCapacity = 200

// Entry is one recorded diagnostic line.
type Entry struct {
	Time time.Time
	Line string
}

// Buffer is a bounded ring of recent diagnostics. It implements io.Writer
// so it can sit behind a zerolog writer next to the log file; the UI reads
// it back for the diagnostics view.
type Buffer struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewBuffer creates a buffer keeping up to max entries. Non-positive max
// uses the default capacity.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = defaultCapacity
	}
	return &Buffer{max: max}
}

// Write records each non-empty line of p as one entry.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r ")
		if line == "" {
			continue
		}
		b.entries = append(b.entries, Entry{Time: now, Line: line})
	}
	if overflow := len(b.entries) - b.max; overflow > 0 {
		b.entries = append([]Entry(nil), b.entries[overflow:]...)
	}
	return len(p), nil
}

// Entries returns a copy of the recorded diagnostics, oldest first.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Len reports the number of recorded diagnostics.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
