// Package activity keeps a short in-memory trail of admin actions so the
// dashboard can show what changed recently. It is deliberately ephemeral;
// the trail restarts with the process.
package activity

import (
	"fmt"
	"sync"
	"time"
)

const maxEntries = 50

type Entry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Record prepends a new entry, dropping the oldest once the trail is full.
func (l *Log) Record(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{At: time.Now().UTC(), Message: fmt.Sprintf(format, args...)}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
}

// Entries returns the trail newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
